package entities

import "time"

// 订单类型
const (
	OrderTypeVps   = "vps"
	OrderTypeTool  = "tool"
	OrderTypeProxy = "proxy"
)

// 订单状态：setup表示等待管理员补全开通信息
const (
	OrderStatusSetup     = "setup"
	OrderStatusActive    = "active"
	OrderStatusCancelled = "cancelled"
)

// Order 订单实体
type Order struct {
	ID          string      `json:"id" db:"id"`
	Code        string      `json:"code" db:"code"`
	UserID      string      `json:"-" db:"user_id"`
	User        UserSummary `json:"user" db:"-"`
	Type        string      `json:"type" db:"type"`
	TotalPrice  float64     `json:"totalPrice" db:"total_price"`
	Status      string      `json:"status" db:"status"`
	Note        *string     `json:"note" db:"note"`
	VpsOrder    *VpsOrder   `json:"vpsOrder,omitempty" db:"-"`
	ProxyOrder  *ProxyOrder `json:"proxyOrder,omitempty" db:"-"`
	ToolOrder   *ToolOrder  `json:"toolOrder,omitempty" db:"-"`
	CompletedAt *time.Time  `json:"completedAt" db:"completed_at"`
	ExpiredAt   *time.Time  `json:"expiredAt" db:"expired_at"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// VpsOrder VPS订单的开通信息
type VpsOrder struct {
	IP        string     `json:"ip" db:"ip"`
	Username  string     `json:"username" db:"username"`
	Password  string     `json:"password" db:"password"`
	ExpiredAt *time.Time `json:"expiredAt" db:"expired_at"`
}

// ProxyOrder 代理订单的开通信息
type ProxyOrder struct {
	Proxies   string     `json:"proxies" db:"proxies"`
	ExpiredAt *time.Time `json:"expiredAt" db:"expired_at"`
}

// ToolOrder 工具订单的开通信息
type ToolOrder struct {
	Name           string     `json:"name" db:"name"`
	Price          float64    `json:"price" db:"price"`
	Duration       int        `json:"duration" db:"duration"`
	ApiKey         *string    `json:"apiKey,omitempty" db:"api_key"`
	ExpiredAt      *time.Time `json:"expiredAt" db:"expired_at"`
	ChangeApiKeyAt *time.Time `json:"changeApiKeyAt,omitempty" db:"change_api_key_at"`
}

// SetupVpsDTO VPS开通的数据传输对象
type SetupVpsDTO struct {
	IP       string `json:"ip" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SetupProxyDTO 代理开通的数据传输对象
type SetupProxyDTO struct {
	Proxies   string    `json:"proxies" binding:"required"`
	ExpiredAt time.Time `json:"expiredAt" binding:"required"`
}

// UpdateApiKeyDTO 更换工具订单API密钥的数据传输对象
type UpdateApiKeyDTO struct {
	ApiKey string `json:"apiKey" binding:"required"`
}
