package entities

import "time"

// 用户角色
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// 锁定状态
const (
	UserUnlocked = 0
	UserLocked   = 1
)

// 余额操作方向
const (
	BalanceOperationAdd      = 1
	BalanceOperationSubtract = -1
)

// User 用户实体
type User struct {
	ID             string     `json:"id" db:"id"`
	Code           string     `json:"code" db:"code"`
	Fullname       string     `json:"fullname" db:"fullname"`
	Email          string     `json:"email" db:"email"`
	Phone          *string    `json:"phone" db:"phone"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	Role           int        `json:"role" db:"role"`
	IsLocked       int        `json:"isLocked" db:"is_locked"`
	AccountBalance float64    `json:"accountBalance" db:"account_balance"`
	LastLogin      *time.Time `json:"lastLogin" db:"last_login"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserSummary 订单和交易中内嵌的用户摘要
type UserSummary struct {
	ID       string `json:"id" db:"id"`
	Code     string `json:"code" db:"code"`
	Fullname string `json:"fullname" db:"fullname"`
	Email    string `json:"email" db:"email"`
}

// Summary 返回用户摘要
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Code:     u.Code,
		Fullname: u.Fullname,
		Email:    u.Email,
	}
}

// CreateUserDTO 创建用户的数据传输对象
type CreateUserDTO struct {
	Fullname string  `json:"fullname" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Role     int     `json:"role"`
	Password string  `json:"password" binding:"required,min=6"`
}

// UpdateUserDTO 更新用户的数据传输对象
type UpdateUserDTO struct {
	Fullname string  `json:"fullname"`
	Email    string  `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Role     *int    `json:"role"`
}

// AdjustBalanceDTO 调整用户余额的数据传输对象
type AdjustBalanceDTO struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Operation int     `json:"operation" binding:"required,oneof=1 -1"`
	Reason    string  `json:"reason" binding:"required"`
}

// ResetPasswordDTO 重置用户密码的数据传输对象
type ResetPasswordDTO struct {
	Password string `json:"password" binding:"required,min=6"`
}
