package entities

import "time"

// Proxy 代理实体
type Proxy struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description" db:"description"`
	Price        float64   `json:"price" db:"price"`
	Inventory    int       `json:"inventory" db:"inventory"`
	SoldQuantity int       `json:"soldQuantity" db:"sold_quantity"`
	ViewCount    int       `json:"viewCount" db:"view_count"`
	Status       int       `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateProxyDTO 创建代理的数据传输对象
type CreateProxyDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Inventory   int     `json:"inventory" binding:"gte=0"`
}

// UpdateProxyDTO 更新代理的数据传输对象
type UpdateProxyDTO struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Inventory   *int     `json:"inventory"`
}
