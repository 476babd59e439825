package entities

import (
	"time"

	"github.com/lib/pq"
)

// Vps VPS实体
type Vps struct {
	ID           string         `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Description  *string        `json:"description" db:"description"`
	Ram          int            `json:"ram" db:"ram"`
	Disk         int            `json:"disk" db:"disk"`
	Cpu          int            `json:"cpu" db:"cpu"`
	Bandwidth    int            `json:"bandwidth" db:"bandwidth"`
	Location     *string        `json:"location" db:"location"`
	Os           *string        `json:"os" db:"os"`
	Price        float64        `json:"price" db:"price"`
	Tags         pq.StringArray `json:"tags" db:"tags"`
	Status       int            `json:"status" db:"status"`
	SoldQuantity int            `json:"soldQuantity" db:"sold_quantity"`
	ViewCount    int            `json:"viewCount" db:"view_count"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

// CreateVpsDTO 创建VPS的数据传输对象
type CreateVpsDTO struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Ram         int      `json:"ram" binding:"required,gt=0"`
	Disk        int      `json:"disk" binding:"required,gt=0"`
	Cpu         int      `json:"cpu" binding:"required,gt=0"`
	Bandwidth   int      `json:"bandwidth" binding:"gte=0"`
	Location    *string  `json:"location"`
	Os          *string  `json:"os"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	Tags        []string `json:"tags"`
}

// UpdateVpsDTO 更新VPS的数据传输对象
type UpdateVpsDTO struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Ram         *int     `json:"ram"`
	Disk        *int     `json:"disk"`
	Cpu         *int     `json:"cpu"`
	Bandwidth   *int     `json:"bandwidth"`
	Location    *string  `json:"location"`
	Os          *string  `json:"os"`
	Price       *float64 `json:"price"`
	Tags        []string `json:"tags"`
}
