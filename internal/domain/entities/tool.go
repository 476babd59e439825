package entities

import "time"

// 商品状态：0暂停 1上架
const (
	StatusPaused = 0
	StatusActive = 1
)

// 永久套餐的时长标记
const ToolPlanPermanent = -1

// Tool 工具实体
type Tool struct {
	ID           string      `json:"id" db:"id"`
	Code         string      `json:"code" db:"code"`
	Name         string      `json:"name" db:"name"`
	Description  *string     `json:"description" db:"description"`
	Demo         *string     `json:"demo" db:"demo"`
	LinkDownload *string     `json:"linkDownload" db:"link_download"`
	Slug         string      `json:"slug" db:"slug"`
	SoldQuantity int         `json:"soldQuantity" db:"sold_quantity"`
	ViewCount    int         `json:"viewCount" db:"view_count"`
	Status       int         `json:"status" db:"status"`
	Plans        []ToolPlan  `json:"plans" db:"-"`
	Images       []ToolImage `json:"images" db:"-"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}

// ToolPlan 工具套餐
type ToolPlan struct {
	ID       string  `json:"id" db:"id"`
	ToolID   string  `json:"toolId" db:"tool_id"`
	Name     string  `json:"name" db:"name"`
	Price    float64 `json:"price" db:"price"`
	Duration int     `json:"duration" db:"duration"`
}

// ToolImage 工具图片，由文件上传接口独立上传后按文件ID关联
type ToolImage struct {
	ID        string    `json:"id" db:"id"`
	ToolID    string    `json:"toolId" db:"tool_id"`
	FileUrl   string    `json:"fileUrl" db:"file_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ToolPlanDTO 套餐的数据传输对象
type ToolPlanDTO struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gte=0"`
	Duration int     `json:"duration" binding:"required"`
}

// CreateToolDTO 创建工具的数据传输对象
type CreateToolDTO struct {
	Code         string        `json:"code" binding:"required"`
	Name         string        `json:"name" binding:"required"`
	Description  *string       `json:"description"`
	Demo         *string       `json:"demo"`
	LinkDownload *string       `json:"linkDownload"`
	Plans        []ToolPlanDTO `json:"plans"`
	FileIds      []string      `json:"fileIds"`
}

// UpdateToolDTO 更新工具的数据传输对象
type UpdateToolDTO struct {
	Name         string        `json:"name"`
	Description  *string       `json:"description"`
	Demo         *string       `json:"demo"`
	LinkDownload *string       `json:"linkDownload"`
	Plans        []ToolPlanDTO `json:"plans"`
	FileIds      []string      `json:"fileIds"`
}
