package entities

import "math"

// PaginationParams 分页查询参数
type PaginationParams struct {
	Keyword string `form:"keyword" json:"keyword"`
	Page    int    `form:"page" json:"page"`
	Limit   int    `form:"limit" json:"limit"`
}

// Normalize 填充默认分页参数
func (p *PaginationParams) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
}

// Offset 计算查询偏移量
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PaginationMeta 分页元数据
type PaginationMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationMeta 根据总数和分页参数构造元数据
func NewPaginationMeta(total int, params PaginationParams) PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginationMeta{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
	}
}

// ListResult 分页列表结果
type ListResult[T any] struct {
	Items []T            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}
