package client

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// 历代后端在列表响应上出现过的全部形状：
//
//	{data:{items,meta}}        标准外层
//	{data:{data:{items,meta}}} 双层嵌套
//	{data:[...]} 或整个响应体是裸数组
//	{data:{...}}               单个对象
//	{data:null} / null
//
// NormalizeList 把以上任意形状归一化为ListResult。items永远非nil，
// meta缺失的字段由items长度和调用方的分页参数补全。解析失败时返回
// 空结果而不是错误，列表页展示空表格即可。
func NormalizeList[T any](raw []byte, params entities.PaginationParams) entities.ListResult[T] {
	params.Normalize()
	return normalizeNode[T](raw, params)
}

// EmptyList 构造格式完好的空列表结果
func EmptyList[T any](params entities.PaginationParams) entities.ListResult[T] {
	params.Normalize()
	return entities.ListResult[T]{
		Items: []T{},
		Meta: entities.PaginationMeta{
			Total:      0,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: 1,
		},
	}
}

// meta字段全部可缺省
type metaPayload struct {
	Total      *int `json:"total"`
	Page       *int `json:"page"`
	Limit      *int `json:"limit"`
	TotalPages *int `json:"totalPages"`
}

type listNode struct {
	Items json.RawMessage `json:"items"`
	Meta  *metaPayload    `json:"meta"`
	Data  json.RawMessage `json:"data"`
}

func normalizeNode[T any](raw []byte, params entities.PaginationParams) entities.ListResult[T] {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return EmptyList[T](params)
	}

	// 裸数组
	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return EmptyList[T](params)
		}
		return buildResult(items, nil, params)
	}

	if raw[0] != '{' {
		return EmptyList[T](params)
	}

	var node listNode
	if err := json.Unmarshal(raw, &node); err != nil {
		return EmptyList[T](params)
	}

	// 优先取嵌套的items
	if node.Items != nil {
		var items []T
		if err := json.Unmarshal(node.Items, &items); err != nil {
			return EmptyList[T](params)
		}
		return buildResult(items, node.Meta, params)
	}

	// 继续向内剥一层data，同时覆盖标准外层和双层嵌套
	if node.Data != nil {
		return normalizeNode[T](node.Data, params)
	}

	// 单个对象降级为单元素列表
	var single T
	if err := json.Unmarshal(raw, &single); err != nil {
		return EmptyList[T](params)
	}
	return buildResult([]T{single}, nil, params)
}

func buildResult[T any](items []T, meta *metaPayload, params entities.PaginationParams) entities.ListResult[T] {
	if items == nil {
		items = []T{}
	}

	result := entities.ListResult[T]{
		Items: items,
		Meta: entities.PaginationMeta{
			Total: len(items),
			Page:  params.Page,
			Limit: params.Limit,
		},
	}

	if meta != nil {
		if meta.Total != nil {
			result.Meta.Total = *meta.Total
		}
		if meta.Page != nil {
			result.Meta.Page = *meta.Page
		}
		if meta.Limit != nil {
			result.Meta.Limit = *meta.Limit
		}
		if meta.TotalPages != nil {
			result.Meta.TotalPages = *meta.TotalPages
		}
	}

	if result.Meta.TotalPages == 0 {
		result.Meta.TotalPages = totalPages(result.Meta.Total, result.Meta.Limit)
	}

	return result
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}
	return pages
}
