package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// Envelope 所有响应的统一外层结构
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
}

// respondOK 写入200响应
func respondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
	})
}

// respondCreated 写入201响应
func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Envelope{
		StatusCode: http.StatusCreated,
		Data:       data,
		Message:    message,
	})
}

// respondBadRequest 写入400响应
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	})
}

// respondError 根据业务错误类别映射HTTP状态码
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	c.JSON(status, Envelope{
		StatusCode: status,
		Message:    err.Error(),
	})
}

// listData 构造分页列表响应体
func listData[T any](items []T, total int, params entities.PaginationParams) entities.ListResult[T] {
	if items == nil {
		items = []T{}
	}
	return entities.ListResult[T]{
		Items: items,
		Meta:  entities.NewPaginationMeta(total, params),
	}
}

// bindPagination 解析并规范化分页查询参数
func bindPagination(c *gin.Context) (entities.PaginationParams, error) {
	var params entities.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return params, err
	}
	params.Normalize()
	return params, nil
}
