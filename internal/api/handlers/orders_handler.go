package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// OrdersHandler 处理订单相关的API请求
type OrdersHandler struct {
	orderService *services.OrderService
}

// NewOrdersHandler 创建订单处理器
func NewOrdersHandler(orderService *services.OrderService) *OrdersHandler {
	return &OrdersHandler{orderService: orderService}
}

// FindAll 获取订单列表
func (h *OrdersHandler) FindAll(c *gin.Context) {
	params, err := bindPagination(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	orders, totalItems, err := h.orderService.FindAll(params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, listData(orders, totalItems, params), "Success")
}

// FindOne 获取单个订单
func (h *OrdersHandler) FindOne(c *gin.Context) {
	order, err := h.orderService.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, order, "Success")
}

// SetupVps 补全VPS订单的开通信息
func (h *OrdersHandler) SetupVps(c *gin.Context) {
	var dto entities.SetupVpsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.SetupVps(c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, order, "Order setup completed")
}

// SetupProxy 补全代理订单的开通信息
func (h *OrdersHandler) SetupProxy(c *gin.Context) {
	var dto entities.SetupProxyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.SetupProxy(c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, order, "Order setup completed")
}

// UpdateApiKey 更换工具订单的API密钥
func (h *OrdersHandler) UpdateApiKey(c *gin.Context) {
	var dto entities.UpdateApiKeyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateApiKey(c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, order, "Api key updated")
}
