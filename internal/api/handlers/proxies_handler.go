package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// ProxiesHandler 处理代理商品相关的API请求
type ProxiesHandler struct {
	proxyService *services.ProxyService
}

// NewProxiesHandler 创建代理处理器
func NewProxiesHandler(proxyService *services.ProxyService) *ProxiesHandler {
	return &ProxiesHandler{proxyService: proxyService}
}

// FindAll 获取代理列表
func (h *ProxiesHandler) FindAll(c *gin.Context) {
	params, err := bindPagination(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	proxies, totalItems, err := h.proxyService.FindAll(params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, listData(proxies, totalItems, params), "Success")
}

// FindOne 获取单个代理
func (h *ProxiesHandler) FindOne(c *gin.Context) {
	proxy, err := h.proxyService.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, proxy, "Success")
}

// Create 创建代理
func (h *ProxiesHandler) Create(c *gin.Context) {
	var dto entities.CreateProxyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	proxy, err := h.proxyService.Create(dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, proxy, "Proxy created")
}

// Update 更新代理
func (h *ProxiesHandler) Update(c *gin.Context) {
	var dto entities.UpdateProxyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	proxy, err := h.proxyService.Update(c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, proxy, "Proxy updated")
}

// Activate 上架代理
func (h *ProxiesHandler) Activate(c *gin.Context) {
	if err := h.proxyService.Activate(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Proxy activated")
}

// Pause 暂停代理
func (h *ProxiesHandler) Pause(c *gin.Context) {
	if err := h.proxyService.Pause(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Proxy paused")
}

// Delete 删除代理
func (h *ProxiesHandler) Delete(c *gin.Context) {
	if err := h.proxyService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Proxy deleted")
}
