package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// VpsHandler 处理VPS商品相关的API请求
type VpsHandler struct {
	vpsService *services.VpsService
}

// NewVpsHandler 创建VPS处理器
func NewVpsHandler(vpsService *services.VpsService) *VpsHandler {
	return &VpsHandler{vpsService: vpsService}
}

// FindAll 获取VPS列表
func (h *VpsHandler) FindAll(c *gin.Context) {
	params, err := bindPagination(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	items, totalItems, err := h.vpsService.FindAll(params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, listData(items, totalItems, params), "Success")
}

// FindOne 获取单个VPS
func (h *VpsHandler) FindOne(c *gin.Context) {
	vps, err := h.vpsService.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, vps, "Success")
}

// Create 创建VPS
func (h *VpsHandler) Create(c *gin.Context) {
	var dto entities.CreateVpsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	vps, err := h.vpsService.Create(dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, vps, "Vps created")
}

// Update 更新VPS
func (h *VpsHandler) Update(c *gin.Context) {
	var dto entities.UpdateVpsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	vps, err := h.vpsService.Update(c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, vps, "Vps updated")
}

// Activate 上架VPS
func (h *VpsHandler) Activate(c *gin.Context) {
	if err := h.vpsService.Activate(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Vps activated")
}

// Pause 暂停VPS
func (h *VpsHandler) Pause(c *gin.Context) {
	if err := h.vpsService.Pause(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Vps paused")
}

// Delete 删除VPS
func (h *VpsHandler) Delete(c *gin.Context) {
	if err := h.vpsService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Vps deleted")
}
