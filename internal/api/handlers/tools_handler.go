package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// ToolsHandler 处理工具商品相关的API请求
type ToolsHandler struct {
	toolService *services.ToolService
}

// NewToolsHandler 创建工具处理器
func NewToolsHandler(toolService *services.ToolService) *ToolsHandler {
	return &ToolsHandler{toolService: toolService}
}

// FindAll 获取工具列表
func (h *ToolsHandler) FindAll(c *gin.Context) {
	params, err := bindPagination(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tools, totalItems, err := h.toolService.FindAll(params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, listData(tools, totalItems, params), "Success")
}

// FindOne 获取单个工具
func (h *ToolsHandler) FindOne(c *gin.Context) {
	tool, err := h.toolService.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, tool, "Success")
}

// Create 创建工具
func (h *ToolsHandler) Create(c *gin.Context) {
	var dto entities.CreateToolDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tool, err := h.toolService.Create(dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, tool, "Tool created")
}

// Update 更新工具
func (h *ToolsHandler) Update(c *gin.Context) {
	var dto entities.UpdateToolDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tool, err := h.toolService.Update(c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, tool, "Tool updated")
}

// Activate 上架工具
func (h *ToolsHandler) Activate(c *gin.Context) {
	if err := h.toolService.Activate(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Tool activated")
}

// Pause 暂停工具
func (h *ToolsHandler) Pause(c *gin.Context) {
	if err := h.toolService.Pause(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Tool paused")
}

// Delete 删除工具
func (h *ToolsHandler) Delete(c *gin.Context) {
	if err := h.toolService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Tool deleted")
}
