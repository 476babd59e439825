package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// FilesHandler 处理文件上传相关的API请求
type FilesHandler struct {
	fileService *services.FileService
}

// NewFilesHandler 创建文件处理器
func NewFilesHandler(fileService *services.FileService) *FilesHandler {
	return &FilesHandler{fileService: fileService}
}

// UploadSingle 上传单个文件
func (h *FilesHandler) UploadSingle(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "File is required")
		return
	}

	stored, err := h.fileService.UploadSingle(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, stored, "File uploaded")
}

// UploadMultiple 上传多个文件
func (h *FilesHandler) UploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, "Files are required")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		respondBadRequest(c, "Files are required")
		return
	}

	stored, err := h.fileService.UploadMultiple(c.Request.Context(), files)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, stored, "Files uploaded")
}

// Delete 删除单个文件
func (h *FilesHandler) Delete(c *gin.Context) {
	if err := h.fileService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "File deleted")
}

// DeleteMultiple 批量删除文件
func (h *FilesHandler) DeleteMultiple(c *gin.Context) {
	var dto entities.DeleteFilesDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.fileService.DeleteMultiple(c.Request.Context(), dto.FileIds); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Files deleted")
}
