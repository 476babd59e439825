package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// UsersHandler 处理用户管理相关的API请求
type UsersHandler struct {
	userService *services.UserService
}

// NewUsersHandler 创建用户处理器
func NewUsersHandler(userService *services.UserService) *UsersHandler {
	return &UsersHandler{userService: userService}
}

// FindAll 获取用户列表
func (h *UsersHandler) FindAll(c *gin.Context) {
	params, err := bindPagination(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	users, totalItems, err := h.userService.FindAll(params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, listData(users, totalItems, params), "Success")
}

// FindOne 获取单个用户
func (h *UsersHandler) FindOne(c *gin.Context) {
	user, err := h.userService.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, user, "Success")
}

// Create 创建用户
func (h *UsersHandler) Create(c *gin.Context) {
	var dto entities.CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, user, "User created")
}

// Update 更新用户
func (h *UsersHandler) Update(c *gin.Context) {
	var dto entities.UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, user, "User updated")
}

// Delete 删除用户
func (h *UsersHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "User deleted")
}

// Lock 锁定用户
func (h *UsersHandler) Lock(c *gin.Context) {
	user, err := h.userService.Lock(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, user, "User locked")
}

// Unlock 解锁用户
func (h *UsersHandler) Unlock(c *gin.Context) {
	user, err := h.userService.Unlock(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, user, "User unlocked")
}

// AdjustBalance 调整用户余额
func (h *UsersHandler) AdjustBalance(c *gin.Context) {
	var dto entities.AdjustBalanceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	transaction, err := h.userService.AdjustBalance(c.Param("id"), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, transaction, "Balance adjusted")
}

// ResetPassword 重置用户密码
func (h *UsersHandler) ResetPassword(c *gin.Context) {
	var dto entities.ResetPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.userService.ResetPassword(c.Param("id"), dto.Password); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Password reset")
}
