package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/api/middleware"
	"github.com/AutoHubWeb/AdminPanel/internal/auth"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// AuthHandler 处理认证相关的API请求
type AuthHandler struct {
	userService *services.UserService
	jwtService  *auth.JWTService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(userService *services.UserService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
	}
}

// LoginDTO 登录请求
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordDTO 修改密码请求
type ChangePasswordDTO struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ForgotPasswordDTO 忘记密码请求
type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required,email"`
}

// RefreshTokensDTO 刷新令牌请求
type RefreshTokensDTO struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// tokenPair 访问令牌和刷新令牌
type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) issueTokens(user entities.User) (tokenPair, error) {
	accessToken, err := h.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return tokenPair{}, err
	}
	refreshToken, err := h.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return tokenPair{}, err
	}
	return tokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Authenticate(dto.Email, dto.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.issueTokens(user)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"user":   user,
		"tokens": tokens,
	}, "Login successful")
}

// Register 用户注册，注册用户始终是普通角色
func (h *AuthHandler) Register(c *gin.Context) {
	var dto entities.CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	dto.Role = entities.RoleUser

	user, err := h.userService.Create(dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, user, "Register successful")
}

// GetMe 获取当前登录用户
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := h.userService.FindByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, user, "Success")
}

// UpdateMe 更新当前登录用户的资料
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var dto entities.UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	// 资料接口不允许改自己的角色
	dto.Role = nil

	user, err := h.userService.Update(userID, dto)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, user, "Profile updated")
}

// ChangePassword 修改当前登录用户的密码
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.userService.ChangePassword(userID, dto.OldPassword, dto.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Password changed")
}

// ForgotPassword 忘记密码
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var dto ForgotPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// 未注册的邮箱同样返回成功，避免通过该接口枚举账号
	if err := h.userService.ForgotPassword(dto.Email); err != nil && !errors.Is(err, services.ErrNotFound) {
		respondError(c, err)
		return
	}

	respondOK(c, nil, "Temporary password issued")
}

// RefreshTokens 刷新令牌
func (h *AuthHandler) RefreshTokens(c *gin.Context) {
	var dto RefreshTokensDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(dto.RefreshToken)
	if err != nil {
		respondError(c, services.UnauthorizedError("Invalid or expired refresh token"))
		return
	}

	user, err := h.userService.FindByID(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.issueTokens(user)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"tokens": tokens}, "Tokens refreshed")
}
