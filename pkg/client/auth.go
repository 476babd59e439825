package client

import (
	"context"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// AuthService 认证相关接口
type AuthService struct {
	c *Client
}

// Auth 返回认证服务
func (c *Client) Auth() *AuthService {
	return &AuthService{c: c}
}

// Tokens 登录返回的令牌对
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult 登录结果
type LoginResult struct {
	User   entities.User `json:"user"`
	Tokens Tokens        `json:"tokens"`
}

// Login 登录并把访问令牌装入客户端
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	raw, err := s.c.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	result, err := unwrap[LoginResult](raw)
	if err != nil {
		return LoginResult{}, err
	}

	s.c.SetToken(result.Tokens.AccessToken)
	return result, nil
}

// Register 注册新用户
func (s *AuthService) Register(ctx context.Context, dto entities.CreateUserDTO) (entities.User, error) {
	raw, err := s.c.post(ctx, "/auth/register", dto)
	if err != nil {
		return entities.User{}, err
	}
	return unwrap[entities.User](raw)
}

// Me 获取当前登录用户
func (s *AuthService) Me(ctx context.Context) (entities.User, error) {
	raw, err := s.c.get(ctx, "/auth/me", nil)
	if err != nil {
		return entities.User{}, err
	}
	return unwrap[entities.User](raw)
}

// UpdateMe 更新当前登录用户的资料
func (s *AuthService) UpdateMe(ctx context.Context, dto entities.UpdateUserDTO) (entities.User, error) {
	raw, err := s.c.put(ctx, "/auth/me", dto)
	if err != nil {
		return entities.User{}, err
	}
	return unwrap[entities.User](raw)
}

// ChangePassword 修改当前登录用户的密码
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := s.c.put(ctx, "/auth/change-password", map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	})
	return err
}

// ForgotPassword 忘记密码
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	_, err := s.c.post(ctx, "/auth/forgot-password", map[string]string{"email": email})
	return err
}

// RefreshTokens 用刷新令牌换取新令牌对
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (Tokens, error) {
	raw, err := s.c.post(ctx, "/auth/refresh-tokens", map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return Tokens{}, err
	}

	type refreshData struct {
		Tokens Tokens `json:"tokens"`
	}
	result, err := unwrap[refreshData](raw)
	if err != nil {
		return Tokens{}, err
	}

	s.c.SetToken(result.Tokens.AccessToken)
	return result.Tokens, nil
}
