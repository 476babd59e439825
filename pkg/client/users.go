package client

import (
	"context"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// UsersService 用户管理接口
type UsersService struct {
	c *Client
}

// Users 返回用户服务
func (c *Client) Users() *UsersService {
	return &UsersService{c: c}
}

// List 获取用户列表。失败时返回空列表，页面展示空表格。
func (s *UsersService) List(ctx context.Context, params entities.PaginationParams) entities.ListResult[entities.User] {
	raw, err := s.c.get(ctx, "/users", paginationQuery(params))
	if err != nil {
		return EmptyList[entities.User](params)
	}
	return NormalizeList[entities.User](raw, params)
}

// Get 获取单个用户
func (s *UsersService) Get(ctx context.Context, id string) (entities.User, error) {
	raw, err := s.c.get(ctx, resourcePath("users", id), nil)
	if err != nil {
		return entities.User{}, err
	}
	return unwrap[entities.User](raw)
}

// Create 创建用户
func (s *UsersService) Create(ctx context.Context, dto entities.CreateUserDTO) (entities.User, error) {
	raw, err := s.c.post(ctx, "/users", dto)
	if err != nil {
		return entities.User{}, err
	}
	return unwrap[entities.User](raw)
}

// Update 更新用户
func (s *UsersService) Update(ctx context.Context, id string, dto entities.UpdateUserDTO) (entities.User, error) {
	raw, err := s.c.put(ctx, resourcePath("users", id), dto)
	if err != nil {
		return entities.User{}, err
	}
	return unwrap[entities.User](raw)
}

// Delete 删除用户
func (s *UsersService) Delete(ctx context.Context, id string) error {
	_, err := s.c.delete(ctx, resourcePath("users", id), nil)
	return err
}

// SetLocked 切换锁定状态。目标状态与当前一致时不发请求。
func (s *UsersService) SetLocked(ctx context.Context, user entities.User, locked int) error {
	if user.IsLocked == locked {
		return nil
	}
	if locked == entities.UserLocked {
		return s.Lock(ctx, user.ID)
	}
	return s.Unlock(ctx, user.ID)
}

// Lock 锁定用户
func (s *UsersService) Lock(ctx context.Context, id string) error {
	_, err := s.c.put(ctx, resourcePath("users", id, "lock"), nil)
	return err
}

// Unlock 解锁用户
func (s *UsersService) Unlock(ctx context.Context, id string) error {
	_, err := s.c.put(ctx, resourcePath("users", id, "unlock"), nil)
	return err
}

// AdjustBalance 调整用户余额
func (s *UsersService) AdjustBalance(ctx context.Context, id string, dto entities.AdjustBalanceDTO) (entities.Transaction, error) {
	raw, err := s.c.post(ctx, resourcePath("users", id, "balance"), dto)
	if err != nil {
		return entities.Transaction{}, err
	}
	return unwrap[entities.Transaction](raw)
}

// ResetPassword 重置用户密码
func (s *UsersService) ResetPassword(ctx context.Context, id, password string) error {
	_, err := s.c.post(ctx, resourcePath("users", id, "reset-password"), map[string]string{"password": password})
	return err
}
