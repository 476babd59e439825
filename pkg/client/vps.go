package client

import (
	"context"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// VpsService VPS商品接口
type VpsService struct {
	c *Client
}

// Vps 返回VPS服务
func (c *Client) Vps() *VpsService {
	return &VpsService{c: c}
}

// List 获取VPS列表。失败时返回空列表。
func (s *VpsService) List(ctx context.Context, params entities.PaginationParams) entities.ListResult[entities.Vps] {
	raw, err := s.c.get(ctx, "/vps", paginationQuery(params))
	if err != nil {
		return EmptyList[entities.Vps](params)
	}
	return NormalizeList[entities.Vps](raw, params)
}

// Get 获取单个VPS
func (s *VpsService) Get(ctx context.Context, id string) (entities.Vps, error) {
	raw, err := s.c.get(ctx, resourcePath("vps", id), nil)
	if err != nil {
		return entities.Vps{}, err
	}
	return unwrap[entities.Vps](raw)
}

// Create 创建VPS
func (s *VpsService) Create(ctx context.Context, dto entities.CreateVpsDTO) (entities.Vps, error) {
	raw, err := s.c.post(ctx, "/vps", dto)
	if err != nil {
		return entities.Vps{}, err
	}
	return unwrap[entities.Vps](raw)
}

// Update 更新VPS
func (s *VpsService) Update(ctx context.Context, id string, dto entities.UpdateVpsDTO) (entities.Vps, error) {
	raw, err := s.c.put(ctx, resourcePath("vps", id), dto)
	if err != nil {
		return entities.Vps{}, err
	}
	return unwrap[entities.Vps](raw)
}

// SetStatus 切换上架状态。目标状态与当前一致时不发请求。
func (s *VpsService) SetStatus(ctx context.Context, vps entities.Vps, status int) error {
	if vps.Status == status {
		return nil
	}
	if status == entities.StatusActive {
		return s.Activate(ctx, vps.ID)
	}
	return s.Pause(ctx, vps.ID)
}

// Activate 上架VPS
func (s *VpsService) Activate(ctx context.Context, id string) error {
	_, err := s.c.put(ctx, resourcePath("vps", id, "active"), nil)
	return err
}

// Pause 暂停VPS
func (s *VpsService) Pause(ctx context.Context, id string) error {
	_, err := s.c.put(ctx, resourcePath("vps", id, "pause"), nil)
	return err
}

// Delete 删除VPS
func (s *VpsService) Delete(ctx context.Context, id string) error {
	_, err := s.c.delete(ctx, resourcePath("vps", id), nil)
	return err
}
