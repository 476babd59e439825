package client

import (
	"context"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// ProxiesService 代理商品接口，服务端路径沿用单数形式/proxy
type ProxiesService struct {
	c *Client
}

// Proxies 返回代理服务
func (c *Client) Proxies() *ProxiesService {
	return &ProxiesService{c: c}
}

// List 获取代理列表。失败时返回空列表。
func (s *ProxiesService) List(ctx context.Context, params entities.PaginationParams) entities.ListResult[entities.Proxy] {
	raw, err := s.c.get(ctx, "/proxy", paginationQuery(params))
	if err != nil {
		return EmptyList[entities.Proxy](params)
	}
	return NormalizeList[entities.Proxy](raw, params)
}

// Get 获取单个代理
func (s *ProxiesService) Get(ctx context.Context, id string) (entities.Proxy, error) {
	raw, err := s.c.get(ctx, resourcePath("proxy", id), nil)
	if err != nil {
		return entities.Proxy{}, err
	}
	return unwrap[entities.Proxy](raw)
}

// Create 创建代理
func (s *ProxiesService) Create(ctx context.Context, dto entities.CreateProxyDTO) (entities.Proxy, error) {
	raw, err := s.c.post(ctx, "/proxy", dto)
	if err != nil {
		return entities.Proxy{}, err
	}
	return unwrap[entities.Proxy](raw)
}

// Update 更新代理
func (s *ProxiesService) Update(ctx context.Context, id string, dto entities.UpdateProxyDTO) (entities.Proxy, error) {
	raw, err := s.c.put(ctx, resourcePath("proxy", id), dto)
	if err != nil {
		return entities.Proxy{}, err
	}
	return unwrap[entities.Proxy](raw)
}

// SetStatus 切换上架状态。目标状态与当前一致时不发请求。
func (s *ProxiesService) SetStatus(ctx context.Context, proxy entities.Proxy, status int) error {
	if proxy.Status == status {
		return nil
	}
	if status == entities.StatusActive {
		return s.Activate(ctx, proxy.ID)
	}
	return s.Pause(ctx, proxy.ID)
}

// Activate 上架代理
func (s *ProxiesService) Activate(ctx context.Context, id string) error {
	_, err := s.c.put(ctx, resourcePath("proxy", id, "active"), nil)
	return err
}

// Pause 暂停代理
func (s *ProxiesService) Pause(ctx context.Context, id string) error {
	_, err := s.c.put(ctx, resourcePath("proxy", id, "pause"), nil)
	return err
}

// Delete 删除代理
func (s *ProxiesService) Delete(ctx context.Context, id string) error {
	_, err := s.c.delete(ctx, resourcePath("proxy", id), nil)
	return err
}
