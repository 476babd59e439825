package client

import (
	"context"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// OrdersService 订单接口
type OrdersService struct {
	c *Client
}

// Orders 返回订单服务
func (c *Client) Orders() *OrdersService {
	return &OrdersService{c: c}
}

// List 获取订单列表。失败时返回空列表。
func (s *OrdersService) List(ctx context.Context, params entities.PaginationParams) entities.ListResult[entities.Order] {
	raw, err := s.c.get(ctx, "/orders", paginationQuery(params))
	if err != nil {
		return EmptyList[entities.Order](params)
	}
	return NormalizeList[entities.Order](raw, params)
}

// Get 获取单个订单
func (s *OrdersService) Get(ctx context.Context, id string) (entities.Order, error) {
	raw, err := s.c.get(ctx, resourcePath("orders", id), nil)
	if err != nil {
		return entities.Order{}, err
	}
	return unwrap[entities.Order](raw)
}

// SetupVps 补全VPS订单的开通信息
func (s *OrdersService) SetupVps(ctx context.Context, id string, dto entities.SetupVpsDTO) (entities.Order, error) {
	raw, err := s.c.put(ctx, resourcePath("orders", id, "setup-vps"), dto)
	if err != nil {
		return entities.Order{}, err
	}
	return unwrap[entities.Order](raw)
}

// SetupProxy 补全代理订单的开通信息
func (s *OrdersService) SetupProxy(ctx context.Context, id string, dto entities.SetupProxyDTO) (entities.Order, error) {
	raw, err := s.c.put(ctx, resourcePath("orders", id, "setup-proxy"), dto)
	if err != nil {
		return entities.Order{}, err
	}
	return unwrap[entities.Order](raw)
}

// UpdateApiKey 更换工具订单的API密钥
func (s *OrdersService) UpdateApiKey(ctx context.Context, id string, dto entities.UpdateApiKeyDTO) (entities.Order, error) {
	raw, err := s.c.put(ctx, resourcePath("orders", id, "update-api-key"), dto)
	if err != nil {
		return entities.Order{}, err
	}
	return unwrap[entities.Order](raw)
}
