package client

import (
	"context"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// ToolsService 工具商品接口
type ToolsService struct {
	c *Client
}

// Tools 返回工具服务
func (c *Client) Tools() *ToolsService {
	return &ToolsService{c: c}
}

// List 获取工具列表。失败时返回空列表。
func (s *ToolsService) List(ctx context.Context, params entities.PaginationParams) entities.ListResult[entities.Tool] {
	raw, err := s.c.get(ctx, "/tools", paginationQuery(params))
	if err != nil {
		return EmptyList[entities.Tool](params)
	}
	return NormalizeList[entities.Tool](raw, params)
}

// Get 获取单个工具
func (s *ToolsService) Get(ctx context.Context, id string) (entities.Tool, error) {
	raw, err := s.c.get(ctx, resourcePath("tools", id), nil)
	if err != nil {
		return entities.Tool{}, err
	}
	return unwrap[entities.Tool](raw)
}

// Create 创建工具
func (s *ToolsService) Create(ctx context.Context, dto entities.CreateToolDTO) (entities.Tool, error) {
	raw, err := s.c.post(ctx, "/tools", dto)
	if err != nil {
		return entities.Tool{}, err
	}
	return unwrap[entities.Tool](raw)
}

// Update 更新工具
func (s *ToolsService) Update(ctx context.Context, id string, dto entities.UpdateToolDTO) (entities.Tool, error) {
	raw, err := s.c.put(ctx, resourcePath("tools", id), dto)
	if err != nil {
		return entities.Tool{}, err
	}
	return unwrap[entities.Tool](raw)
}

// SetStatus 切换上架状态。目标状态与当前一致时不发请求。
func (s *ToolsService) SetStatus(ctx context.Context, tool entities.Tool, status int) error {
	if tool.Status == status {
		return nil
	}
	if status == entities.StatusActive {
		return s.Activate(ctx, tool.ID)
	}
	return s.Pause(ctx, tool.ID)
}

// Activate 上架工具
func (s *ToolsService) Activate(ctx context.Context, id string) error {
	_, err := s.c.put(ctx, resourcePath("tools", id, "active"), nil)
	return err
}

// Pause 暂停工具
func (s *ToolsService) Pause(ctx context.Context, id string) error {
	_, err := s.c.put(ctx, resourcePath("tools", id, "pause"), nil)
	return err
}

// Delete 删除工具
func (s *ToolsService) Delete(ctx context.Context, id string) error {
	_, err := s.c.delete(ctx, resourcePath("tools", id), nil)
	return err
}
