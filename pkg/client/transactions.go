package client

import (
	"context"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// TransactionsService 交易查询接口，只读
type TransactionsService struct {
	c *Client
}

// Transactions 返回交易服务
func (c *Client) Transactions() *TransactionsService {
	return &TransactionsService{c: c}
}

// List 获取交易列表。失败时返回空列表。
func (s *TransactionsService) List(ctx context.Context, params entities.PaginationParams) entities.ListResult[entities.Transaction] {
	raw, err := s.c.get(ctx, "/transactions", paginationQuery(params))
	if err != nil {
		return EmptyList[entities.Transaction](params)
	}
	return NormalizeList[entities.Transaction](raw, params)
}

// Get 获取单笔交易
func (s *TransactionsService) Get(ctx context.Context, id string) (entities.Transaction, error) {
	raw, err := s.c.get(ctx, resourcePath("transactions", id), nil)
	if err != nil {
		return entities.Transaction{}, err
	}
	return unwrap[entities.Transaction](raw)
}
