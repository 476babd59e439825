package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// DashboardsService 后台统计接口
type DashboardsService struct {
	c *Client
}

// Dashboards 返回统计服务
func (c *Client) Dashboards() *DashboardsService {
	return &DashboardsService{c: c}
}

// Summary 获取总览统计
func (s *DashboardsService) Summary(ctx context.Context) (entities.DashboardSummary, error) {
	raw, err := s.c.get(ctx, "/dashboards/summary", nil)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	return unwrap[entities.DashboardSummary](raw)
}

// SummaryUser 获取某一年按月的注册用户统计
func (s *DashboardsService) SummaryUser(ctx context.Context, year int) (entities.YearlySummary, error) {
	return s.summary(ctx, "/dashboards/summary-user", year)
}

// SummaryRevenue 获取某一年按月的营收统计
func (s *DashboardsService) SummaryRevenue(ctx context.Context, year int) (entities.YearlySummary, error) {
	return s.summary(ctx, "/dashboards/summary-revenue", year)
}

func (s *DashboardsService) summary(ctx context.Context, path string, year int) (entities.YearlySummary, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}

	raw, err := s.c.get(ctx, path, query)
	if err != nil {
		return entities.YearlySummary{}, err
	}
	return unwrap[entities.YearlySummary](raw)
}
