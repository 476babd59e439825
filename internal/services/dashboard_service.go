package services

import (
	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// DashboardService 仪表盘统计服务
type DashboardService struct {
	userRepo  repositories.UserRepository
	toolRepo  repositories.ToolRepository
	vpsRepo   repositories.VpsRepository
	proxyRepo repositories.ProxyRepository
	orderRepo repositories.OrderRepository
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(
	userRepo repositories.UserRepository,
	toolRepo repositories.ToolRepository,
	vpsRepo repositories.VpsRepository,
	proxyRepo repositories.ProxyRepository,
	orderRepo repositories.OrderRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:  userRepo,
		toolRepo:  toolRepo,
		vpsRepo:   vpsRepo,
		proxyRepo: proxyRepo,
		orderRepo: orderRepo,
	}
}

// Summary 获取总览统计
func (s *DashboardService) Summary() (entities.DashboardSummary, error) {
	var summary entities.DashboardSummary
	var err error

	if summary.TotalUser, err = s.userRepo.CountAll(); err != nil {
		return entities.DashboardSummary{}, err
	}
	if summary.TotalTool, err = s.toolRepo.CountAll(); err != nil {
		return entities.DashboardSummary{}, err
	}
	if summary.TotalVps, err = s.vpsRepo.CountAll(); err != nil {
		return entities.DashboardSummary{}, err
	}
	if summary.TotalProxy, err = s.proxyRepo.CountAll(); err != nil {
		return entities.DashboardSummary{}, err
	}

	return summary, nil
}

// UserSummary 某一年按月统计的注册用户数
func (s *DashboardService) UserSummary(year int) (entities.YearlySummary, error) {
	totals, err := s.userRepo.CountByMonth(year)
	if err != nil {
		return entities.YearlySummary{}, err
	}
	return entities.YearlySummary{Year: year, Timelines: fillMonths(totals)}, nil
}

// RevenueSummary 某一年按月统计的营收
func (s *DashboardService) RevenueSummary(year int) (entities.YearlySummary, error) {
	totals, err := s.orderRepo.SumRevenueByMonth(year)
	if err != nil {
		return entities.YearlySummary{}, err
	}
	return entities.YearlySummary{Year: year, Timelines: fillMonths(totals)}, nil
}

// 补齐12个月，缺失月份填0
func fillMonths(totals []entities.MonthlyTotal) []entities.MonthlyTotal {
	byMonth := make(map[int]float64, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t.Total
	}

	filled := make([]entities.MonthlyTotal, 0, 12)
	for month := 1; month <= 12; month++ {
		filled = append(filled, entities.MonthlyTotal{
			Month: month,
			Total: byMonth[month],
		})
	}
	return filled
}
