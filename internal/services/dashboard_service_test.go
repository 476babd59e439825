package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/memory"
)

func newDashboardService(store *memory.Store) *DashboardService {
	return NewDashboardService(
		memory.NewUserRepository(store),
		memory.NewToolRepository(store),
		memory.NewVpsRepository(store),
		memory.NewProxyRepository(store),
		memory.NewOrderRepository(store),
	)
}

func TestDashboardSummary(t *testing.T) {
	store := memory.NewStore()
	svc := newDashboardService(store)

	store.PutUser(entities.User{ID: "u1", Email: "a@example.com"})
	store.PutUser(entities.User{ID: "u2", Email: "b@example.com"})
	store.PutTool(entities.Tool{ID: "t1", Name: "Auto Farm"})

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalUser)
	assert.Equal(t, 1, summary.TotalTool)
	assert.Equal(t, 0, summary.TotalVps)
	assert.Equal(t, 0, summary.TotalProxy)
}

func TestDashboardUserSummaryFillsAllMonths(t *testing.T) {
	store := memory.NewStore()
	svc := newDashboardService(store)

	year := 2026
	store.PutUser(entities.User{
		ID:        "u1",
		Email:     "march@example.com",
		CreatedAt: time.Date(year, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	store.PutUser(entities.User{
		ID:        "u2",
		Email:     "march2@example.com",
		CreatedAt: time.Date(year, time.March, 20, 0, 0, 0, 0, time.UTC),
	})
	store.PutUser(entities.User{
		ID:        "u3",
		Email:     "lastyear@example.com",
		CreatedAt: time.Date(year-1, time.March, 1, 0, 0, 0, 0, time.UTC),
	})

	summary, err := svc.UserSummary(year)
	require.NoError(t, err)

	assert.Equal(t, year, summary.Year)
	require.Len(t, summary.Timelines, 12)
	assert.Equal(t, 3, summary.Timelines[2].Month)
	assert.Equal(t, 2.0, summary.Timelines[2].Total)
	assert.Equal(t, 0.0, summary.Timelines[0].Total)
}

func TestDashboardRevenueSummary(t *testing.T) {
	store := memory.NewStore()
	svc := newDashboardService(store)

	year := 2026
	store.PutUser(entities.User{ID: "u1", Email: "buyer@example.com"})

	completed := time.Date(year, time.June, 10, 0, 0, 0, 0, time.UTC)
	store.PutOrder(entities.Order{
		ID:          "o1",
		Code:        "O1",
		UserID:      "u1",
		Type:        entities.OrderTypeVps,
		TotalPrice:  20,
		Status:      entities.OrderStatusActive,
		CompletedAt: &completed,
	})
	store.PutOrder(entities.Order{
		ID:         "o2",
		Code:       "O2",
		UserID:     "u1",
		Type:       entities.OrderTypeTool,
		TotalPrice: 9.99,
		Status:     entities.OrderStatusSetup,
	})

	summary, err := svc.RevenueSummary(year)
	require.NoError(t, err)

	require.Len(t, summary.Timelines, 12)
	// 只统计已完成订单
	assert.Equal(t, 20.0, summary.Timelines[5].Total)
	var total float64
	for _, point := range summary.Timelines {
		total += point.Total
	}
	assert.Equal(t, 20.0, total)
}
