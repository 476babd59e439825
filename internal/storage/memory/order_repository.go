package memory

import (
	"errors"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// OrderRepository 内存订单仓库
type OrderRepository struct {
	store *Store
}

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository 创建内存订单仓库
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// FindByID 通过ID查找订单
func (r *OrderRepository) FindByID(id string) (entities.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order, ok := r.store.orders[id]
	if !ok {
		return entities.Order{}, errors.New("订单不存在")
	}
	return order, nil
}

// FindAll 查找所有订单（分页，keyword匹配订单编号或用户邮箱）
func (r *OrderRepository) FindAll(params entities.PaginationParams) ([]entities.Order, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := []entities.Order{}
	for _, order := range r.store.orders {
		if matchKeyword(params.Keyword, order.Code, order.User.Email) {
			matched = append(matched, order)
		}
	}

	page, total := paginate(matched, func(o entities.Order) time.Time { return o.CreatedAt }, params)
	return page, total, nil
}

// Update 更新订单
func (r *OrderRepository) Update(order entities.Order) (entities.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[order.ID]; !ok {
		return entities.Order{}, errors.New("订单不存在")
	}
	r.store.orders[order.ID] = order
	return order, nil
}

// SumRevenueByMonth 按月统计某一年已完成订单的营收
func (r *OrderRepository) SumRevenueByMonth(year int) ([]entities.MonthlyTotal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	months := make(map[int]float64)
	for _, order := range r.store.orders {
		if order.CompletedAt != nil && order.CompletedAt.Year() == year {
			months[int(order.CompletedAt.Month())] += order.TotalPrice
		}
	}
	return sumByMonth(months), nil
}
