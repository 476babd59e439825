package repositories

import "github.com/AutoHubWeb/AdminPanel/internal/domain/entities"

// OrderRepository 订单仓库接口
type OrderRepository interface {
	// FindByID 通过ID查找订单（含用户摘要和类型子对象）
	FindByID(id string) (entities.Order, error)

	// FindAll 查找所有订单（分页，keyword匹配订单编号或用户邮箱）
	FindAll(params entities.PaginationParams) ([]entities.Order, int, error)

	// Update 更新订单
	Update(order entities.Order) (entities.Order, error)

	// SumRevenueByMonth 按月统计某一年已完成订单的营收
	SumRevenueByMonth(year int) ([]entities.MonthlyTotal, error)
}
