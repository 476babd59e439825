package repositories

import "github.com/AutoHubWeb/AdminPanel/internal/domain/entities"

// UserRepository 用户仓库接口
type UserRepository interface {
	// Create 创建用户
	Create(user entities.User) (entities.User, error)

	// FindByID 通过ID查找用户
	FindByID(id string) (entities.User, error)

	// FindByEmail 通过邮箱查找用户
	FindByEmail(email string) (entities.User, error)

	// FindAll 查找所有用户（分页，keyword匹配姓名或邮箱）
	FindAll(params entities.PaginationParams) ([]entities.User, int, error)

	// Update 更新用户
	Update(user entities.User) (entities.User, error)

	// AdjustBalance 原子地更新用户余额并写入交易记录，两者要么都生效要么都不生效
	AdjustBalance(user entities.User, transaction entities.Transaction) (entities.Transaction, error)

	// Delete 删除用户
	Delete(id string) error

	// CountAll 获取用户总数
	CountAll() (int, error)

	// CountByMonth 按月统计某一年的注册用户数
	CountByMonth(year int) ([]entities.MonthlyTotal, error)
}
