package repositories

import "github.com/AutoHubWeb/AdminPanel/internal/domain/entities"

// ProxyRepository 代理仓库接口
type ProxyRepository interface {
	// Create 创建代理
	Create(proxy entities.Proxy) (entities.Proxy, error)

	// FindByID 通过ID查找代理
	FindByID(id string) (entities.Proxy, error)

	// FindAll 查找所有代理（分页）
	FindAll(params entities.PaginationParams) ([]entities.Proxy, int, error)

	// Update 更新代理
	Update(proxy entities.Proxy) (entities.Proxy, error)

	// UpdateStatus 更新代理状态
	UpdateStatus(id string, status int) error

	// Delete 删除代理
	Delete(id string) error

	// CountAll 获取代理总数
	CountAll() (int, error)
}
