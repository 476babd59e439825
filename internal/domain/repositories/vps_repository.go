package repositories

import "github.com/AutoHubWeb/AdminPanel/internal/domain/entities"

// VpsRepository VPS仓库接口
type VpsRepository interface {
	// Create 创建VPS
	Create(vps entities.Vps) (entities.Vps, error)

	// FindByID 通过ID查找VPS
	FindByID(id string) (entities.Vps, error)

	// FindAll 查找所有VPS（分页）
	FindAll(params entities.PaginationParams) ([]entities.Vps, int, error)

	// Update 更新VPS
	Update(vps entities.Vps) (entities.Vps, error)

	// UpdateStatus 更新VPS状态
	UpdateStatus(id string, status int) error

	// Delete 删除VPS
	Delete(id string) error

	// CountAll 获取VPS总数
	CountAll() (int, error)
}
