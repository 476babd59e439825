package repositories

import "github.com/AutoHubWeb/AdminPanel/internal/domain/entities"

// ToolRepository 工具仓库接口
type ToolRepository interface {
	// Create 创建工具（连同套餐和图片）
	Create(tool entities.Tool) (entities.Tool, error)

	// FindByID 通过ID查找工具
	FindByID(id string) (entities.Tool, error)

	// FindAll 查找所有工具（分页）
	FindAll(params entities.PaginationParams) ([]entities.Tool, int, error)

	// Update 更新工具（整体替换套餐和图片）
	Update(tool entities.Tool) (entities.Tool, error)

	// UpdateStatus 更新工具状态
	UpdateStatus(id string, status int) error

	// Delete 删除工具
	Delete(id string) error

	// CountAll 获取工具总数
	CountAll() (int, error)
}
