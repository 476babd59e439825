package repositories

import "github.com/AutoHubWeb/AdminPanel/internal/domain/entities"

// FileRepository 文件元数据仓库接口
type FileRepository interface {
	// Create 写入文件元数据
	Create(file entities.StoredFile) (entities.StoredFile, error)

	// FindByID 通过ID查找文件
	FindByID(id string) (entities.StoredFile, error)

	// FindByIDs 批量查找文件
	FindByIDs(ids []string) ([]entities.StoredFile, error)

	// Delete 删除文件元数据
	Delete(id string) error
}
