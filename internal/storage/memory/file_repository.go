package memory

import (
	"errors"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// FileRepository 内存文件仓库
type FileRepository struct {
	store *Store
}

var _ repositories.FileRepository = (*FileRepository)(nil)

// NewFileRepository 创建内存文件仓库
func NewFileRepository(store *Store) *FileRepository {
	return &FileRepository{store: store}
}

// Create 写入文件元数据
func (r *FileRepository) Create(file entities.StoredFile) (entities.StoredFile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.files[file.ID] = file
	return file, nil
}

// FindByID 通过ID查找文件
func (r *FileRepository) FindByID(id string) (entities.StoredFile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	file, ok := r.store.files[id]
	if !ok {
		return entities.StoredFile{}, errors.New("文件不存在")
	}
	return file, nil
}

// FindByIDs 批量查找文件
func (r *FileRepository) FindByIDs(ids []string) ([]entities.StoredFile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	files := []entities.StoredFile{}
	for _, id := range ids {
		if file, ok := r.store.files[id]; ok {
			files = append(files, file)
		}
	}
	return files, nil
}

// Delete 删除文件元数据
func (r *FileRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.files[id]; !ok {
		return errors.New("文件不存在")
	}
	delete(r.store.files, id)
	return nil
}
