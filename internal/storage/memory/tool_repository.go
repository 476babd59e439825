package memory

import (
	"errors"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// ToolRepository 内存工具仓库
type ToolRepository struct {
	store *Store
}

var _ repositories.ToolRepository = (*ToolRepository)(nil)

// NewToolRepository 创建内存工具仓库
func NewToolRepository(store *Store) *ToolRepository {
	return &ToolRepository{store: store}
}

// Create 创建工具
func (r *ToolRepository) Create(tool entities.Tool) (entities.Tool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.tools[tool.ID] = tool
	return tool, nil
}

// FindByID 通过ID查找工具
func (r *ToolRepository) FindByID(id string) (entities.Tool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tool, ok := r.store.tools[id]
	if !ok {
		return entities.Tool{}, errors.New("工具不存在")
	}
	return tool, nil
}

// FindAll 查找所有工具（分页，keyword匹配名称或编号）
func (r *ToolRepository) FindAll(params entities.PaginationParams) ([]entities.Tool, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := []entities.Tool{}
	for _, tool := range r.store.tools {
		if matchKeyword(params.Keyword, tool.Name, tool.Code) {
			matched = append(matched, tool)
		}
	}

	page, total := paginate(matched, func(t entities.Tool) time.Time { return t.CreatedAt }, params)
	return page, total, nil
}

// Update 更新工具
func (r *ToolRepository) Update(tool entities.Tool) (entities.Tool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tools[tool.ID]; !ok {
		return entities.Tool{}, errors.New("工具不存在")
	}
	r.store.tools[tool.ID] = tool
	return tool, nil
}

// UpdateStatus 更新工具状态
func (r *ToolRepository) UpdateStatus(id string, status int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tool, ok := r.store.tools[id]
	if !ok {
		return errors.New("工具不存在")
	}
	tool.Status = status
	tool.UpdatedAt = time.Now()
	r.store.tools[id] = tool
	return nil
}

// Delete 删除工具
func (r *ToolRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tools[id]; !ok {
		return errors.New("工具不存在")
	}
	delete(r.store.tools, id)
	return nil
}

// CountAll 获取工具总数
func (r *ToolRepository) CountAll() (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.tools), nil
}
