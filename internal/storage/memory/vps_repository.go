package memory

import (
	"errors"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// VpsRepository 内存VPS仓库
type VpsRepository struct {
	store *Store
}

var _ repositories.VpsRepository = (*VpsRepository)(nil)

// NewVpsRepository 创建内存VPS仓库
func NewVpsRepository(store *Store) *VpsRepository {
	return &VpsRepository{store: store}
}

// Create 创建VPS
func (r *VpsRepository) Create(vps entities.Vps) (entities.Vps, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.vps[vps.ID] = vps
	return vps, nil
}

// FindByID 通过ID查找VPS
func (r *VpsRepository) FindByID(id string) (entities.Vps, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	vps, ok := r.store.vps[id]
	if !ok {
		return entities.Vps{}, errors.New("VPS不存在")
	}
	return vps, nil
}

// FindAll 查找所有VPS（分页，keyword匹配名称）
func (r *VpsRepository) FindAll(params entities.PaginationParams) ([]entities.Vps, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := []entities.Vps{}
	for _, vps := range r.store.vps {
		if matchKeyword(params.Keyword, vps.Name) {
			matched = append(matched, vps)
		}
	}

	page, total := paginate(matched, func(v entities.Vps) time.Time { return v.CreatedAt }, params)
	return page, total, nil
}

// Update 更新VPS
func (r *VpsRepository) Update(vps entities.Vps) (entities.Vps, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.vps[vps.ID]; !ok {
		return entities.Vps{}, errors.New("VPS不存在")
	}
	r.store.vps[vps.ID] = vps
	return vps, nil
}

// UpdateStatus 更新VPS状态
func (r *VpsRepository) UpdateStatus(id string, status int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vps, ok := r.store.vps[id]
	if !ok {
		return errors.New("VPS不存在")
	}
	vps.Status = status
	vps.UpdatedAt = time.Now()
	r.store.vps[id] = vps
	return nil
}

// Delete 删除VPS
func (r *VpsRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.vps[id]; !ok {
		return errors.New("VPS不存在")
	}
	delete(r.store.vps, id)
	return nil
}

// CountAll 获取VPS总数
func (r *VpsRepository) CountAll() (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.vps), nil
}
