package memory

import (
	"errors"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// ProxyRepository 内存代理仓库
type ProxyRepository struct {
	store *Store
}

var _ repositories.ProxyRepository = (*ProxyRepository)(nil)

// NewProxyRepository 创建内存代理仓库
func NewProxyRepository(store *Store) *ProxyRepository {
	return &ProxyRepository{store: store}
}

// Create 创建代理
func (r *ProxyRepository) Create(proxy entities.Proxy) (entities.Proxy, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.proxies[proxy.ID] = proxy
	return proxy, nil
}

// FindByID 通过ID查找代理
func (r *ProxyRepository) FindByID(id string) (entities.Proxy, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	proxy, ok := r.store.proxies[id]
	if !ok {
		return entities.Proxy{}, errors.New("代理不存在")
	}
	return proxy, nil
}

// FindAll 查找所有代理（分页，keyword匹配名称）
func (r *ProxyRepository) FindAll(params entities.PaginationParams) ([]entities.Proxy, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := []entities.Proxy{}
	for _, proxy := range r.store.proxies {
		if matchKeyword(params.Keyword, proxy.Name) {
			matched = append(matched, proxy)
		}
	}

	page, total := paginate(matched, func(p entities.Proxy) time.Time { return p.CreatedAt }, params)
	return page, total, nil
}

// Update 更新代理
func (r *ProxyRepository) Update(proxy entities.Proxy) (entities.Proxy, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.proxies[proxy.ID]; !ok {
		return entities.Proxy{}, errors.New("代理不存在")
	}
	r.store.proxies[proxy.ID] = proxy
	return proxy, nil
}

// UpdateStatus 更新代理状态
func (r *ProxyRepository) UpdateStatus(id string, status int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	proxy, ok := r.store.proxies[id]
	if !ok {
		return errors.New("代理不存在")
	}
	proxy.Status = status
	proxy.UpdatedAt = time.Now()
	r.store.proxies[id] = proxy
	return nil
}

// Delete 删除代理
func (r *ProxyRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.proxies[id]; !ok {
		return errors.New("代理不存在")
	}
	delete(r.store.proxies, id)
	return nil
}

// CountAll 获取代理总数
func (r *ProxyRepository) CountAll() (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.proxies), nil
}
