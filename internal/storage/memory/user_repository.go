package memory

import (
	"errors"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// UserRepository 内存用户仓库
type UserRepository struct {
	store *Store
}

var _ repositories.UserRepository = (*UserRepository)(nil)

// NewUserRepository 创建内存用户仓库
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create 创建用户
func (r *UserRepository) Create(user entities.User) (entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users[user.ID] = user
	return user, nil
}

// FindByID 通过ID查找用户
func (r *UserRepository) FindByID(id string) (entities.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return entities.User{}, errors.New("用户不存在")
	}
	return user, nil
}

// FindByEmail 通过邮箱查找用户
func (r *UserRepository) FindByEmail(email string) (entities.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entities.User{}, errors.New("用户不存在")
}

// FindAll 查找所有用户（分页，keyword匹配姓名或邮箱）
func (r *UserRepository) FindAll(params entities.PaginationParams) ([]entities.User, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := []entities.User{}
	for _, user := range r.store.users {
		if matchKeyword(params.Keyword, user.Fullname, user.Email) {
			matched = append(matched, user)
		}
	}

	page, total := paginate(matched, func(u entities.User) time.Time { return u.CreatedAt }, params)
	return page, total, nil
}

// Update 更新用户
func (r *UserRepository) Update(user entities.User) (entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return entities.User{}, errors.New("用户不存在")
	}
	r.store.users[user.ID] = user
	return user, nil
}

// AdjustBalance 在同一把锁内更新余额并写入交易记录
func (r *UserRepository) AdjustBalance(user entities.User, transaction entities.Transaction) (entities.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return entities.Transaction{}, errors.New("用户不存在")
	}

	r.store.users[user.ID] = user
	transaction.User = user.Summary()
	r.store.transactions[transaction.ID] = transaction
	return transaction, nil
}

// Delete 删除用户
func (r *UserRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return errors.New("用户不存在")
	}
	delete(r.store.users, id)
	return nil
}

// CountAll 获取用户总数
func (r *UserRepository) CountAll() (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.users), nil
}

// CountByMonth 按月统计某一年的注册用户数
func (r *UserRepository) CountByMonth(year int) ([]entities.MonthlyTotal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	months := make(map[int]float64)
	for _, user := range r.store.users {
		if user.CreatedAt.Year() == year {
			months[int(user.CreatedAt.Month())]++
		}
	}
	return sumByMonth(months), nil
}
