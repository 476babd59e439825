package memory

import (
	"errors"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// TransactionRepository 内存交易仓库
type TransactionRepository struct {
	store *Store
}

var _ repositories.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository 创建内存交易仓库
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// Create 写入交易记录
func (r *TransactionRepository) Create(tx entities.Transaction) (entities.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user, ok := r.store.users[tx.UserID]; ok {
		tx.User = user.Summary()
	}
	r.store.transactions[tx.ID] = tx
	return tx, nil
}

// FindByID 通过ID查找交易
func (r *TransactionRepository) FindByID(id string) (entities.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tx, ok := r.store.transactions[id]
	if !ok {
		return entities.Transaction{}, errors.New("交易不存在")
	}
	return tx, nil
}

// FindAll 查找所有交易（分页，keyword匹配交易编号或用户邮箱）
func (r *TransactionRepository) FindAll(params entities.PaginationParams) ([]entities.Transaction, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := []entities.Transaction{}
	for _, tx := range r.store.transactions {
		if matchKeyword(params.Keyword, tx.Code, tx.User.Email) {
			matched = append(matched, tx)
		}
	}

	page, total := paginate(matched, func(t entities.Transaction) time.Time { return t.CreatedAt }, params)
	return page, total, nil
}
