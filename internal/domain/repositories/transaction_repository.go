package repositories

import "github.com/AutoHubWeb/AdminPanel/internal/domain/entities"

// TransactionRepository 交易仓库接口
type TransactionRepository interface {
	// Create 写入交易记录
	Create(tx entities.Transaction) (entities.Transaction, error)

	// FindByID 通过ID查找交易
	FindByID(id string) (entities.Transaction, error)

	// FindAll 查找所有交易（分页，keyword匹配交易编号或用户邮箱）
	FindAll(params entities.PaginationParams) ([]entities.Transaction, int, error)
}
