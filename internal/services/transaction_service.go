package services

import (
	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// TransactionService 交易服务，管理端只读
type TransactionService struct {
	repo repositories.TransactionRepository
}

// NewTransactionService 创建交易服务
func NewTransactionService(repo repositories.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// FindAll 获取所有交易（分页）
func (s *TransactionService) FindAll(params entities.PaginationParams) ([]entities.Transaction, int, error) {
	params.Normalize()
	return s.repo.FindAll(params)
}

// FindByID 通过ID查找交易
func (s *TransactionService) FindByID(id string) (entities.Transaction, error) {
	tx, err := s.repo.FindByID(id)
	if err != nil {
		return entities.Transaction{}, NotFoundError("Transaction not found")
	}
	return tx, nil
}
