package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// PostgresTransactionRepository PostgreSQL交易仓库实现
type PostgresTransactionRepository struct {
	DB *sqlx.DB
}

var _ repositories.TransactionRepository = (*PostgresTransactionRepository)(nil)

// NewPostgresTransactionRepository 创建PostgreSQL交易仓库
func NewPostgresTransactionRepository(db *sqlx.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{DB: db}
}

type transactionRow struct {
	ID            string    `db:"id"`
	Code          string    `db:"code"`
	UserID        string    `db:"user_id"`
	Amount        float64   `db:"amount"`
	BalanceBefore float64   `db:"balance_before"`
	BalanceAfter  float64   `db:"balance_after"`
	Action        string    `db:"action"`
	Note          string    `db:"note"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	UserCode      string    `db:"user_code"`
	UserFullname  string    `db:"user_fullname"`
	UserEmail     string    `db:"user_email"`
}

func (row transactionRow) toEntity() entities.Transaction {
	return entities.Transaction{
		ID:            row.ID,
		Code:          row.Code,
		UserID:        row.UserID,
		Amount:        row.Amount,
		BalanceBefore: row.BalanceBefore,
		BalanceAfter:  row.BalanceAfter,
		Action:        row.Action,
		Note:          row.Note,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		User: entities.UserSummary{
			ID:       row.UserID,
			Code:     row.UserCode,
			Fullname: row.UserFullname,
			Email:    row.UserEmail,
		},
	}
}

const transactionSelect = `
	SELECT t.*, u.code AS user_code, u.fullname AS user_fullname, u.email AS user_email
	FROM transactions t
	JOIN users u ON u.id = t.user_id
`

// Create 创建交易记录
func (r *PostgresTransactionRepository) Create(transaction entities.Transaction) (entities.Transaction, error) {
	query := `
		INSERT INTO transactions (id, code, user_id, amount, balance_before, balance_after, action, note, created_at, updated_at)
		VALUES (:id, :code, :user_id, :amount, :balance_before, :balance_after, :action, :note, :created_at, :updated_at)
	`
	if _, err := r.DB.NamedExec(query, transaction); err != nil {
		return entities.Transaction{}, err
	}

	return r.FindByID(transaction.ID)
}

// FindByID 通过ID查找交易
func (r *PostgresTransactionRepository) FindByID(id string) (entities.Transaction, error) {
	var row transactionRow

	if err := r.DB.Get(&row, transactionSelect+" WHERE t.id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return entities.Transaction{}, errors.New("交易不存在")
		}
		return entities.Transaction{}, err
	}

	return row.toEntity(), nil
}

// FindAll 查找所有交易（分页，keyword匹配交易编号或用户邮箱）
func (r *PostgresTransactionRepository) FindAll(params entities.PaginationParams) ([]entities.Transaction, int, error) {
	rows := []transactionRow{}
	var totalItems int

	pattern := "%" + params.Keyword + "%"

	countQuery := `
		SELECT COUNT(*)
		FROM transactions t
		JOIN users u ON u.id = t.user_id
		WHERE t.code ILIKE $1 OR u.email ILIKE $1
	`
	if err := r.DB.Get(&totalItems, countQuery, pattern); err != nil {
		return nil, 0, err
	}

	query := transactionSelect + `
		WHERE t.code ILIKE $1 OR u.email ILIKE $1
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.DB.Select(&rows, query, pattern, params.Limit, params.Offset()); err != nil {
		return nil, 0, err
	}

	transactions := make([]entities.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.toEntity())
	}

	return transactions, totalItems, nil
}
