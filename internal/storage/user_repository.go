package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// PostgresUserRepository PostgreSQL用户仓库实现
type PostgresUserRepository struct {
	DB *sqlx.DB
}

var _ repositories.UserRepository = (*PostgresUserRepository)(nil)

// NewPostgresUserRepository 创建PostgreSQL用户仓库
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// Create 创建用户
func (r *PostgresUserRepository) Create(user entities.User) (entities.User, error) {
	query := `
		INSERT INTO users (
			id, code, fullname, email, phone, password_hash, role, is_locked,
			account_balance, last_login, created_at, updated_at
		) VALUES (
			:id, :code, :fullname, :email, :phone, :password_hash, :role, :is_locked,
			:account_balance, :last_login, :created_at, :updated_at
		) RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, user)
	if err != nil {
		return entities.User{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.User
		if err := rows.StructScan(&result); err != nil {
			return entities.User{}, err
		}
		return result, nil
	}

	return entities.User{}, errors.New("创建用户失败")
}

// FindByID 通过ID查找用户
func (r *PostgresUserRepository) FindByID(id string) (entities.User, error) {
	var user entities.User

	query := "SELECT * FROM users WHERE id = $1"
	if err := r.DB.Get(&user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return entities.User{}, errors.New("用户不存在")
		}
		return entities.User{}, err
	}

	return user, nil
}

// FindByEmail 通过邮箱查找用户
func (r *PostgresUserRepository) FindByEmail(email string) (entities.User, error) {
	var user entities.User

	query := "SELECT * FROM users WHERE email = $1"
	if err := r.DB.Get(&user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return entities.User{}, errors.New("用户不存在")
		}
		return entities.User{}, err
	}

	return user, nil
}

// FindAll 查找所有用户（分页，keyword匹配姓名或邮箱）
func (r *PostgresUserRepository) FindAll(params entities.PaginationParams) ([]entities.User, int, error) {
	users := []entities.User{}
	var totalItems int

	pattern := "%" + params.Keyword + "%"

	countQuery := "SELECT COUNT(*) FROM users WHERE fullname ILIKE $1 OR email ILIKE $1"
	if err := r.DB.Get(&totalItems, countQuery, pattern); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM users
		WHERE fullname ILIKE $1 OR email ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.DB.Select(&users, query, pattern, params.Limit, params.Offset()); err != nil {
		return nil, 0, err
	}

	return users, totalItems, nil
}

// Update 更新用户
func (r *PostgresUserRepository) Update(user entities.User) (entities.User, error) {
	query := `
		UPDATE users SET
			fullname = :fullname,
			email = :email,
			phone = :phone,
			password_hash = :password_hash,
			role = :role,
			is_locked = :is_locked,
			account_balance = :account_balance,
			last_login = :last_login,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, user)
	if err != nil {
		return entities.User{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.User
		if err := rows.StructScan(&result); err != nil {
			return entities.User{}, err
		}
		return result, nil
	}

	return entities.User{}, errors.New("用户不存在")
}

// AdjustBalance 在同一数据库事务内更新余额并写入交易记录
func (r *PostgresUserRepository) AdjustBalance(user entities.User, transaction entities.Transaction) (entities.Transaction, error) {
	tx, err := r.DB.Beginx()
	if err != nil {
		return entities.Transaction{}, err
	}
	defer tx.Rollback()

	result, err := tx.NamedExec(
		"UPDATE users SET account_balance = :account_balance, updated_at = :updated_at WHERE id = :id",
		user,
	)
	if err != nil {
		return entities.Transaction{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return entities.Transaction{}, err
	}
	if affected == 0 {
		return entities.Transaction{}, errors.New("用户不存在")
	}

	insert := `
		INSERT INTO transactions (id, code, user_id, amount, balance_before, balance_after, action, note, created_at, updated_at)
		VALUES (:id, :code, :user_id, :amount, :balance_before, :balance_after, :action, :note, :created_at, :updated_at)
	`
	if _, err := tx.NamedExec(insert, transaction); err != nil {
		return entities.Transaction{}, err
	}

	if err := tx.Commit(); err != nil {
		return entities.Transaction{}, err
	}

	transaction.User = user.Summary()
	return transaction, nil
}

// Delete 删除用户
func (r *PostgresUserRepository) Delete(id string) error {
	result, err := r.DB.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("用户不存在")
	}

	return nil
}

// CountAll 获取用户总数
func (r *PostgresUserRepository) CountAll() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, err
	}
	return count, nil
}

// CountByMonth 按月统计某一年的注册用户数
func (r *PostgresUserRepository) CountByMonth(year int) ([]entities.MonthlyTotal, error) {
	totals := []entities.MonthlyTotal{}

	query := `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*)::float8 AS total
		FROM users
		WHERE EXTRACT(YEAR FROM created_at) = $1
		GROUP BY month
		ORDER BY month
	`
	if err := r.DB.Select(&totals, query, year); err != nil {
		return nil, err
	}

	return totals, nil
}
