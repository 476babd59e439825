package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// PostgresProxyRepository PostgreSQL代理仓库实现
type PostgresProxyRepository struct {
	DB *sqlx.DB
}

var _ repositories.ProxyRepository = (*PostgresProxyRepository)(nil)

// NewPostgresProxyRepository 创建PostgreSQL代理仓库
func NewPostgresProxyRepository(db *sqlx.DB) *PostgresProxyRepository {
	return &PostgresProxyRepository{DB: db}
}

// Create 创建代理
func (r *PostgresProxyRepository) Create(proxy entities.Proxy) (entities.Proxy, error) {
	query := `
		INSERT INTO proxies (
			id, name, description, price, inventory, sold_quantity,
			view_count, status, created_at, updated_at
		) VALUES (
			:id, :name, :description, :price, :inventory, :sold_quantity,
			:view_count, :status, :created_at, :updated_at
		) RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, proxy)
	if err != nil {
		return entities.Proxy{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.Proxy
		if err := rows.StructScan(&result); err != nil {
			return entities.Proxy{}, err
		}
		return result, nil
	}

	return entities.Proxy{}, errors.New("创建代理失败")
}

// FindByID 通过ID查找代理
func (r *PostgresProxyRepository) FindByID(id string) (entities.Proxy, error) {
	var proxy entities.Proxy

	if err := r.DB.Get(&proxy, "SELECT * FROM proxies WHERE id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return entities.Proxy{}, errors.New("代理不存在")
		}
		return entities.Proxy{}, err
	}

	return proxy, nil
}

// FindAll 查找所有代理（分页）
func (r *PostgresProxyRepository) FindAll(params entities.PaginationParams) ([]entities.Proxy, int, error) {
	list := []entities.Proxy{}
	var totalItems int

	pattern := "%" + params.Keyword + "%"

	countQuery := "SELECT COUNT(*) FROM proxies WHERE name ILIKE $1"
	if err := r.DB.Get(&totalItems, countQuery, pattern); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM proxies
		WHERE name ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.DB.Select(&list, query, pattern, params.Limit, params.Offset()); err != nil {
		return nil, 0, err
	}

	return list, totalItems, nil
}

// Update 更新代理
func (r *PostgresProxyRepository) Update(proxy entities.Proxy) (entities.Proxy, error) {
	query := `
		UPDATE proxies SET
			name = :name,
			description = :description,
			price = :price,
			inventory = :inventory,
			sold_quantity = :sold_quantity,
			view_count = :view_count,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, proxy)
	if err != nil {
		return entities.Proxy{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.Proxy
		if err := rows.StructScan(&result); err != nil {
			return entities.Proxy{}, err
		}
		return result, nil
	}

	return entities.Proxy{}, errors.New("代理不存在")
}

// UpdateStatus 更新代理状态
func (r *PostgresProxyRepository) UpdateStatus(id string, status int) error {
	result, err := r.DB.Exec("UPDATE proxies SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("代理不存在")
	}
	return nil
}

// Delete 删除代理
func (r *PostgresProxyRepository) Delete(id string) error {
	result, err := r.DB.Exec("DELETE FROM proxies WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("代理不存在")
	}
	return nil
}

// CountAll 获取代理总数
func (r *PostgresProxyRepository) CountAll() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM proxies"); err != nil {
		return 0, err
	}
	return count, nil
}
