package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// PostgresVpsRepository PostgreSQL VPS仓库实现
type PostgresVpsRepository struct {
	DB *sqlx.DB
}

var _ repositories.VpsRepository = (*PostgresVpsRepository)(nil)

// NewPostgresVpsRepository 创建PostgreSQL VPS仓库
func NewPostgresVpsRepository(db *sqlx.DB) *PostgresVpsRepository {
	return &PostgresVpsRepository{DB: db}
}

// Create 创建VPS
func (r *PostgresVpsRepository) Create(vps entities.Vps) (entities.Vps, error) {
	query := `
		INSERT INTO vps (
			id, name, description, ram, disk, cpu, bandwidth, location, os,
			price, tags, status, sold_quantity, view_count, created_at, updated_at
		) VALUES (
			:id, :name, :description, :ram, :disk, :cpu, :bandwidth, :location, :os,
			:price, :tags, :status, :sold_quantity, :view_count, :created_at, :updated_at
		) RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, vps)
	if err != nil {
		return entities.Vps{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.Vps
		if err := rows.StructScan(&result); err != nil {
			return entities.Vps{}, err
		}
		return result, nil
	}

	return entities.Vps{}, errors.New("创建VPS失败")
}

// FindByID 通过ID查找VPS
func (r *PostgresVpsRepository) FindByID(id string) (entities.Vps, error) {
	var vps entities.Vps

	if err := r.DB.Get(&vps, "SELECT * FROM vps WHERE id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return entities.Vps{}, errors.New("VPS不存在")
		}
		return entities.Vps{}, err
	}

	return vps, nil
}

// FindAll 查找所有VPS（分页）
func (r *PostgresVpsRepository) FindAll(params entities.PaginationParams) ([]entities.Vps, int, error) {
	list := []entities.Vps{}
	var totalItems int

	pattern := "%" + params.Keyword + "%"

	countQuery := "SELECT COUNT(*) FROM vps WHERE name ILIKE $1"
	if err := r.DB.Get(&totalItems, countQuery, pattern); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM vps
		WHERE name ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.DB.Select(&list, query, pattern, params.Limit, params.Offset()); err != nil {
		return nil, 0, err
	}

	return list, totalItems, nil
}

// Update 更新VPS
func (r *PostgresVpsRepository) Update(vps entities.Vps) (entities.Vps, error) {
	query := `
		UPDATE vps SET
			name = :name,
			description = :description,
			ram = :ram,
			disk = :disk,
			cpu = :cpu,
			bandwidth = :bandwidth,
			location = :location,
			os = :os,
			price = :price,
			tags = :tags,
			status = :status,
			sold_quantity = :sold_quantity,
			view_count = :view_count,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, vps)
	if err != nil {
		return entities.Vps{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.Vps
		if err := rows.StructScan(&result); err != nil {
			return entities.Vps{}, err
		}
		return result, nil
	}

	return entities.Vps{}, errors.New("VPS不存在")
}

// UpdateStatus 更新VPS状态
func (r *PostgresVpsRepository) UpdateStatus(id string, status int) error {
	result, err := r.DB.Exec("UPDATE vps SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("VPS不存在")
	}
	return nil
}

// Delete 删除VPS
func (r *PostgresVpsRepository) Delete(id string) error {
	result, err := r.DB.Exec("DELETE FROM vps WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("VPS不存在")
	}
	return nil
}

// CountAll 获取VPS总数
func (r *PostgresVpsRepository) CountAll() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM vps"); err != nil {
		return 0, err
	}
	return count, nil
}
