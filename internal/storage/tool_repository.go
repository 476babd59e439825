package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// PostgresToolRepository PostgreSQL工具仓库实现
type PostgresToolRepository struct {
	DB *sqlx.DB
}

var _ repositories.ToolRepository = (*PostgresToolRepository)(nil)

// NewPostgresToolRepository 创建PostgreSQL工具仓库
func NewPostgresToolRepository(db *sqlx.DB) *PostgresToolRepository {
	return &PostgresToolRepository{DB: db}
}

// Create 创建工具（连同套餐和图片）
func (r *PostgresToolRepository) Create(tool entities.Tool) (entities.Tool, error) {
	tx, err := r.DB.Beginx()
	if err != nil {
		return entities.Tool{}, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tools (
			id, code, name, description, demo, link_download, slug,
			sold_quantity, view_count, status, created_at, updated_at
		) VALUES (
			:id, :code, :name, :description, :demo, :link_download, :slug,
			:sold_quantity, :view_count, :status, :created_at, :updated_at
		)
	`
	if _, err := tx.NamedExec(query, tool); err != nil {
		return entities.Tool{}, err
	}

	if err := insertToolChildren(tx, tool); err != nil {
		return entities.Tool{}, err
	}

	if err := tx.Commit(); err != nil {
		return entities.Tool{}, err
	}

	return r.FindByID(tool.ID)
}

// FindByID 通过ID查找工具
func (r *PostgresToolRepository) FindByID(id string) (entities.Tool, error) {
	var tool entities.Tool

	if err := r.DB.Get(&tool, "SELECT * FROM tools WHERE id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return entities.Tool{}, errors.New("工具不存在")
		}
		return entities.Tool{}, err
	}

	if err := r.loadChildren(&tool); err != nil {
		return entities.Tool{}, err
	}

	return tool, nil
}

// FindAll 查找所有工具（分页）
func (r *PostgresToolRepository) FindAll(params entities.PaginationParams) ([]entities.Tool, int, error) {
	tools := []entities.Tool{}
	var totalItems int

	pattern := "%" + params.Keyword + "%"

	countQuery := "SELECT COUNT(*) FROM tools WHERE name ILIKE $1 OR code ILIKE $1"
	if err := r.DB.Get(&totalItems, countQuery, pattern); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM tools
		WHERE name ILIKE $1 OR code ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.DB.Select(&tools, query, pattern, params.Limit, params.Offset()); err != nil {
		return nil, 0, err
	}

	for i := range tools {
		if err := r.loadChildren(&tools[i]); err != nil {
			return nil, 0, err
		}
	}

	return tools, totalItems, nil
}

// Update 更新工具（整体替换套餐和图片）
func (r *PostgresToolRepository) Update(tool entities.Tool) (entities.Tool, error) {
	tx, err := r.DB.Beginx()
	if err != nil {
		return entities.Tool{}, err
	}
	defer tx.Rollback()

	query := `
		UPDATE tools SET
			name = :name,
			description = :description,
			demo = :demo,
			link_download = :link_download,
			slug = :slug,
			sold_quantity = :sold_quantity,
			view_count = :view_count,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := tx.NamedExec(query, tool)
	if err != nil {
		return entities.Tool{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return entities.Tool{}, err
	}
	if affected == 0 {
		return entities.Tool{}, errors.New("工具不存在")
	}

	if _, err := tx.Exec("DELETE FROM tool_plans WHERE tool_id = $1", tool.ID); err != nil {
		return entities.Tool{}, err
	}
	if _, err := tx.Exec("DELETE FROM tool_images WHERE tool_id = $1", tool.ID); err != nil {
		return entities.Tool{}, err
	}
	if err := insertToolChildren(tx, tool); err != nil {
		return entities.Tool{}, err
	}

	if err := tx.Commit(); err != nil {
		return entities.Tool{}, err
	}

	return r.FindByID(tool.ID)
}

// UpdateStatus 更新工具状态
func (r *PostgresToolRepository) UpdateStatus(id string, status int) error {
	result, err := r.DB.Exec("UPDATE tools SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("工具不存在")
	}
	return nil
}

// Delete 删除工具
func (r *PostgresToolRepository) Delete(id string) error {
	result, err := r.DB.Exec("DELETE FROM tools WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("工具不存在")
	}
	return nil
}

// CountAll 获取工具总数
func (r *PostgresToolRepository) CountAll() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM tools"); err != nil {
		return 0, err
	}
	return count, nil
}

// 加载工具的套餐和图片
func (r *PostgresToolRepository) loadChildren(tool *entities.Tool) error {
	tool.Plans = []entities.ToolPlan{}
	if err := r.DB.Select(&tool.Plans, "SELECT * FROM tool_plans WHERE tool_id = $1", tool.ID); err != nil {
		return err
	}

	tool.Images = []entities.ToolImage{}
	if err := r.DB.Select(&tool.Images, "SELECT * FROM tool_images WHERE tool_id = $1", tool.ID); err != nil {
		return err
	}

	return nil
}

// 写入工具的套餐和图片
func insertToolChildren(tx *sqlx.Tx, tool entities.Tool) error {
	for _, plan := range tool.Plans {
		query := `
			INSERT INTO tool_plans (id, tool_id, name, price, duration)
			VALUES (:id, :tool_id, :name, :price, :duration)
		`
		if _, err := tx.NamedExec(query, plan); err != nil {
			return err
		}
	}

	for _, image := range tool.Images {
		query := `
			INSERT INTO tool_images (id, tool_id, file_url, created_at, updated_at)
			VALUES (:id, :tool_id, :file_url, :created_at, :updated_at)
		`
		if _, err := tx.NamedExec(query, image); err != nil {
			return err
		}
	}

	return nil
}
