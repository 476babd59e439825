package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// PostgresFileRepository PostgreSQL文件元数据仓库实现
type PostgresFileRepository struct {
	DB *sqlx.DB
}

var _ repositories.FileRepository = (*PostgresFileRepository)(nil)

// NewPostgresFileRepository 创建PostgreSQL文件仓库
func NewPostgresFileRepository(db *sqlx.DB) *PostgresFileRepository {
	return &PostgresFileRepository{DB: db}
}

// Create 保存文件元数据
func (r *PostgresFileRepository) Create(file entities.StoredFile) (entities.StoredFile, error) {
	var created entities.StoredFile

	query := `
		INSERT INTO files (id, file_name, file_url, object_key, content_type, size, created_at)
		VALUES (:id, :file_name, :file_url, :object_key, :content_type, :size, :created_at)
		RETURNING *
	`
	rows, err := r.DB.NamedQuery(query, file)
	if err != nil {
		return entities.StoredFile{}, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.StructScan(&created); err != nil {
			return entities.StoredFile{}, err
		}
	}

	return created, nil
}

// FindByID 通过ID查找文件
func (r *PostgresFileRepository) FindByID(id string) (entities.StoredFile, error) {
	var file entities.StoredFile

	if err := r.DB.Get(&file, "SELECT * FROM files WHERE id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return entities.StoredFile{}, errors.New("文件不存在")
		}
		return entities.StoredFile{}, err
	}

	return file, nil
}

// FindByIDs 批量查找文件
func (r *PostgresFileRepository) FindByIDs(ids []string) ([]entities.StoredFile, error) {
	files := []entities.StoredFile{}
	if len(ids) == 0 {
		return files, nil
	}

	if err := r.DB.Select(&files, "SELECT * FROM files WHERE id = ANY($1)", pq.Array(ids)); err != nil {
		return nil, err
	}

	return files, nil
}

// Delete 删除文件元数据
func (r *PostgresFileRepository) Delete(id string) error {
	result, err := r.DB.Exec("DELETE FROM files WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("文件不存在")
	}

	return nil
}
