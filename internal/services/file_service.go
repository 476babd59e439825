package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/objectstore"
)

// FileService 文件服务，内容进对象存储，元数据进仓库
type FileService struct {
	repo   repositories.FileRepository
	store  objectstore.ObjectStore
	logger logger.Logger
}

// NewFileService 创建文件服务
func NewFileService(repo repositories.FileRepository, store objectstore.ObjectStore, log logger.Logger) *FileService {
	return &FileService{
		repo:   repo,
		store:  store,
		logger: log,
	}
}

// UploadSingle 上传单个文件
func (s *FileService) UploadSingle(ctx context.Context, file *multipart.FileHeader) (entities.StoredFile, error) {
	id := uuid.New().String()
	objectKey := fmt.Sprintf("tool/%s%s", id, filepath.Ext(file.Filename))

	url, err := s.store.Upload(ctx, file, objectKey)
	if err != nil {
		return entities.StoredFile{}, err
	}

	stored := entities.StoredFile{
		ID:          id,
		FileName:    file.Filename,
		FileUrl:     url,
		ObjectKey:   objectKey,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		CreatedAt:   time.Now(),
	}

	created, err := s.repo.Create(stored)
	if err != nil {
		// 元数据写入失败时清理已上传的对象
		if cleanupErr := s.store.Delete(ctx, objectKey); cleanupErr != nil {
			s.logger.WithError(cleanupErr).Warn("清理对象失败: %s", objectKey)
		}
		return entities.StoredFile{}, err
	}

	return created, nil
}

// UploadMultiple 批量上传文件。中途失败时回收本批已上传的文件，不留孤儿对象。
func (s *FileService) UploadMultiple(ctx context.Context, files []*multipart.FileHeader) ([]entities.StoredFile, error) {
	stored := make([]entities.StoredFile, 0, len(files))
	for _, file := range files {
		f, err := s.UploadSingle(ctx, file)
		if err != nil {
			for _, done := range stored {
				if cleanupErr := s.Delete(ctx, done.ID); cleanupErr != nil {
					s.logger.WithError(cleanupErr).Warn("清理文件失败: %s", done.ID)
				}
			}
			return nil, err
		}
		stored = append(stored, f)
	}
	return stored, nil
}

// Delete 删除文件及其元数据
func (s *FileService) Delete(ctx context.Context, id string) error {
	file, err := s.repo.FindByID(id)
	if err != nil {
		return NotFoundError("File not found")
	}

	if err := s.store.Delete(ctx, file.ObjectKey); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// DeleteMultiple 批量删除文件
func (s *FileService) DeleteMultiple(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
