package objectstore

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore 本地磁盘实现的对象存储，--memory开发模式使用
type LocalStore struct {
	baseDir   string
	publicURL string
}

var _ ObjectStore = (*LocalStore)(nil)

// NewLocalStore 创建本地磁盘对象存储
func NewLocalStore(baseDir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("创建存储目录失败: %w", err)
	}

	return &LocalStore{
		baseDir:   baseDir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *LocalStore) objectPath(objectKey string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(objectKey))
}

// Upload 写入文件到本地磁盘
func (s *LocalStore) Upload(ctx context.Context, file *multipart.FileHeader, objectKey string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("打开文件失败: %w", err)
	}
	defer src.Close()

	path := s.objectPath(objectKey)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("创建存储目录失败: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, objectKey), nil
}

// Delete 删除本地文件
func (s *LocalStore) Delete(ctx context.Context, objectKey string) error {
	if err := os.Remove(s.objectPath(objectKey)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除文件失败: %w", err)
	}
	return nil
}

// Get 读取本地文件内容
func (s *LocalStore) Get(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	file, err := os.Open(s.objectPath(objectKey))
	if err != nil {
		return nil, fmt.Errorf("获取文件内容失败: %w", err)
	}
	return file, nil
}
