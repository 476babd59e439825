package objectstore

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/AutoHubWeb/AdminPanel/internal/config"
)

// ObjectStore 对象存储接口
type ObjectStore interface {
	// Upload 上传文件内容，返回可公开访问的URL
	Upload(ctx context.Context, file *multipart.FileHeader, objectKey string) (string, error)

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// Get 读取对象内容
	Get(ctx context.Context, objectKey string) (io.ReadCloser, error)
}

// MinioStore MinIO实现的对象存储
type MinioStore struct {
	client     *minio.Client
	bucketName string
	publicURL  string
}

var _ ObjectStore = (*MinioStore)(nil)

// NewMinioStore 创建MinIO对象存储
func NewMinioStore(cfg config.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	// 检查存储桶是否存在，不存在则创建
	exists, err := client.BucketExists(context.Background(), cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("检查存储桶失败: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("创建存储桶失败: %w", err)
		}
	}

	return &MinioStore{
		client:     client,
		bucketName: cfg.BucketName,
		publicURL:  strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload 上传文件到MinIO
func (s *MinioStore) Upload(ctx context.Context, file *multipart.FileHeader, objectKey string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("打开文件失败: %w", err)
	}
	defer src.Close()

	_, err = s.client.PutObject(
		ctx,
		s.bucketName,
		objectKey,
		src,
		file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")},
	)
	if err != nil {
		return "", fmt.Errorf("上传文件失败: %w", err)
	}

	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucketName, objectKey), nil
	}

	// 未配置公开地址时回退到预签名URL
	url, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, 24*time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("获取文件URL失败: %w", err)
	}
	return url.String(), nil
}

// Delete 从MinIO删除对象
func (s *MinioStore) Delete(ctx context.Context, objectKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("删除文件失败: %w", err)
	}
	return nil
}

// Get 读取对象内容
func (s *MinioStore) Get(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("获取文件内容失败: %w", err)
	}
	return obj, nil
}
