package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// FilesService 文件上传接口
type FilesService struct {
	c *Client
}

// Files 返回文件服务
func (c *Client) Files() *FilesService {
	return &FilesService{c: c}
}

// Upload 待上传的文件
type Upload struct {
	FileName string
	Reader   io.Reader
}

// UploadSingle 上传单个文件
func (s *FilesService) UploadSingle(ctx context.Context, upload Upload) (entities.StoredFile, error) {
	raw, err := s.uploadMultipart(ctx, "/files/upload/single", "file", []Upload{upload})
	if err != nil {
		return entities.StoredFile{}, err
	}
	return unwrap[entities.StoredFile](raw)
}

// UploadMultiple 上传多个文件
func (s *FilesService) UploadMultiple(ctx context.Context, uploads []Upload) ([]entities.StoredFile, error) {
	raw, err := s.uploadMultipart(ctx, "/files/upload/multiple", "files", uploads)
	if err != nil {
		return nil, err
	}
	return unwrap[[]entities.StoredFile](raw)
}

// Delete 删除单个文件
func (s *FilesService) Delete(ctx context.Context, id string) error {
	_, err := s.c.delete(ctx, resourcePath("files", id), nil)
	return err
}

// DeleteMultiple 批量删除文件
func (s *FilesService) DeleteMultiple(ctx context.Context, ids []string) error {
	_, err := s.c.delete(ctx, "/files/delete-multiple", entities.DeleteFilesDTO{FileIds: ids})
	return err
}

func (s *FilesService) uploadMultipart(ctx context.Context, path, field string, uploads []Upload) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, upload := range uploads {
		part, err := writer.CreateFormFile(field, upload.FileName)
		if err != nil {
			return nil, &APIError{Message: FallbackMessage}
		}
		if _, err := io.Copy(part, upload.Reader); err != nil {
			return nil, &APIError{Message: FallbackMessage}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &APIError{Message: FallbackMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.baseURL+path, &buf)
	if err != nil {
		return nil, &APIError{Message: FallbackMessage}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if s.c.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.c.token)
	}

	resp, err := s.c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: ExtractMessage(nil, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: ExtractMessage(nil, err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: ExtractMessage(raw, nil)}
	}

	return raw, nil
}
