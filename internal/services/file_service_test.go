package services

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/memory"
)

// 对象存储替身，failAfter次成功后开始失败
type fakeObjectStore struct {
	failAfter int
	uploads   int
	objects   map[string]bool
}

func newFakeObjectStore(failAfter int) *fakeObjectStore {
	return &fakeObjectStore{failAfter: failAfter, objects: make(map[string]bool)}
}

func (s *fakeObjectStore) Upload(_ context.Context, _ *multipart.FileHeader, objectKey string) (string, error) {
	s.uploads++
	if s.uploads > s.failAfter {
		return "", errors.New("上传失败")
	}
	s.objects[objectKey] = true
	return "http://files.local/" + objectKey, nil
}

func (s *fakeObjectStore) Delete(_ context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}

func (s *fakeObjectStore) Get(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, errors.New("对象不存在")
}

// 记录Create过的文件ID，便于断言清理效果
type recordingFileRepo struct {
	repositories.FileRepository
	created []string
}

func (r *recordingFileRepo) Create(file entities.StoredFile) (entities.StoredFile, error) {
	stored, err := r.FileRepository.Create(file)
	if err == nil {
		r.created = append(r.created, stored.ID)
	}
	return stored, err
}

func uploadHeaders(names ...string) []*multipart.FileHeader {
	files := make([]*multipart.FileHeader, 0, len(names))
	for _, name := range names {
		files = append(files, &multipart.FileHeader{Filename: name, Size: 16})
	}
	return files
}

func TestFileServiceUploadMultiple(t *testing.T) {
	store := newFakeObjectStore(10)
	repo := &recordingFileRepo{FileRepository: memory.NewFileRepository(memory.NewStore())}
	svc := NewFileService(repo, store, logger.NewNop())

	stored, err := svc.UploadMultiple(context.Background(), uploadHeaders("a.png", "b.png"))
	require.NoError(t, err)

	require.Len(t, stored, 2)
	assert.Equal(t, "a.png", stored[0].FileName)
	assert.Len(t, store.objects, 2)
}

func TestFileServiceUploadMultipleCleansUpOnFailure(t *testing.T) {
	store := newFakeObjectStore(1)
	repo := &recordingFileRepo{FileRepository: memory.NewFileRepository(memory.NewStore())}
	svc := NewFileService(repo, store, logger.NewNop())

	_, err := svc.UploadMultiple(context.Background(), uploadHeaders("a.png", "b.png"))
	require.Error(t, err)

	// 第一个文件的对象和元数据都已回收
	assert.Empty(t, store.objects)
	require.Len(t, repo.created, 1)
	_, err = repo.FindByID(repo.created[0])
	assert.Error(t, err)
}

func TestFileServiceUploadSingleCleansUpOnMetadataFailure(t *testing.T) {
	store := newFakeObjectStore(10)
	repo := &failingFileRepo{}
	svc := NewFileService(repo, store, logger.NewNop())

	_, err := svc.UploadSingle(context.Background(), uploadHeaders("a.png")[0])
	require.Error(t, err)
	assert.Empty(t, store.objects)
}

// 元数据写入总是失败的仓库替身
type failingFileRepo struct {
	repositories.FileRepository
}

func (failingFileRepo) Create(entities.StoredFile) (entities.StoredFile, error) {
	return entities.StoredFile{}, errors.New("写入元数据失败")
}
