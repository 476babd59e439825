// Package session 管理客户端的登录会话。会话以键值对形式持久化，
// 与浏览器localStorage使用同一组键名，方便两端共用同一套语义。
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// 会话持久化使用的键
const (
	KeyAuthToken       = "authToken"
	KeyRefreshToken    = "refreshToken"
	KeyUser            = "user"
	KeyIsAuthenticated = "isAuthenticated"
)

// ErrNotAuthenticated 会话中没有已登录用户
var ErrNotAuthenticated = errors.New("session: not authenticated")

// Store 键值存储接口
type Store interface {
	// Get 读取键值，键不存在时返回空串和false
	Get(key string) (string, bool)

	// Set 写入键值
	Set(key, value string) error

	// Delete 删除键
	Delete(key string) error
}

// FileStore 文件实现的键值存储，内容是单个JSON对象
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore 创建文件键值存储
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]string, error) {
	values := make(map[string]string)

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, err
	}

	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	raw, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0600)
}

// Get 读取键值
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false
	}
	value, ok := values[key]
	return value, ok
}

// Set 写入键值
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete 删除键
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	delete(values, key)
	return s.save(values)
}

// Session 登录会话
type Session struct {
	store Store
}

// New 创建会话
func New(store Store) *Session {
	return &Session{store: store}
}

// Login 持久化登录状态，写入全部四个键
func (s *Session) Login(user entities.User, accessToken, refreshToken string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := s.store.Set(KeyAuthToken, accessToken); err != nil {
		return err
	}
	if err := s.store.Set(KeyRefreshToken, refreshToken); err != nil {
		return err
	}
	if err := s.store.Set(KeyUser, string(raw)); err != nil {
		return err
	}
	return s.store.Set(KeyIsAuthenticated, "true")
}

// Logout 清除全部四个键
func (s *Session) Logout() error {
	for _, key := range []string{KeyAuthToken, KeyRefreshToken, KeyUser, KeyIsAuthenticated} {
		if err := s.store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Current 返回已登录用户。isAuthenticated缺失视为未登录。
func (s *Session) Current() (entities.User, error) {
	if flag, ok := s.store.Get(KeyIsAuthenticated); !ok || flag != "true" {
		return entities.User{}, ErrNotAuthenticated
	}

	raw, ok := s.store.Get(KeyUser)
	if !ok {
		return entities.User{}, ErrNotAuthenticated
	}

	var user entities.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return entities.User{}, ErrNotAuthenticated
	}
	return user, nil
}

// Token 返回访问令牌，未登录时为空串
func (s *Session) Token() string {
	token, _ := s.store.Get(KeyAuthToken)
	return token
}

// RefreshToken 返回刷新令牌，未登录时为空串
func (s *Session) RefreshToken() string {
	token, _ := s.store.Get(KeyRefreshToken)
	return token
}
