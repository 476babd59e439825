// Package memory 提供内存仓库实现，用于本地开发模式和测试。
// 数据可以从JSON夹具文件加载，行为与PostgreSQL实现保持一致。
package memory

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// Store 内存数据存储
type Store struct {
	mu           sync.RWMutex
	users        map[string]entities.User
	tools        map[string]entities.Tool
	vps          map[string]entities.Vps
	proxies      map[string]entities.Proxy
	orders       map[string]entities.Order
	transactions map[string]entities.Transaction
	files        map[string]entities.StoredFile
}

// NewStore 创建空的内存存储
func NewStore() *Store {
	return &Store{
		users:        make(map[string]entities.User),
		tools:        make(map[string]entities.Tool),
		vps:          make(map[string]entities.Vps),
		proxies:      make(map[string]entities.Proxy),
		orders:       make(map[string]entities.Order),
		transactions: make(map[string]entities.Transaction),
		files:        make(map[string]entities.StoredFile),
	}
}

// 夹具文件中需要携带JSON序列化排除字段的包装类型
type fixtureUser struct {
	entities.User
	PasswordHash string `json:"passwordHash"`
}

type fixtureOrder struct {
	entities.Order
	UserID string `json:"userId"`
}

type fixtureTransaction struct {
	entities.Transaction
	UserID string `json:"userId"`
}

type fixtureFile struct {
	entities.StoredFile
	ObjectKey string `json:"objectKey"`
}

type fixtureData struct {
	Users        []fixtureUser        `json:"users"`
	Tools        []entities.Tool      `json:"tools"`
	Vps          []entities.Vps       `json:"vps"`
	Proxies      []entities.Proxy     `json:"proxies"`
	Orders       []fixtureOrder       `json:"orders"`
	Transactions []fixtureTransaction `json:"transactions"`
	Files        []fixtureFile        `json:"files"`
}

// LoadFixtures 从JSON夹具文件加载数据
func (s *Store) LoadFixtures(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var data fixtureData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range data.Users {
		user := f.User
		user.PasswordHash = f.PasswordHash
		s.users[user.ID] = user
	}
	for _, tool := range data.Tools {
		s.tools[tool.ID] = tool
	}
	for _, v := range data.Vps {
		s.vps[v.ID] = v
	}
	for _, proxy := range data.Proxies {
		s.proxies[proxy.ID] = proxy
	}
	for _, f := range data.Orders {
		order := f.Order
		order.UserID = f.UserID
		if user, ok := s.users[order.UserID]; ok {
			order.User = user.Summary()
		}
		s.orders[order.ID] = order
	}
	for _, f := range data.Transactions {
		tx := f.Transaction
		tx.UserID = f.UserID
		if user, ok := s.users[tx.UserID]; ok {
			tx.User = user.Summary()
		}
		s.transactions[tx.ID] = tx
	}
	for _, f := range data.Files {
		file := f.StoredFile
		file.ObjectKey = f.ObjectKey
		s.files[file.ID] = file
	}

	return nil
}

// PutUser 直接写入一条用户记录，夹具加载和测试使用
func (s *Store) PutUser(user entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

// PutOrder 直接写入一条订单记录，用户摘要从已有用户补全
func (s *Store) PutOrder(order entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[order.UserID]; ok {
		order.User = user.Summary()
	}
	s.orders[order.ID] = order
}

// PutTool 直接写入一条工具记录
func (s *Store) PutTool(tool entities.Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools[tool.ID] = tool
}

// 大小写不敏感的keyword匹配，等同于ILIKE '%keyword%'
func matchKeyword(keyword string, fields ...string) bool {
	if keyword == "" {
		return true
	}
	keyword = strings.ToLower(keyword)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

// 按创建时间倒序排序后切出当前页
func paginate[T any](items []T, createdAt func(T) time.Time, params entities.PaginationParams) ([]T, int) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})

	total := len(items)
	start := params.Offset()
	if start >= total {
		return []T{}, total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return items[start:end], total
}

// 按月聚合某一年的数值
func sumByMonth(months map[int]float64) []entities.MonthlyTotal {
	totals := make([]entities.MonthlyTotal, 0, len(months))
	for month, total := range months {
		totals = append(totals, entities.MonthlyTotal{Month: month, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals
}
