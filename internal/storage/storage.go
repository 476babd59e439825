package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/AutoHubWeb/AdminPanel/internal/config"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/memory"
)

// Repositories 所有仓库的集合
type Repositories struct {
	db                    *sqlx.DB
	UserRepository        repositories.UserRepository
	ToolRepository        repositories.ToolRepository
	VpsRepository         repositories.VpsRepository
	ProxyRepository       repositories.ProxyRepository
	OrderRepository       repositories.OrderRepository
	TransactionRepository repositories.TransactionRepository
	FileRepository        repositories.FileRepository
}

// NewDBConnection 创建数据库连接
func NewDBConnection(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	return sqlx.Connect("postgres", psqlInfo)
}

// NewRepositories 创建存储库集合
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		db:                    db,
		UserRepository:        NewPostgresUserRepository(db),
		ToolRepository:        NewPostgresToolRepository(db),
		VpsRepository:         NewPostgresVpsRepository(db),
		ProxyRepository:       NewPostgresProxyRepository(db),
		OrderRepository:       NewPostgresOrderRepository(db),
		TransactionRepository: NewPostgresTransactionRepository(db),
		FileRepository:        NewPostgresFileRepository(db),
	}
}

// NewMemoryRepositories 基于内存存储创建仓库集合，用于开发模式和测试
func NewMemoryRepositories(store *memory.Store) *Repositories {
	return &Repositories{
		UserRepository:        memory.NewUserRepository(store),
		ToolRepository:        memory.NewToolRepository(store),
		VpsRepository:         memory.NewVpsRepository(store),
		ProxyRepository:       memory.NewProxyRepository(store),
		OrderRepository:       memory.NewOrderRepository(store),
		TransactionRepository: memory.NewTransactionRepository(store),
		FileRepository:        memory.NewFileRepository(store),
	}
}

// Close 关闭数据库连接
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
