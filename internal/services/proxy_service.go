package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
)

// ProxyService 代理服务
type ProxyService struct {
	repo     repositories.ProxyRepository
	producer messaging.Producer
	logger   logger.Logger
}

// NewProxyService 创建代理服务
func NewProxyService(repo repositories.ProxyRepository, producer messaging.Producer, log logger.Logger) *ProxyService {
	return &ProxyService{
		repo:     repo,
		producer: producer,
		logger:   log,
	}
}

// Create 创建代理
func (s *ProxyService) Create(dto entities.CreateProxyDTO) (entities.Proxy, error) {
	now := time.Now()
	proxy := entities.Proxy{
		ID:          uuid.New().String(),
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Inventory:   dto.Inventory,
		Status:      entities.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(proxy)
}

// FindAll 获取所有代理（分页）
func (s *ProxyService) FindAll(params entities.PaginationParams) ([]entities.Proxy, int, error) {
	params.Normalize()
	return s.repo.FindAll(params)
}

// FindByID 通过ID查找代理
func (s *ProxyService) FindByID(id string) (entities.Proxy, error) {
	proxy, err := s.repo.FindByID(id)
	if err != nil {
		return entities.Proxy{}, NotFoundError("Proxy not found")
	}
	return proxy, nil
}

// Update 更新代理
func (s *ProxyService) Update(id string, dto entities.UpdateProxyDTO) (entities.Proxy, error) {
	proxy, err := s.FindByID(id)
	if err != nil {
		return entities.Proxy{}, err
	}

	if dto.Name != "" {
		proxy.Name = dto.Name
	}
	if dto.Description != nil {
		proxy.Description = dto.Description
	}
	if dto.Price != nil {
		proxy.Price = *dto.Price
	}
	if dto.Inventory != nil {
		proxy.Inventory = *dto.Inventory
	}
	proxy.UpdatedAt = time.Now()

	return s.repo.Update(proxy)
}

// Activate 上架代理
func (s *ProxyService) Activate(id string) error {
	return s.setStatus(id, entities.StatusActive)
}

// Pause 暂停代理
func (s *ProxyService) Pause(id string) error {
	return s.setStatus(id, entities.StatusPaused)
}

func (s *ProxyService) setStatus(id string, status int) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return err
	}

	if err := s.producer.SendEvent(messaging.EventTypeProductStatusChanged, messaging.ProductStatusPayload{
		Kind:   "proxy",
		ID:     id,
		Status: status,
	}); err != nil {
		s.logger.WithError(err).Warn("发送代理状态变更事件失败: %s", id)
	}
	return nil
}

// Delete 删除代理
func (s *ProxyService) Delete(id string) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
