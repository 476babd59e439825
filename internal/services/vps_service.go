package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
)

// VpsService VPS服务
type VpsService struct {
	repo     repositories.VpsRepository
	producer messaging.Producer
	logger   logger.Logger
}

// NewVpsService 创建VPS服务
func NewVpsService(repo repositories.VpsRepository, producer messaging.Producer, log logger.Logger) *VpsService {
	return &VpsService{
		repo:     repo,
		producer: producer,
		logger:   log,
	}
}

// Create 创建VPS
func (s *VpsService) Create(dto entities.CreateVpsDTO) (entities.Vps, error) {
	now := time.Now()
	vps := entities.Vps{
		ID:          uuid.New().String(),
		Name:        dto.Name,
		Description: dto.Description,
		Ram:         dto.Ram,
		Disk:        dto.Disk,
		Cpu:         dto.Cpu,
		Bandwidth:   dto.Bandwidth,
		Location:    dto.Location,
		Os:          dto.Os,
		Price:       dto.Price,
		Tags:        dto.Tags,
		Status:      entities.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(vps)
}

// FindAll 获取所有VPS（分页）
func (s *VpsService) FindAll(params entities.PaginationParams) ([]entities.Vps, int, error) {
	params.Normalize()
	return s.repo.FindAll(params)
}

// FindByID 通过ID查找VPS
func (s *VpsService) FindByID(id string) (entities.Vps, error) {
	vps, err := s.repo.FindByID(id)
	if err != nil {
		return entities.Vps{}, NotFoundError("Vps not found")
	}
	return vps, nil
}

// Update 更新VPS
func (s *VpsService) Update(id string, dto entities.UpdateVpsDTO) (entities.Vps, error) {
	vps, err := s.FindByID(id)
	if err != nil {
		return entities.Vps{}, err
	}

	if dto.Name != "" {
		vps.Name = dto.Name
	}
	if dto.Description != nil {
		vps.Description = dto.Description
	}
	if dto.Ram != nil {
		vps.Ram = *dto.Ram
	}
	if dto.Disk != nil {
		vps.Disk = *dto.Disk
	}
	if dto.Cpu != nil {
		vps.Cpu = *dto.Cpu
	}
	if dto.Bandwidth != nil {
		vps.Bandwidth = *dto.Bandwidth
	}
	if dto.Location != nil {
		vps.Location = dto.Location
	}
	if dto.Os != nil {
		vps.Os = dto.Os
	}
	if dto.Price != nil {
		vps.Price = *dto.Price
	}
	if dto.Tags != nil {
		vps.Tags = dto.Tags
	}
	vps.UpdatedAt = time.Now()

	return s.repo.Update(vps)
}

// Activate 上架VPS
func (s *VpsService) Activate(id string) error {
	return s.setStatus(id, entities.StatusActive)
}

// Pause 暂停VPS
func (s *VpsService) Pause(id string) error {
	return s.setStatus(id, entities.StatusPaused)
}

func (s *VpsService) setStatus(id string, status int) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return err
	}

	if err := s.producer.SendEvent(messaging.EventTypeProductStatusChanged, messaging.ProductStatusPayload{
		Kind:   "vps",
		ID:     id,
		Status: status,
	}); err != nil {
		s.logger.WithError(err).Warn("发送VPS状态变更事件失败: %s", id)
	}
	return nil
}

// Delete 删除VPS
func (s *VpsService) Delete(id string) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
