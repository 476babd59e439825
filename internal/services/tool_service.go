package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
)

// ToolService 工具服务
type ToolService struct {
	repo     repositories.ToolRepository
	fileRepo repositories.FileRepository
	producer messaging.Producer
	logger   logger.Logger
}

// NewToolService 创建工具服务
func NewToolService(repo repositories.ToolRepository, fileRepo repositories.FileRepository, producer messaging.Producer, log logger.Logger) *ToolService {
	return &ToolService{
		repo:     repo,
		fileRepo: fileRepo,
		producer: producer,
		logger:   log,
	}
}

// Create 创建工具，图片按已上传文件的ID关联
func (s *ToolService) Create(dto entities.CreateToolDTO) (entities.Tool, error) {
	now := time.Now()
	tool := entities.Tool{
		ID:           uuid.New().String(),
		Code:         dto.Code,
		Name:         dto.Name,
		Description:  dto.Description,
		Demo:         dto.Demo,
		LinkDownload: dto.LinkDownload,
		Slug:         Slugify(dto.Name),
		Status:       entities.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tool.Plans = buildPlans(tool.ID, dto.Plans)

	images, err := s.resolveImages(tool.ID, dto.FileIds)
	if err != nil {
		return entities.Tool{}, err
	}
	tool.Images = images

	return s.repo.Create(tool)
}

// FindAll 获取所有工具（分页）
func (s *ToolService) FindAll(params entities.PaginationParams) ([]entities.Tool, int, error) {
	params.Normalize()
	return s.repo.FindAll(params)
}

// FindByID 通过ID查找工具
func (s *ToolService) FindByID(id string) (entities.Tool, error) {
	tool, err := s.repo.FindByID(id)
	if err != nil {
		return entities.Tool{}, NotFoundError("Tool not found")
	}
	return tool, nil
}

// Update 更新工具
func (s *ToolService) Update(id string, dto entities.UpdateToolDTO) (entities.Tool, error) {
	tool, err := s.FindByID(id)
	if err != nil {
		return entities.Tool{}, err
	}

	if dto.Name != "" {
		tool.Name = dto.Name
		tool.Slug = Slugify(dto.Name)
	}
	if dto.Description != nil {
		tool.Description = dto.Description
	}
	if dto.Demo != nil {
		tool.Demo = dto.Demo
	}
	if dto.LinkDownload != nil {
		tool.LinkDownload = dto.LinkDownload
	}
	if dto.Plans != nil {
		tool.Plans = buildPlans(tool.ID, dto.Plans)
	}
	if dto.FileIds != nil {
		images, err := s.resolveImages(tool.ID, dto.FileIds)
		if err != nil {
			return entities.Tool{}, err
		}
		tool.Images = images
	}
	tool.UpdatedAt = time.Now()

	return s.repo.Update(tool)
}

// Activate 上架工具
func (s *ToolService) Activate(id string) error {
	return s.setStatus(id, entities.StatusActive)
}

// Pause 暂停工具
func (s *ToolService) Pause(id string) error {
	return s.setStatus(id, entities.StatusPaused)
}

func (s *ToolService) setStatus(id string, status int) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return err
	}

	if err := s.producer.SendEvent(messaging.EventTypeProductStatusChanged, messaging.ProductStatusPayload{
		Kind:   "tool",
		ID:     id,
		Status: status,
	}); err != nil {
		s.logger.WithError(err).Warn("发送工具状态变更事件失败: %s", id)
	}
	return nil
}

// Delete 删除工具
func (s *ToolService) Delete(id string) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// 根据文件ID解析工具图片
func (s *ToolService) resolveImages(toolID string, fileIds []string) ([]entities.ToolImage, error) {
	if len(fileIds) == 0 {
		return []entities.ToolImage{}, nil
	}

	files, err := s.fileRepo.FindByIDs(fileIds)
	if err != nil {
		return nil, err
	}
	if len(files) != len(fileIds) {
		return nil, InvalidError("Some uploaded files were not found")
	}

	now := time.Now()
	images := make([]entities.ToolImage, 0, len(files))
	for _, f := range files {
		images = append(images, entities.ToolImage{
			ID:        f.ID,
			ToolID:    toolID,
			FileUrl:   f.FileUrl,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return images, nil
}

// 构造套餐列表
func buildPlans(toolID string, dtos []entities.ToolPlanDTO) []entities.ToolPlan {
	plans := make([]entities.ToolPlan, 0, len(dtos))
	for _, p := range dtos {
		plans = append(plans, entities.ToolPlan{
			ID:       uuid.New().String(),
			ToolID:   toolID,
			Name:     p.Name,
			Price:    p.Price,
			Duration: p.Duration,
		})
	}
	return plans
}

// Slugify 将名称转换为URL友好的slug
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := false
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
