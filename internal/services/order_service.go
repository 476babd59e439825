package services

import (
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
)

// VPS订单开通后的默认有效期
const vpsOrderDuration = 30 * 24 * time.Hour

// OrderService 订单服务
type OrderService struct {
	repo     repositories.OrderRepository
	producer messaging.Producer
	logger   logger.Logger
}

// NewOrderService 创建订单服务
func NewOrderService(repo repositories.OrderRepository, producer messaging.Producer, log logger.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		producer: producer,
		logger:   log,
	}
}

// FindAll 获取所有订单（分页）
func (s *OrderService) FindAll(params entities.PaginationParams) ([]entities.Order, int, error) {
	params.Normalize()
	return s.repo.FindAll(params)
}

// FindByID 通过ID查找订单
func (s *OrderService) FindByID(id string) (entities.Order, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return entities.Order{}, NotFoundError("Order not found")
	}
	return order, nil
}

// SetupVps 补全VPS订单的开通信息，状态从setup转为active
func (s *OrderService) SetupVps(id string, dto entities.SetupVpsDTO) (entities.Order, error) {
	order, err := s.findSetupOrder(id, entities.OrderTypeVps)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now()
	expiredAt := now.Add(vpsOrderDuration)
	order.VpsOrder = &entities.VpsOrder{
		IP:        dto.IP,
		Username:  dto.Username,
		Password:  dto.Password,
		ExpiredAt: &expiredAt,
	}

	return s.complete(order, now, &expiredAt)
}

// SetupProxy 补全代理订单的开通信息，状态从setup转为active
func (s *OrderService) SetupProxy(id string, dto entities.SetupProxyDTO) (entities.Order, error) {
	order, err := s.findSetupOrder(id, entities.OrderTypeProxy)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now()
	if !dto.ExpiredAt.After(now) {
		return entities.Order{}, InvalidError("Expiration date must be in the future")
	}

	order.ProxyOrder = &entities.ProxyOrder{
		Proxies:   dto.Proxies,
		ExpiredAt: &dto.ExpiredAt,
	}

	return s.complete(order, now, &dto.ExpiredAt)
}

// UpdateApiKey 更换工具订单的API密钥
func (s *OrderService) UpdateApiKey(id string, dto entities.UpdateApiKeyDTO) (entities.Order, error) {
	order, err := s.FindByID(id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Type != entities.OrderTypeTool {
		return entities.Order{}, InvalidError("Order is not a tool order")
	}
	if order.ToolOrder == nil {
		return entities.Order{}, InvalidError("Order has no tool details")
	}

	now := time.Now()
	order.ToolOrder.ApiKey = &dto.ApiKey
	order.ToolOrder.ChangeApiKeyAt = &now
	order.UpdatedAt = now

	updated, err := s.repo.Update(order)
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.producer.SendEvent(messaging.EventTypeOrderApiKeyChanged, messaging.OrderSetupPayload{
		OrderID: updated.ID,
		Code:    updated.Code,
		Type:    updated.Type,
		UserID:  updated.User.ID,
	}); err != nil {
		s.logger.WithError(err).Warn("发送API密钥变更事件失败: %s", updated.ID)
	}

	return updated, nil
}

// 查找处于setup状态且类型匹配的订单
func (s *OrderService) findSetupOrder(id, orderType string) (entities.Order, error) {
	order, err := s.FindByID(id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Type != orderType {
		return entities.Order{}, InvalidError("Order type mismatch")
	}
	if order.Status != entities.OrderStatusSetup {
		return entities.Order{}, InvalidError("Order is not awaiting setup")
	}
	return order, nil
}

// 标记订单开通完成并发送事件
func (s *OrderService) complete(order entities.Order, now time.Time, expiredAt *time.Time) (entities.Order, error) {
	order.Status = entities.OrderStatusActive
	order.CompletedAt = &now
	order.ExpiredAt = expiredAt
	order.UpdatedAt = now

	updated, err := s.repo.Update(order)
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.producer.SendEvent(messaging.EventTypeOrderSetupCompleted, messaging.OrderSetupPayload{
		OrderID:     updated.ID,
		Code:        updated.Code,
		Type:        updated.Type,
		UserID:      updated.User.ID,
		CompletedAt: now.Format(time.RFC3339),
	}); err != nil {
		s.logger.WithError(err).Warn("发送订单开通事件失败: %s", updated.ID)
	}

	return updated, nil
}
