package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/memory"
)

func newOrderService(store *memory.Store) *OrderService {
	return NewOrderService(memory.NewOrderRepository(store), messaging.NopProducer{}, logger.NewNop())
}

func seedOrder(store *memory.Store, id, orderType, status string) entities.Order {
	now := time.Now()
	user := entities.User{
		ID:       "u1",
		Code:     "U1",
		Fullname: "Buyer",
		Email:    "buyer@example.com",
	}
	store.PutUser(user)

	order := entities.Order{
		ID:         id,
		Code:       "O" + id,
		UserID:     user.ID,
		Type:       orderType,
		TotalPrice: 9.99,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if orderType == entities.OrderTypeTool {
		order.ToolOrder = &entities.ToolOrder{Name: "Auto Farm", Price: 9.99, Duration: 30}
	}
	store.PutOrder(order)
	return order
}

func TestOrderServiceSetupVps(t *testing.T) {
	store := memory.NewStore()
	svc := newOrderService(store)
	seedOrder(store, "o1", entities.OrderTypeVps, entities.OrderStatusSetup)

	updated, err := svc.SetupVps("o1", entities.SetupVpsDTO{
		IP:       "10.0.0.1",
		Username: "root",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.OrderStatusActive, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.WithinDuration(t, time.Now(), *updated.CompletedAt, time.Minute)

	require.NotNil(t, updated.VpsOrder)
	assert.Equal(t, "10.0.0.1", updated.VpsOrder.IP)

	// 到期时间为开通时间加30天
	require.NotNil(t, updated.ExpiredAt)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), *updated.ExpiredAt, time.Minute)
}

func TestOrderServiceSetupVpsRejectsTypeMismatch(t *testing.T) {
	store := memory.NewStore()
	svc := newOrderService(store)
	seedOrder(store, "o1", entities.OrderTypeProxy, entities.OrderStatusSetup)

	_, err := svc.SetupVps("o1", entities.SetupVpsDTO{IP: "10.0.0.1", Username: "root", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Order type mismatch", err.Error())
}

func TestOrderServiceSetupVpsRejectsNonSetupStatus(t *testing.T) {
	store := memory.NewStore()
	svc := newOrderService(store)
	seedOrder(store, "o1", entities.OrderTypeVps, entities.OrderStatusActive)

	_, err := svc.SetupVps("o1", entities.SetupVpsDTO{IP: "10.0.0.1", Username: "root", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Order is not awaiting setup", err.Error())
}

func TestOrderServiceSetupProxy(t *testing.T) {
	store := memory.NewStore()
	svc := newOrderService(store)
	seedOrder(store, "o1", entities.OrderTypeProxy, entities.OrderStatusSetup)

	expiredAt := time.Now().Add(7 * 24 * time.Hour)
	updated, err := svc.SetupProxy("o1", entities.SetupProxyDTO{
		Proxies:   "1.2.3.4:8080:user:pass",
		ExpiredAt: expiredAt,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.OrderStatusActive, updated.Status)
	require.NotNil(t, updated.ProxyOrder)
	assert.Equal(t, "1.2.3.4:8080:user:pass", updated.ProxyOrder.Proxies)
	require.NotNil(t, updated.ExpiredAt)
	assert.WithinDuration(t, expiredAt, *updated.ExpiredAt, time.Second)
}

func TestOrderServiceSetupProxyRejectsPastExpiry(t *testing.T) {
	store := memory.NewStore()
	svc := newOrderService(store)
	seedOrder(store, "o1", entities.OrderTypeProxy, entities.OrderStatusSetup)

	_, err := svc.SetupProxy("o1", entities.SetupProxyDTO{
		Proxies:   "1.2.3.4:8080",
		ExpiredAt: time.Now().Add(-time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Expiration date must be in the future", err.Error())
}

func TestOrderServiceUpdateApiKey(t *testing.T) {
	store := memory.NewStore()
	svc := newOrderService(store)
	seedOrder(store, "o1", entities.OrderTypeTool, entities.OrderStatusActive)

	updated, err := svc.UpdateApiKey("o1", entities.UpdateApiKeyDTO{ApiKey: "new-key"})
	require.NoError(t, err)

	require.NotNil(t, updated.ToolOrder)
	require.NotNil(t, updated.ToolOrder.ApiKey)
	assert.Equal(t, "new-key", *updated.ToolOrder.ApiKey)
	require.NotNil(t, updated.ToolOrder.ChangeApiKeyAt)
}

func TestOrderServiceUpdateApiKeyRejectsNonToolOrder(t *testing.T) {
	store := memory.NewStore()
	svc := newOrderService(store)
	seedOrder(store, "o1", entities.OrderTypeVps, entities.OrderStatusActive)

	_, err := svc.UpdateApiKey("o1", entities.UpdateApiKeyDTO{ApiKey: "new-key"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Order is not a tool order", err.Error())
}

func TestOrderServiceFindByIDNotFound(t *testing.T) {
	svc := newOrderService(memory.NewStore())

	_, err := svc.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
