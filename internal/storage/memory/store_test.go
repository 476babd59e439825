package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

func seedUsers(store *Store) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	store.PutUser(entities.User{
		ID:        "u1",
		Fullname:  "Nguyen Van A",
		Email:     "a@example.com",
		CreatedAt: base,
	})
	store.PutUser(entities.User{
		ID:        "u2",
		Fullname:  "Tran Thi B",
		Email:     "b@example.com",
		CreatedAt: base.Add(48 * time.Hour),
	})
	store.PutUser(entities.User{
		ID:        "u3",
		Fullname:  "Le Van C",
		Email:     "c@example.com",
		CreatedAt: base.Add(24 * time.Hour),
	})
}

func TestUserRepositoryFindAllOrdersByCreatedAtDesc(t *testing.T) {
	store := NewStore()
	seedUsers(store)
	repo := NewUserRepository(store)

	users, total, err := repo.FindAll(entities.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, users, 3)
	assert.Equal(t, "u2", users[0].ID)
	assert.Equal(t, "u3", users[1].ID)
	assert.Equal(t, "u1", users[2].ID)
}

func TestUserRepositoryKeywordIsCaseInsensitive(t *testing.T) {
	store := NewStore()
	seedUsers(store)
	repo := NewUserRepository(store)

	users, total, err := repo.FindAll(entities.PaginationParams{
		Keyword: "NGUYEN",
		Page:    1,
		Limit:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
}

func TestUserRepositoryPagination(t *testing.T) {
	store := NewStore()
	seedUsers(store)
	repo := NewUserRepository(store)

	users, total, err := repo.FindAll(entities.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)

	// 超出范围的页返回空集
	users, total, err = repo.FindAll(entities.PaginationParams{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, users)
}

func TestUserRepositoryAdjustBalanceWritesBoth(t *testing.T) {
	store := NewStore()
	seedUsers(store)
	repo := NewUserRepository(store)

	user, err := repo.FindByID("u1")
	require.NoError(t, err)
	user.AccountBalance = 140

	tx, err := repo.AdjustBalance(user, entities.Transaction{
		ID:            "tx1",
		Code:          "T1",
		UserID:        user.ID,
		Amount:        40,
		BalanceBefore: 100,
		BalanceAfter:  140,
		Action:        entities.TransactionDeposit,
	})
	require.NoError(t, err)
	assert.Equal(t, user.Email, tx.User.Email)

	updated, err := repo.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 140.0, updated.AccountBalance)

	saved, err := NewTransactionRepository(store).FindByID("tx1")
	require.NoError(t, err)
	assert.Equal(t, 140.0, saved.BalanceAfter)
}

func TestUserRepositoryAdjustBalanceMissingUser(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)

	_, err := repo.AdjustBalance(entities.User{ID: "missing"}, entities.Transaction{ID: "tx1"})
	require.Error(t, err)

	// 交易没有被写入
	_, err = NewTransactionRepository(store).FindByID("tx1")
	assert.Error(t, err)
}

func TestUserRepositoryUpdateMissing(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)

	_, err := repo.Update(entities.User{ID: "missing"})
	assert.Error(t, err)
}

func TestOrderRepositoryResolvesUserSummary(t *testing.T) {
	store := NewStore()
	store.PutUser(entities.User{
		ID:       "u1",
		Code:     "U1",
		Fullname: "Buyer",
		Email:    "buyer@example.com",
	})
	store.PutOrder(entities.Order{
		ID:     "o1",
		Code:   "O1",
		UserID: "u1",
		Type:   entities.OrderTypeVps,
		Status: entities.OrderStatusSetup,
	})

	repo := NewOrderRepository(store)
	order, err := repo.FindByID("o1")
	require.NoError(t, err)

	assert.Equal(t, "buyer@example.com", order.User.Email)
	assert.Equal(t, "Buyer", order.User.Fullname)
}
