package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/memory"
)

func newUserService(store *memory.Store) *UserService {
	return NewUserService(memory.NewUserRepository(store), messaging.NopProducer{}, logger.NewNop())
}

func seedUser(t *testing.T, svc *UserService, email string, balance float64) entities.User {
	t.Helper()
	user, err := svc.Create(entities.CreateUserDTO{
		Fullname: "Test User",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)

	if balance != 0 {
		user.AccountBalance = balance
		user, err = svc.repo.Update(user)
		require.NoError(t, err)
	}
	return user
}

func TestUserServiceCreateRejectsDuplicateEmail(t *testing.T) {
	svc := newUserService(memory.NewStore())
	seedUser(t, svc, "dup@example.com", 0)

	_, err := svc.Create(entities.CreateUserDTO{
		Fullname: "Other",
		Email:    "dup@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Email already registered", err.Error())
}

func TestUserServiceFindByIDNotFound(t *testing.T) {
	svc := newUserService(memory.NewStore())

	_, err := svc.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserServiceAdjustBalance(t *testing.T) {
	store := memory.NewStore()
	svc := newUserService(store)
	user := seedUser(t, svc, "balance@example.com", 100)

	tx, err := svc.AdjustBalance(user.ID, entities.AdjustBalanceDTO{
		Amount:    25.5,
		Operation: entities.BalanceOperationAdd,
		Reason:    "manual deposit",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.TransactionDeposit, tx.Action)
	assert.Equal(t, 100.0, tx.BalanceBefore)
	assert.Equal(t, 125.5, tx.BalanceAfter)
	assert.Equal(t, user.ID, tx.User.ID)

	updated, err := svc.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 125.5, updated.AccountBalance)

	// 交易已落库
	saved, err := memory.NewTransactionRepository(store).FindByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.Code, saved.Code)
}

// 交易写入失败时余额不得变化
type failingBalanceRepo struct {
	repositories.UserRepository
}

func (failingBalanceRepo) AdjustBalance(entities.User, entities.Transaction) (entities.Transaction, error) {
	return entities.Transaction{}, errors.New("写入交易失败")
}

func TestUserServiceAdjustBalanceLeavesNoPartialState(t *testing.T) {
	store := memory.NewStore()
	repo := failingBalanceRepo{memory.NewUserRepository(store)}
	svc := NewUserService(repo, messaging.NopProducer{}, logger.NewNop())

	now := time.Now()
	store.PutUser(entities.User{
		ID:             "u1",
		Code:           "U1",
		Fullname:       "Test User",
		Email:          "atomic@example.com",
		AccountBalance: 100,
		CreatedAt:      now,
		UpdatedAt:      now,
	})

	_, err := svc.AdjustBalance("u1", entities.AdjustBalanceDTO{
		Amount:    40,
		Operation: entities.BalanceOperationAdd,
		Reason:    "manual deposit",
	})
	require.Error(t, err)

	user, err := svc.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, user.AccountBalance)

	// 没有留下孤立的交易记录
	_, total, err := memory.NewTransactionRepository(store).FindAll(entities.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestUserServiceAdjustBalanceInsufficient(t *testing.T) {
	svc := newUserService(memory.NewStore())
	user := seedUser(t, svc, "poor@example.com", 10)

	_, err := svc.AdjustBalance(user.ID, entities.AdjustBalanceDTO{
		Amount:    50,
		Operation: entities.BalanceOperationSubtract,
		Reason:    "refund",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Insufficient balance", err.Error())

	// 余额保持不变
	unchanged, err := svc.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, unchanged.AccountBalance)
}

func TestUserServiceAdjustBalanceValidatesOperation(t *testing.T) {
	svc := newUserService(memory.NewStore())
	user := seedUser(t, svc, "op@example.com", 10)

	_, err := svc.AdjustBalance(user.ID, entities.AdjustBalanceDTO{
		Amount:    5,
		Operation: 2,
		Reason:    "bad op",
	})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.AdjustBalance(user.ID, entities.AdjustBalanceDTO{
		Amount:    -5,
		Operation: entities.BalanceOperationAdd,
		Reason:    "bad amount",
	})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUserServiceLockUnlockIdempotent(t *testing.T) {
	svc := newUserService(memory.NewStore())
	user := seedUser(t, svc, "lock@example.com", 0)

	locked, err := svc.Lock(user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.UserLocked, locked.IsLocked)

	// 重复锁定不报错
	again, err := svc.Lock(user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.UserLocked, again.IsLocked)

	unlocked, err := svc.Unlock(user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.UserUnlocked, unlocked.IsLocked)
}

func TestUserServiceAuthenticate(t *testing.T) {
	svc := newUserService(memory.NewStore())
	user := seedUser(t, svc, "auth@example.com", 0)

	authed, err := svc.Authenticate("auth@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
	require.NotNil(t, authed.LastLogin)
	assert.WithinDuration(t, time.Now(), *authed.LastLogin, time.Minute)

	_, err = svc.Authenticate("auth@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserServiceAuthenticateRejectsLocked(t *testing.T) {
	svc := newUserService(memory.NewStore())
	user := seedUser(t, svc, "locked@example.com", 0)

	_, err := svc.Lock(user.ID)
	require.NoError(t, err)

	_, err = svc.Authenticate("locked@example.com", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Account is locked", err.Error())
}

func TestUserServiceChangePassword(t *testing.T) {
	svc := newUserService(memory.NewStore())
	user := seedUser(t, svc, "pw@example.com", 0)

	err := svc.ChangePassword(user.ID, "wrong", "newpassword")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	require.NoError(t, svc.ChangePassword(user.ID, "password123", "newpassword"))

	_, err = svc.Authenticate("pw@example.com", "newpassword")
	assert.NoError(t, err)
}

func TestUserServiceForgotPasswordUnknownEmail(t *testing.T) {
	svc := newUserService(memory.NewStore())

	err := svc.ForgotPassword("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
