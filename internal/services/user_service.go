package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
)

// UserService 用户服务
type UserService struct {
	repo     repositories.UserRepository
	producer messaging.Producer
	logger   logger.Logger
}

// NewUserService 创建用户服务
func NewUserService(repo repositories.UserRepository, producer messaging.Producer, log logger.Logger) *UserService {
	return &UserService{
		repo:     repo,
		producer: producer,
		logger:   log,
	}
}

// Create 创建用户
func (s *UserService) Create(dto entities.CreateUserDTO) (entities.User, error) {
	if _, err := s.repo.FindByEmail(dto.Email); err == nil {
		return entities.User{}, InvalidError("Email already registered")
	}

	hashed, err := s.HashPassword(dto.Password)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now()
	user := entities.User{
		ID:           uuid.New().String(),
		Code:         generateCode("U"),
		Fullname:     dto.Fullname,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: hashed,
		Role:         dto.Role,
		IsLocked:     entities.UserUnlocked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(user)
}

// FindAll 获取所有用户（分页）
func (s *UserService) FindAll(params entities.PaginationParams) ([]entities.User, int, error) {
	params.Normalize()
	return s.repo.FindAll(params)
}

// FindByID 通过ID查找用户
func (s *UserService) FindByID(id string) (entities.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return entities.User{}, NotFoundError("User not found")
	}
	return user, nil
}

// Update 更新用户
func (s *UserService) Update(id string, dto entities.UpdateUserDTO) (entities.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return entities.User{}, err
	}

	if dto.Fullname != "" {
		user.Fullname = dto.Fullname
	}
	if dto.Email != "" && dto.Email != user.Email {
		if _, err := s.repo.FindByEmail(dto.Email); err == nil {
			return entities.User{}, InvalidError("Email already registered")
		}
		user.Email = dto.Email
	}
	if dto.Phone != nil {
		user.Phone = dto.Phone
	}
	if dto.Role != nil {
		user.Role = *dto.Role
	}
	user.UpdatedAt = time.Now()

	return s.repo.Update(user)
}

// Delete 删除用户
func (s *UserService) Delete(id string) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// Lock 锁定用户
func (s *UserService) Lock(id string) (entities.User, error) {
	return s.setLocked(id, entities.UserLocked, messaging.EventTypeUserLocked)
}

// Unlock 解锁用户
func (s *UserService) Unlock(id string) (entities.User, error) {
	return s.setLocked(id, entities.UserUnlocked, messaging.EventTypeUserUnlocked)
}

func (s *UserService) setLocked(id string, locked int, eventType string) (entities.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return entities.User{}, err
	}

	if user.IsLocked == locked {
		return user, nil
	}

	user.IsLocked = locked
	user.UpdatedAt = time.Now()

	updated, err := s.repo.Update(user)
	if err != nil {
		return entities.User{}, err
	}

	if err := s.producer.SendEvent(eventType, messaging.UserLockPayload{
		UserID: updated.ID,
		Email:  updated.Email,
	}); err != nil {
		s.logger.WithError(err).Warn("发送用户锁定事件失败: %s", updated.ID)
	}

	return updated, nil
}

// AdjustBalance 调整用户余额并写入交易记录
func (s *UserService) AdjustBalance(id string, dto entities.AdjustBalanceDTO) (entities.Transaction, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return entities.Transaction{}, err
	}

	if dto.Amount <= 0 {
		return entities.Transaction{}, InvalidError("Amount must be positive")
	}

	action := entities.TransactionDeposit
	delta := dto.Amount
	if dto.Operation == entities.BalanceOperationSubtract {
		action = entities.TransactionWithdraw
		delta = -dto.Amount
	} else if dto.Operation != entities.BalanceOperationAdd {
		return entities.Transaction{}, InvalidError("Operation must be 1 or -1")
	}

	before := user.AccountBalance
	after := before + delta
	if after < 0 {
		return entities.Transaction{}, InvalidError("Insufficient balance")
	}

	now := time.Now()
	user.AccountBalance = after
	user.UpdatedAt = now

	tx := entities.Transaction{
		ID:            uuid.New().String(),
		Code:          generateCode("T"),
		UserID:        user.ID,
		User:          user.Summary(),
		Amount:        dto.Amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Action:        action,
		Note:          dto.Reason,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 余额变更和交易记录必须同时落库，失败时余额保持原值
	created, err := s.repo.AdjustBalance(user, tx)
	if err != nil {
		return entities.Transaction{}, err
	}

	if err := s.producer.SendEvent(messaging.EventTypeBalanceAdjusted, messaging.BalanceAdjustedPayload{
		UserID:        user.ID,
		TransactionID: created.ID,
		Action:        action,
		Amount:        dto.Amount,
		BalanceAfter:  after,
	}); err != nil {
		s.logger.WithError(err).Warn("发送余额调整事件失败: %s", user.ID)
	}

	return created, nil
}

// ResetPassword 管理员重置用户密码
func (s *UserService) ResetPassword(id string, password string) error {
	user, err := s.FindByID(id)
	if err != nil {
		return err
	}

	hashed, err := s.HashPassword(password)
	if err != nil {
		return err
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()
	_, err = s.repo.Update(user)
	return err
}

// ForgotPassword 生成临时密码并覆盖原密码。邮件通道尚未接入，临时密码仅写入日志。
func (s *UserService) ForgotPassword(email string) error {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return NotFoundError("User not found")
	}

	temp := generateCode("P")
	hashed, err := s.HashPassword(temp)
	if err != nil {
		return err
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()
	if _, err := s.repo.Update(user); err != nil {
		return err
	}

	s.logger.WithField("userId", user.ID).Info("已生成临时密码: %s", temp)
	return nil
}

// ChangePassword 用户修改自己的密码
func (s *UserService) ChangePassword(id, oldPassword, newPassword string) error {
	user, err := s.FindByID(id)
	if err != nil {
		return err
	}

	if !s.VerifyPassword(user.PasswordHash, oldPassword) {
		return InvalidError("Old password is incorrect")
	}

	hashed, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()
	_, err = s.repo.Update(user)
	return err
}

// Authenticate 用户认证
func (s *UserService) Authenticate(email, password string) (entities.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return entities.User{}, UnauthorizedError("Invalid credentials")
	}

	if !s.VerifyPassword(user.PasswordHash, password) {
		return entities.User{}, UnauthorizedError("Invalid credentials")
	}

	if user.IsLocked == entities.UserLocked {
		return entities.User{}, UnauthorizedError("Account is locked")
	}

	now := time.Now()
	user.LastLogin = &now
	if _, err := s.repo.Update(user); err != nil {
		s.logger.WithError(err).Warn("更新最近登录时间失败: %s", user.ID)
	}

	return user, nil
}

// VerifyPassword 验证密码
func (s *UserService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// HashPassword 哈希密码
func (s *UserService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// 生成带前缀的业务编号
func generateCode(prefix string) string {
	return fmt.Sprintf("%s%d%04d", prefix, time.Now().Unix(), rand.Intn(10000))
}
