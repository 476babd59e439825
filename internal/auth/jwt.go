package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTService JWT服务
type JWTService struct {
	secretKey          string
	expiryHours        int
	refreshExpiryHours int
}

// NewJWTService 创建JWT服务
func NewJWTService(secretKey string, expiryHours, refreshExpiryHours int) *JWTService {
	return &JWTService{
		secretKey:          secretKey,
		expiryHours:        expiryHours,
		refreshExpiryHours: refreshExpiryHours,
	}
}

// Claims JWT声明
type Claims struct {
	UserID string `json:"user_id"`
	Role   int    `json:"role"`
	// TokenType 区分access和refresh令牌
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// GenerateToken 生成访问令牌
func (s *JWTService) GenerateToken(userID string, role int) (string, error) {
	return s.generate(userID, role, tokenTypeAccess, s.expiryHours)
}

// GenerateRefreshToken 生成刷新令牌
func (s *JWTService) GenerateRefreshToken(userID string, role int) (string, error) {
	return s.generate(userID, role, tokenTypeRefresh, s.refreshExpiryHours)
}

func (s *JWTService) generate(userID string, role int, tokenType string, hours int) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(hours))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken 验证访问令牌
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, errors.New("令牌类型错误")
	}
	return claims, nil
}

// ValidateRefreshToken 验证刷新令牌
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, errors.New("令牌类型错误")
	}
	return claims, nil
}

func (s *JWTService) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("无效令牌")
}
