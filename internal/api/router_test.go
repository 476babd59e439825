package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AutoHubWeb/AdminPanel/internal/auth"
	"github.com/AutoHubWeb/AdminPanel/internal/config"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/memory"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/objectstore"
)

func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	log := logger.NewNop()
	producer := messaging.NopProducer{}

	userRepo := memory.NewUserRepository(store)
	toolRepo := memory.NewToolRepository(store)
	vpsRepo := memory.NewVpsRepository(store)
	proxyRepo := memory.NewProxyRepository(store)
	orderRepo := memory.NewOrderRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	fileRepo := memory.NewFileRepository(store)

	localStore, err := objectstore.NewLocalStore(t.TempDir(), "http://localhost/files")
	require.NoError(t, err)

	svc := Services{
		User:        services.NewUserService(userRepo, producer, log),
		Tool:        services.NewToolService(toolRepo, fileRepo, producer, log),
		Vps:         services.NewVpsService(vpsRepo, producer, log),
		Proxy:       services.NewProxyService(proxyRepo, producer, log),
		Order:       services.NewOrderService(orderRepo, producer, log),
		Transaction: services.NewTransactionService(txRepo),
		Dashboard:   services.NewDashboardService(userRepo, toolRepo, vpsRepo, proxyRepo, orderRepo),
		File:        services.NewFileService(fileRepo, localStore, log),
	}

	jwtService := auth.NewJWTService("test-secret", 1, 24)
	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}

	return NewRouter(cfg, svc, jwtService), store, jwtService
}

func seedAccount(t *testing.T, store *memory.Store, email string, role int) entities.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	user := entities.User{
		ID:           "user-" + email,
		Code:         "U-" + email,
		Fullname:     "Test",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	store.PutUser(user)
	return user
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterHealth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterLoginEnvelope(t *testing.T) {
	router, store, _ := newTestRouter(t)
	seedAccount(t, store, "admin@example.com", entities.RoleAdmin)

	w := doRequest(router, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"admin@example.com","password":"password123"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "Login successful", env.Message)

	var data struct {
		User   entities.User `json:"user"`
		Tokens struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "admin@example.com", data.User.Email)
	assert.NotEmpty(t, data.Tokens.AccessToken)
	assert.NotEmpty(t, data.Tokens.RefreshToken)
}

func TestRouterLoginInvalidCredentials(t *testing.T) {
	router, store, _ := newTestRouter(t)
	seedAccount(t, store, "admin@example.com", entities.RoleAdmin)

	w := doRequest(router, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"admin@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestRouterForgotPasswordHidesUnknownEmail(t *testing.T) {
	router, store, _ := newTestRouter(t)
	seedAccount(t, store, "known@example.com", entities.RoleUser)

	// 已注册和未注册的邮箱返回同样的成功响应
	for _, email := range []string{"known@example.com", "unknown@example.com"} {
		w := doRequest(router, http.MethodPost, "/api/v1/auth/forgot-password", "",
			`{"email":"`+email+`"}`)

		require.Equal(t, http.StatusOK, w.Code, email)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Temporary password issued", env.Message)
	}
}

func TestRouterUsersRequiresAuth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterUsersRejectsNonAdmin(t *testing.T) {
	router, store, jwtService := newTestRouter(t)
	user := seedAccount(t, store, "user@example.com", entities.RoleUser)

	token, err := jwtService.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/api/v1/users", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouterUsersListEnvelope(t *testing.T) {
	router, store, jwtService := newTestRouter(t)
	admin := seedAccount(t, store, "admin@example.com", entities.RoleAdmin)
	seedAccount(t, store, "member@example.com", entities.RoleUser)

	token, err := jwtService.GenerateToken(admin.ID, admin.Role)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/api/v1/users?page=1&limit=10", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data struct {
		Items []entities.User `json:"items"`
		Meta  struct {
			Total      int `json:"total"`
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			TotalPages int `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Items, 2)
	assert.Equal(t, 2, data.Meta.Total)
	assert.Equal(t, 1, data.Meta.Page)
	assert.Equal(t, 10, data.Meta.Limit)
	assert.Equal(t, 1, data.Meta.TotalPages)
}

func TestRouterToolsPublicList(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// 工具列表公开，未登录也能访问，空数据返回空items
	w := doRequest(router, http.MethodGet, "/api/v1/tools", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data struct {
		Items []entities.Tool `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotNil(t, data.Items)
	assert.Empty(t, data.Items)
}

func TestRouterProxyPathIsSingular(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/proxy", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/proxies", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterNotFoundMapsTo404(t *testing.T) {
	router, store, jwtService := newTestRouter(t)
	admin := seedAccount(t, store, "admin@example.com", entities.RoleAdmin)

	token, err := jwtService.GenerateToken(admin.ID, admin.Role)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/api/v1/users/missing", token, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "User not found", env.Message)
}
