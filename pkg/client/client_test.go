package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"items":[],"meta":{"total":0}}}`))
	}))
	defer server.Close()

	c := New(server.URL, WithToken("token-123"))
	c.Users().List(context.Background(), entities.PaginationParams{})

	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestClientListSwallowsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	result := c.Tools().List(context.Background(), entities.PaginationParams{Page: 2, Limit: 5})

	require.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 2, result.Meta.Page)
	assert.Equal(t, 5, result.Meta.Limit)
	assert.Equal(t, 1, result.Meta.TotalPages)
}

func TestClientErrorMessageExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"statusCode":400,"message":"Cannot delete: in use"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.Tools().Delete(context.Background(), "abc")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Cannot delete: in use", apiErr.Message)
}

func TestClientTransportErrorUsesFallback(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Users().Get(context.Background(), "abc")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.Message)
}

func TestSetStatusSkipsRequestWhenUnchanged(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(`{"statusCode":200,"message":"ok"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	tool := entities.Tool{ID: "t1", Status: entities.StatusActive}

	// 目标状态与当前一致，不应发出任何请求
	err := c.Tools().SetStatus(context.Background(), tool, entities.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))

	// 状态变化才发请求
	err = c.Tools().SetStatus(context.Background(), tool, entities.StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			w.Write([]byte(`{"statusCode":200,"data":{"user":{"id":"u1","email":"a@b.c"},"tokens":{"accessToken":"acc","refreshToken":"ref"}},"message":"Login successful"}`))
			return
		}
		w.Write([]byte(`{"data":{"id":"u1","email":"a@b.c"}}`))
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Auth().Login(context.Background(), "a@b.c", "secret")

	require.NoError(t, err)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, "acc", result.Tokens.AccessToken)
	assert.Equal(t, "acc", c.token)
}
