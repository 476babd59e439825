// Package client 是admin-service的类型化API客户端。
// 负责附加Bearer令牌、解包统一响应外层、把历代后端返回过的各种列表
// 形状归一化为{items, meta}，以及按约定链路提取错误消息。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

// DefaultBaseURL 生产环境的API地址
const DefaultBaseURL = "https://shopnro.hitly.click/api/v1"

// Client API客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option 客户端可选配置
type Option func(*Client)

// WithHTTPClient 指定底层HTTP客户端
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken 指定初始访问令牌
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New 创建API客户端
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken 更新访问令牌，登录后调用
func (c *Client) SetToken(token string) {
	c.token = token
}

// do 发起请求并返回原始响应体。非2xx响应和传输错误都转换为*APIError。
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: FallbackMessage}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &APIError{Message: FallbackMessage}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: ExtractMessage(nil, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: ExtractMessage(nil, err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: ExtractMessage(raw, nil)}
	}

	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, body)
}

// unwrap 解出响应外层的data字段
func unwrap[T any](raw []byte) (T, error) {
	var envelope struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		var zero T
		return zero, &APIError{Message: FallbackMessage}
	}
	return envelope.Data, nil
}

// 拼接资源路径
func resourcePath(parts ...string) string {
	return "/" + strings.Join(parts, "/")
}

// 分页查询参数
func paginationQuery(params entities.PaginationParams) url.Values {
	params.Normalize()
	query := url.Values{}
	if params.Keyword != "" {
		query.Set("keyword", params.Keyword)
	}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("limit", strconv.Itoa(params.Limit))
	return query
}
