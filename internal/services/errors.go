package services

import "errors"

// 业务错误哨兵，处理器据此映射HTTP状态码
var (
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("not found")
	// ErrInvalid 请求不满足业务规则
	ErrInvalid = errors.New("invalid request")
	// ErrUnauthorized 认证失败
	ErrUnauthorized = errors.New("unauthorized")
)

// Error 带消息的业务错误
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap 返回错误类别
func (e *Error) Unwrap() error { return e.Kind }

// NotFoundError 构造资源不存在错误
func NotFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// InvalidError 构造业务规则错误
func InvalidError(message string) error {
	return &Error{Kind: ErrInvalid, Message: message}
}

// UnauthorizedError 构造认证失败错误
func UnauthorizedError(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}
