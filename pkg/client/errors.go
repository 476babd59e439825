package client

import "encoding/json"

// FallbackMessage 提取不到任何错误消息时的兜底文案
const FallbackMessage = "Có lỗi xảy ra, vui lòng thử lại"

// APIError API调用错误
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// ExtractMessage 按约定顺序提取人类可读的错误消息：
// 响应体message字段 → 响应体error字段 → 传输错误 → 兜底文案。
func ExtractMessage(body []byte, transportErr error) string {
	if len(body) > 0 {
		var payload struct {
			Message string `json:"message"`
			Err     string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Err != "" {
				return payload.Err
			}
		}
	}

	if transportErr != nil {
		return transportErr.Error()
	}

	return FallbackMessage
}
