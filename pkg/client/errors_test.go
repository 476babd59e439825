package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessagePrefersMessageField(t *testing.T) {
	body := []byte(`{"message":"Cannot delete: in use","error":"ignored"}`)

	assert.Equal(t, "Cannot delete: in use", ExtractMessage(body, errors.New("transport")))
}

func TestExtractMessageFallsBackToErrorField(t *testing.T) {
	body := []byte(`{"error":"Bad Request"}`)

	assert.Equal(t, "Bad Request", ExtractMessage(body, nil))
}

func TestExtractMessageTransportError(t *testing.T) {
	assert.Equal(t, "connection refused", ExtractMessage(nil, errors.New("connection refused")))
}

func TestExtractMessageFallback(t *testing.T) {
	assert.Equal(t, FallbackMessage, ExtractMessage(nil, nil))
	assert.Equal(t, FallbackMessage, ExtractMessage([]byte(`{}`), nil))
	assert.Equal(t, FallbackMessage, ExtractMessage([]byte(`not json`), nil))
}
