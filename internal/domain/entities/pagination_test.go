package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsNormalize(t *testing.T) {
	p := PaginationParams{Page: 0, Limit: -5}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = PaginationParams{Page: 3, Limit: 20}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestPaginationParamsOffset(t *testing.T) {
	p := PaginationParams{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(21, PaginationParams{Page: 1, Limit: 10})
	assert.Equal(t, 3, meta.TotalPages)

	// 空结果的totalPages至少为1
	meta = NewPaginationMeta(0, PaginationParams{Page: 1, Limit: 10})
	assert.Equal(t, 1, meta.TotalPages)

	meta = NewPaginationMeta(10, PaginationParams{Page: 1, Limit: 10})
	assert.Equal(t, 1, meta.TotalPages)
}
