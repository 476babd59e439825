package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

type normalizeItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

func defaultParams() entities.PaginationParams {
	return entities.PaginationParams{Page: 1, Limit: 10}
}

func TestNormalizeListStandardEnvelope(t *testing.T) {
	raw := []byte(`{"data":{"items":[{"id":"1","name":"X","status":1}],"meta":{"total":1,"page":1,"limit":10}}}`)

	result := NormalizeList[normalizeItem](raw, defaultParams())

	require.Len(t, result.Items, 1)
	assert.Equal(t, "1", result.Items[0].ID)
	assert.Equal(t, "X", result.Items[0].Name)
	assert.Equal(t, 1, result.Items[0].Status)
	assert.Equal(t, 1, result.Meta.Total)
	assert.Equal(t, 1, result.Meta.Page)
	assert.Equal(t, 10, result.Meta.Limit)
	// totalPages缺失时按ceil(total/limit)补全
	assert.Equal(t, 1, result.Meta.TotalPages)
}

func TestNormalizeListDoublyNested(t *testing.T) {
	raw := []byte(`{"data":{"data":{"items":[{"id":"1"},{"id":"2"}],"meta":{"total":25,"page":2,"limit":10}}}}`)

	result := NormalizeList[normalizeItem](raw, defaultParams())

	require.Len(t, result.Items, 2)
	assert.Equal(t, 25, result.Meta.Total)
	assert.Equal(t, 2, result.Meta.Page)
	assert.Equal(t, 3, result.Meta.TotalPages)
}

func TestNormalizeListBareArray(t *testing.T) {
	raw := []byte(`[{"id":"1"},{"id":"2"},{"id":"3"}]`)

	result := NormalizeList[normalizeItem](raw, defaultParams())

	require.Len(t, result.Items, 3)
	assert.Equal(t, 3, result.Meta.Total)
	assert.Equal(t, 1, result.Meta.TotalPages)
}

func TestNormalizeListArrayInsideData(t *testing.T) {
	raw := []byte(`{"statusCode":200,"data":[{"id":"1"}],"message":"Success"}`)

	result := NormalizeList[normalizeItem](raw, defaultParams())

	require.Len(t, result.Items, 1)
	assert.Equal(t, "1", result.Items[0].ID)
}

func TestNormalizeListSingleObject(t *testing.T) {
	raw := []byte(`{"data":{"id":"7","name":"solo","status":0}}`)

	result := NormalizeList[normalizeItem](raw, defaultParams())

	require.Len(t, result.Items, 1)
	assert.Equal(t, "7", result.Items[0].ID)
	assert.Equal(t, 1, result.Meta.Total)
}

func TestNormalizeListNull(t *testing.T) {
	for _, raw := range [][]byte{[]byte(`null`), []byte(`{"data":null}`), nil} {
		result := NormalizeList[normalizeItem](raw, defaultParams())

		require.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.Meta.Total)
		assert.Equal(t, 1, result.Meta.Page)
		assert.Equal(t, 10, result.Meta.Limit)
		assert.Equal(t, 1, result.Meta.TotalPages)
	}
}

func TestNormalizeListMalformedBody(t *testing.T) {
	result := NormalizeList[normalizeItem]([]byte(`{"data":{"items":"not-an-array"}}`), defaultParams())

	require.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Meta.TotalPages)
}

func TestNormalizeListComputesTotalPages(t *testing.T) {
	raw := []byte(`{"data":{"items":[{"id":"1"}],"meta":{"total":21,"page":1,"limit":10}}}`)

	result := NormalizeList[normalizeItem](raw, defaultParams())

	assert.Equal(t, 3, result.Meta.TotalPages)
}

func TestEmptyListNormalizesParams(t *testing.T) {
	result := EmptyList[normalizeItem](entities.PaginationParams{Page: -3, Limit: 0})

	require.NotNil(t, result.Items)
	assert.Equal(t, 1, result.Meta.Page)
	assert.Equal(t, 10, result.Meta.Limit)
	assert.Equal(t, 1, result.Meta.TotalPages)
}
