package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 1, ClampPage(2, 0))
}

func TestPagerNavigation(t *testing.T) {
	p := Pager{Page: 2, Limit: 10, Total: 45, TotalPages: 5}

	assert.Equal(t, 1, p.First())
	assert.Equal(t, 1, p.Prev())
	assert.Equal(t, 3, p.Next())
	assert.Equal(t, 5, p.Last())

	// 边界页不越界
	first := Pager{Page: 1, TotalPages: 5}
	assert.Equal(t, 1, first.Prev())
	last := Pager{Page: 5, TotalPages: 5}
	assert.Equal(t, 5, last.Next())
}

func TestPagerRange(t *testing.T) {
	p := Pager{Page: 2, Limit: 10, Total: 45, TotalPages: 5}
	start, end := p.Range()
	assert.Equal(t, 11, start)
	assert.Equal(t, 20, end)
	assert.Equal(t, "Showing 11-20 of 45", p.RangeText())

	// 末页不满一页
	p.Page = 5
	start, end = p.Range()
	assert.Equal(t, 41, start)
	assert.Equal(t, 45, end)
}

func TestPagerRangeEmpty(t *testing.T) {
	p := Pager{Page: 1, Limit: 10, Total: 0, TotalPages: 1}
	start, end := p.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, "Showing 0-0 of 0", p.RangeText())
}
