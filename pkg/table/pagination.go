package table

import "fmt"

// ClampPage 把目标页码钳制到[1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Pager 分页控件的纯计算部分
type Pager struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// First 首页
func (p Pager) First() int { return 1 }

// Prev 上一页
func (p Pager) Prev() int { return ClampPage(p.Page-1, p.TotalPages) }

// Next 下一页
func (p Pager) Next() int { return ClampPage(p.Page+1, p.TotalPages) }

// Last 末页
func (p Pager) Last() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}

// Range 当前页覆盖的条目区间[start, end]，总数为零时两端都是0
func (p Pager) Range() (int, int) {
	if p.Total == 0 || p.Limit <= 0 {
		return 0, 0
	}

	start := (p.Page-1)*p.Limit + 1
	end := p.Page * p.Limit
	if end > p.Total {
		end = p.Total
	}
	if start > p.Total {
		start = p.Total
	}
	return start, end
}

// RangeText 页脚展示的条目区间文案
func (p Pager) RangeText() string {
	start, end := p.Range()
	return fmt.Sprintf("Showing %d-%d of %d", start, end, p.Total)
}
