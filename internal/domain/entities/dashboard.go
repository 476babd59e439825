package entities

// DashboardSummary 总览统计
type DashboardSummary struct {
	TotalUser  int `json:"totalUser"`
	TotalTool  int `json:"totalTool"`
	TotalVps   int `json:"totalVps"`
	TotalProxy int `json:"totalProxy"`
}

// MonthlyTotal 按月统计的数据点
type MonthlyTotal struct {
	Month int     `json:"month" db:"month"`
	Total float64 `json:"total" db:"total"`
}

// YearlySummary 某一年的按月统计，固定12个月
type YearlySummary struct {
	Year      int            `json:"year"`
	Timelines []MonthlyTotal `json:"timelines"`
}
