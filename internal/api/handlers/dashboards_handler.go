package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// DashboardsHandler 处理后台统计相关的API请求
type DashboardsHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardsHandler 创建统计处理器
func NewDashboardsHandler(dashboardService *services.DashboardService) *DashboardsHandler {
	return &DashboardsHandler{dashboardService: dashboardService}
}

// 解析year查询参数，缺省为当前年份
func yearParam(c *gin.Context) int {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		return time.Now().Year()
	}
	return year
}

// Summary 获取总览统计
func (h *DashboardsHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, summary, "Success")
}

// SummaryUser 获取某一年按月的注册用户统计
func (h *DashboardsHandler) SummaryUser(c *gin.Context) {
	summary, err := h.dashboardService.UserSummary(yearParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, summary, "Success")
}

// SummaryRevenue 获取某一年按月的营收统计
func (h *DashboardsHandler) SummaryRevenue(c *gin.Context) {
	summary, err := h.dashboardService.RevenueSummary(yearParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, summary, "Success")
}
