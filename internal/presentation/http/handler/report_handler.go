package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/grifosur/grifo-api/internal/application/service"
	"github.com/grifosur/grifo-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDailyReport handles the daily sales report. The date query parameter
// is YYYY-MM-DD; it defaults to today in Peru local time.
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	report, err := h.reportService.GetDailyReport(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report retrieved successfully", report)
}

// GetRecentSales handles listing the latest completed sales
func (h *ReportHandler) GetRecentSales(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	sales, err := h.reportService.GetRecentSales(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recent sales retrieved successfully", sales)
}

// GetDashboard handles the dashboard statistics
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	stats, err := h.reportService.GetDashboardStats(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard statistics retrieved successfully", stats)
}
