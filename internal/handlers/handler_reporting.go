package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
	"github.com/habilafinance/finledger_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for the aggregate views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/monthly", h.getMonthlyReport)
		reports.GET("/summary", h.getPeriodSummary)
	}
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Returns all-time totals, the current month's movement and headline roster figures
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.DashboardSummary
// @Failure 500 {object} ErrorResponse "Failed to compute dashboard"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Dashboard(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getMonthlyReport godoc
// @Summary Monthly report
// @Description Breaks one calendar month down by category, by day and by salary status
// @Tags reports
// @Produce  json
// @Param   year query int true "Year"
// @Param   month query int true "Month (1-12)"
// @Success 200 {object} domain.MonthlyReport
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Failed to compute report"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthlyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), params.Year, time.Month(params.Month))
	if err != nil {
		logger.Error("Failed to compute monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getPeriodSummary godoc
// @Summary Period analytics summary
// @Description Aggregates an arbitrary inclusive date range: totals, monthly evolution and largest transactions
// @Tags reports
// @Produce  json
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Param   topN query int false "Number of top transactions (default 5)"
// @Success 200 {object} domain.PeriodSummary
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getPeriodSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PeriodSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.PeriodSummary(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to compute period summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}
