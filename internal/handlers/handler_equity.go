package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
	"github.com/habilafinance/finledger_backend/internal/middleware"
)

// equityHandler handles HTTP requests related to profit distribution.
type equityHandler struct {
	equityService portssvc.EquitySvcFacade
}

func newEquityHandler(es portssvc.EquitySvcFacade) *equityHandler {
	return &equityHandler{equityService: es}
}

// registerEquityRoutes registers routes related to profit distribution.
func registerEquityRoutes(rg *gin.RouterGroup, equityService portssvc.EquitySvcFacade) {
	h := newEquityHandler(equityService)

	equity := rg.Group("/equity")
	{
		equity.GET("/distribution", h.previewDistribution)
		equity.POST("/distributions", h.recordDistribution)
		equity.GET("/distributions", h.distributionHistory)
	}
}

// previewDistribution godoc
// @Summary Preview a profit distribution
// @Description Computes the distributable profit and per-holder shares for a period without recording anything
// @Tags equity
// @Produce  json
// @Param   period query string true "monthly, quarterly, annual or custom"
// @Param   year query int false "Year"
// @Param   month query int false "Month (1-12), for monthly periods"
// @Param   quarter query int false "Quarter (1-4), for quarterly periods"
// @Param   start query string false "Start date (YYYY-MM-DD), for custom periods"
// @Param   end query string false "End date (YYYY-MM-DD), for custom periods"
// @Success 200 {object} domain.DistributionPlan
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 500 {object} ErrorResponse "Failed to compute distribution"
// @Security BearerAuth
// @Router /equity/distribution [get]
func (h *equityHandler) previewDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DistributionPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	plan, err := h.equityService.PreviewDistribution(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to compute distribution plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute distribution"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// recordDistribution godoc
// @Summary Record a profit distribution
// @Description Computes the plan for a period and records one outflow per non-zero share
// @Tags equity
// @Accept  json
// @Produce  json
// @Param   distribution body dto.RecordDistributionRequest true "Distribution period and date"
// @Success 201 {object} dto.RecordDistributionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to record distribution"
// @Security BearerAuth
// @Router /equity/distributions [post]
func (h *equityHandler) recordDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordDistribution", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	plan, result, err := h.equityService.RecordDistribution(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to record distribution", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record distribution"})
		}
		return
	}

	if actor, ok := middleware.GetUserIDFromContext(c); ok {
		logger.Info("Profit distribution recorded",
			slog.Int("shares_recorded", result.Recorded),
			slog.String("recorded_by", actor))
	}

	c.JSON(http.StatusCreated, dto.RecordDistributionResponse{Plan: *plan, Result: *result})
}

// distributionHistory godoc
// @Summary Distribution history
// @Description Lists recorded distribution transactions, optionally narrowed to one shareholder and one year
// @Tags equity
// @Produce  json
// @Param   shareholderID query string false "Shareholder ID"
// @Param   year query int false "Year"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} ErrorResponse "Shareholder not found"
// @Failure 500 {object} ErrorResponse "Failed to list distributions"
// @Security BearerAuth
// @Router /equity/distributions [get]
func (h *equityHandler) distributionHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DistributionHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	history, err := h.equityService.DistributionHistory(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shareholder not found"})
		} else {
			logger.Error("Failed to list distributions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list distributions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(history))
}
