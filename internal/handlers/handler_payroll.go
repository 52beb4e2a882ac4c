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

// payrollHandler handles HTTP requests related to salary reconciliation.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// registerPayrollRoutes registers routes related to payroll.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll")
	{
		payroll.GET("/statement", h.getStatement)
		payroll.POST("/payments", h.paySalary)
		payroll.GET("/payments", h.paymentHistory)
	}
}

// getStatement godoc
// @Summary Monthly salary statement
// @Description Reconciles every active employee's salary against recorded payments for one month
// @Tags payroll
// @Produce  json
// @Param   year query int true "Year"
// @Param   month query int true "Month (1-12)"
// @Success 200 {object} domain.SalaryStatement
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Failed to compute statement"
// @Security BearerAuth
// @Router /payroll/statement [get]
func (h *payrollHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	statement, err := h.payrollService.MonthlyStatement(c.Request.Context(), params.Year, time.Month(params.Month))
	if err != nil {
		logger.Error("Failed to compute salary statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute statement"})
		return
	}

	c.JSON(http.StatusOK, statement)
}

// paySalary godoc
// @Summary Record a salary payment
// @Description Records one salary payment as an outflow; rejects payments above the amount still owed for the month
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   payment body dto.PaySalaryRequest true "Payment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 422 {object} ErrorResponse "Payment exceeds remaining amount owed"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /payroll/payments [post]
func (h *payrollHandler) paySalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PaySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PaySalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.payrollService.PaySalary(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		} else if errors.Is(err, apperrors.ErrOverpayment) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to record salary payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}

	if actor, ok := middleware.GetUserIDFromContext(c); ok {
		logger.Info("Salary payment recorded",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("recorded_by", actor))
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// paymentHistory godoc
// @Summary Salary payment history
// @Description Lists recorded salary payments, optionally narrowed to one employee and one year
// @Tags payroll
// @Produce  json
// @Param   employeeID query string false "Employee ID"
// @Param   year query int false "Year"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /payroll/payments [get]
func (h *payrollHandler) paymentHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PaymentHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.payrollService.PaymentHistory(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		} else {
			logger.Error("Failed to list salary payments", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(payments))
}
