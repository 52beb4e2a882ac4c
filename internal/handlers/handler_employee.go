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

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployeeByID)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.removeEmployee)
	}
}

// createEmployee godoc
// @Summary Hire an employee
// @Description Registers a new employee with their monthly salary
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to create employee"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	createdEmp, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create employee"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(createdEmp))
}

// listEmployees godoc
// @Summary List employees
// @Description Retrieves all employees, optionally only the active payroll
// @Tags employees
// @Produce  json
// @Param   active query bool false "Only active employees"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} ErrorResponse "Failed to list employees"
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly := c.Query("active") == "true"

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// getEmployeeByID godoc
// @Summary Get an employee
// @Description Retrieves a single employee by their ID
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve employee"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployeeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	emp, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		} else {
			logger.Error("Failed to get employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve employee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Replaces an employee's details, including the active flag
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Employee details"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Failed to update employee"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updatedEmp, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update employee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(updatedEmp))
}

// removeEmployee godoc
// @Summary Remove an employee
// @Description Removes an employee from the payroll; the storage backend decides between deactivation and deletion
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Failed to remove employee"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) removeEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	err := h.employeeService.RemoveEmployee(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		} else {
			logger.Error("Failed to remove employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove employee"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
