package services

import (
	"context"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees.
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by ID.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves every employee; activeOnly narrows to the
	// current payroll.
	ListEmployees(ctx context.Context, activeOnly bool) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees.
type EmployeeWriterSvc interface {
	// CreateEmployee validates and persists a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee validates and replaces the employee with the given ID.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// RemoveEmployee removes an employee. The backend decides between hard
	// delete and deactivation.
	RemoveEmployee(ctx context.Context, employeeID string) error
}

// EmployeeSvcFacade combines all employee service interfaces.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
