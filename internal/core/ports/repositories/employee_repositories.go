package repositories

import (
	"context"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by their ID, whether
	// active or not.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployees retrieves every stored employee, active and inactive.
	// Callers filter on the Active flag.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, emp domain.Employee) error

	// UpdateEmployee replaces the full record keyed by its ID.
	UpdateEmployee(ctx context.Context, emp domain.Employee) error
}

// EmployeeLifecycleManager defines removal of an employee. Whether removal
// deactivates the record or deletes it outright is a policy of the chosen
// backend, not of the core.
type EmployeeLifecycleManager interface {
	RemoveEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeLifecycleManager
}
