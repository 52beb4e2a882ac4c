package domain

import (
	"time"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Employee represents a salaried employee with a monthly obligation.
type Employee struct {
	EmployeeID    string          `json:"employeeID"` // Primary Key (UUID)
	LastName      string          `json:"lastName"`
	FirstName     string          `json:"firstName"`
	Position      string          `json:"position"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"` // Always positive
	HireDate      time.Time       `json:"hireDate"`      // Date-only precision
	Active        bool            `json:"active"`        // Inactive employees keep their history but leave payroll
}

// FullName returns the display name, first name first.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Validate checks the employee invariants and reports every violated
// field-level rule.
func (e Employee) Validate() error {
	var violations []apperrors.FieldViolation
	if e.EmployeeID == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "employeeID", Reason: "must not be empty"})
	}
	if e.LastName == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "lastName", Reason: "must not be empty"})
	}
	if e.FirstName == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "firstName", Reason: "must not be empty"})
	}
	if e.MonthlySalary.LessThanOrEqual(decimal.Zero) {
		violations = append(violations, apperrors.FieldViolation{Field: "monthlySalary", Reason: "must be positive"})
	}
	if e.HireDate.IsZero() {
		violations = append(violations, apperrors.FieldViolation{Field: "hireDate", Reason: "must be set"})
	}
	return apperrors.NewValidationError("employee", violations)
}
