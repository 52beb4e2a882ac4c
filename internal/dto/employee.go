package dto

import (
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the payload for hiring an employee.
type CreateEmployeeRequest struct {
	LastName      string          `json:"lastName" binding:"required"`
	FirstName     string          `json:"firstName" binding:"required"`
	Position      string          `json:"position" binding:"required"`
	MonthlySalary decimal.Decimal `json:"monthlySalary" binding:"required"`
	HireDate      string          `json:"hireDate" binding:"required,datetime=2006-01-02"`
}

// UpdateEmployeeRequest replaces an employee record in full, including the
// active flag.
type UpdateEmployeeRequest struct {
	LastName      string          `json:"lastName" binding:"required"`
	FirstName     string          `json:"firstName" binding:"required"`
	Position      string          `json:"position" binding:"required"`
	MonthlySalary decimal.Decimal `json:"monthlySalary" binding:"required"`
	HireDate      string          `json:"hireDate" binding:"required,datetime=2006-01-02"`
	Active        *bool           `json:"active" binding:"required"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID      string          `json:"employeeID"`
	LastName        string          `json:"lastName"`
	FirstName       string          `json:"firstName"`
	FullName        string          `json:"fullName"`
	Position        string          `json:"position"`
	MonthlySalary   decimal.Decimal `json:"monthlySalary"`
	FormattedSalary string          `json:"formattedSalary"`
	HireDate        string          `json:"hireDate"`
	Active          bool            `json:"active"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(emp *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:      emp.EmployeeID,
		LastName:        emp.LastName,
		FirstName:       emp.FirstName,
		FullName:        emp.FullName(),
		Position:        emp.Position,
		MonthlySalary:   emp.MonthlySalary,
		FormattedSalary: utils.FormatEUR(emp.MonthlySalary),
		HireDate:        emp.HireDate.Format(DateLayout),
		Active:          emp.Active,
	}
}

// ToListEmployeesResponse converts a slice of domain.Employee to the list
// response DTO.
func ToListEmployeesResponse(emps []domain.Employee) ListEmployeesResponse {
	responses := make([]EmployeeResponse, len(emps))
	for i := range emps {
		responses[i] = ToEmployeeResponse(&emps[i])
	}
	return ListEmployeesResponse{Employees: responses}
}
