package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents one salaried employee as stored.
type Employee struct {
	EmployeeID    string          `json:"employeeID" db:"employee_id"`
	LastName      string          `json:"lastName" db:"last_name"`
	FirstName     string          `json:"firstName" db:"first_name"`
	Position      string          `json:"position" db:"position"`
	MonthlySalary decimal.Decimal `json:"monthlySalary" db:"monthly_salary"`
	HireDate      time.Time       `json:"hireDate" db:"hire_date"`
	Active        bool            `json:"active" db:"active"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}
