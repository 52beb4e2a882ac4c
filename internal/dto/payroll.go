package dto

import "github.com/shopspring/decimal"

// StatementParams selects the month for a salary statement.
type StatementParams struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// PaySalaryRequest defines the payload for recording a salary payment.
// Amount must stay within the amount still owed for the target month.
type PaySalaryRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	Year       int             `json:"year" binding:"required,min=2000,max=2100"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       string          `json:"date" binding:"required,datetime=2006-01-02"`
	Note       string          `json:"note"`
}

// PaymentHistoryParams filters the salary payment history.
type PaymentHistoryParams struct {
	EmployeeID string `form:"employeeID"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
}
