package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowType indicates whether a ledger transaction is money in or money out.
type FlowType string

const (
	Inflow  FlowType = "INFLOW"
	Outflow FlowType = "OUTFLOW"
)

// Transaction represents one ledger row as stored.
// Note: Amount uses github.com/shopspring/decimal; it is always positive,
// the FlowType carries the sign.
type Transaction struct {
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	Date          time.Time       `json:"date" db:"txn_date"`
	Kind          FlowType        `json:"kind" db:"kind"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Description   string          `json:"description" db:"description"`
	Category      string          `json:"category" db:"category"`
	EmployeeID    string          `json:"employeeID,omitempty" db:"employee_id"` // Nullable; set on salary payments
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}
