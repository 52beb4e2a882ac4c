package dto

import (
	"time"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for every date in the API. Dates carry no
// time-of-day component.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the payload for recording a transaction.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Kind        string          `json:"kind" binding:"required,oneof=INFLOW OUTFLOW"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
}

// UpdateTransactionRequest replaces a transaction in full; updates are not
// partial.
type UpdateTransactionRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Kind        string          `json:"kind" binding:"required,oneof=INFLOW OUTFLOW"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
}

// ListTransactionsParams defines the optional filters for listing the ledger.
type ListTransactionsParams struct {
	Start    string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End      string `form:"end" binding:"omitempty,datetime=2006-01-02"`
	Kind     string `form:"kind" binding:"omitempty,oneof=INFLOW OUTFLOW"`
	Category string `form:"category"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category,omitempty"`
	EmployeeID    string          `json:"employeeID,omitempty"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ParseDate parses a wire-format date into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(DateLayout),
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		Description:   txn.Description,
		Category:      txn.Category,
		EmployeeID:    txn.EmployeeID,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction to the
// list response DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}
