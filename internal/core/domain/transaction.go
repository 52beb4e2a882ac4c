package domain

import (
	"time"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FlowType indicates the direction of a cash movement. Inflow increases the
// ledger balance, Outflow decreases it; the amount itself is always positive.
type FlowType string

const (
	Inflow  FlowType = "INFLOW"
	Outflow FlowType = "OUTFLOW"
)

// Legacy direction labels used by the historical CSV exports. They are
// accepted on decode and never written back.
const (
	legacyInflowLabel  = "Entrée"
	legacyOutflowLabel = "Sortie"
)

// ParseFlowType decodes a stored direction label, accepting both the
// canonical tokens and the legacy French labels.
func ParseFlowType(s string) (FlowType, bool) {
	switch s {
	case string(Inflow), legacyInflowLabel:
		return Inflow, true
	case string(Outflow), legacyOutflowLabel:
		return Outflow, true
	}
	return "", false
}

// Transaction represents a single cash movement in the ledger.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`          // Effective date, date-only precision
	Kind          FlowType        `json:"kind"`          // INFLOW or OUTFLOW
	Amount        decimal.Decimal `json:"amount"`        // Always positive; sign carried by Kind
	Description   string          `json:"description"`
	Category      string          `json:"category,omitempty"`   // Optional free-form label
	EmployeeID    string          `json:"employeeID,omitempty"` // Set on salary payments only
}

// SignedAmount returns the amount with the sign implied by the flow type.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == Outflow {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the transaction invariants and reports every violated
// field-level rule.
func (t Transaction) Validate() error {
	var violations []apperrors.FieldViolation
	if t.TransactionID == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "transactionID", Reason: "must not be empty"})
	}
	if t.Date.IsZero() {
		violations = append(violations, apperrors.FieldViolation{Field: "date", Reason: "must be set"})
	}
	if t.Kind != Inflow && t.Kind != Outflow {
		violations = append(violations, apperrors.FieldViolation{Field: "kind", Reason: "must be INFLOW or OUTFLOW"})
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		violations = append(violations, apperrors.FieldViolation{Field: "amount", Reason: "must be positive"})
	}
	if t.Description == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "description", Reason: "must not be empty"})
	}
	return apperrors.NewValidationError("transaction", violations)
}
