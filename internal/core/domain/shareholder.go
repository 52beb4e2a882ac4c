package domain

import (
	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// The company capital is split into a fixed number of ownership units mapped
// to a fixed nominal capital base: 1 unit = 1% = 1,500 currency units.
const (
	TotalOwnershipUnits = 100
	CapitalBase         = 150000
)

// Shareholder represents a holder of ownership units in the fixed capital base.
type Shareholder struct {
	ShareholderID  string `json:"shareholderID"` // Primary Key (UUID)
	LastName       string `json:"lastName"`
	FirstName      string `json:"firstName"`
	OwnershipUnits int    `json:"ownershipUnits"` // In [1,100]
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Active         bool   `json:"active"`
}

// FullName returns the display name, first name first.
func (s Shareholder) FullName() string {
	return s.FirstName + " " + s.LastName
}

// OwnershipPercent is the held percentage of the company. It equals the unit
// count because the total is fixed at 100 units.
func (s Shareholder) OwnershipPercent() int {
	return s.OwnershipUnits
}

// NominalValue is the nominal worth of the held units against the fixed
// capital base.
func (s Shareholder) NominalValue() decimal.Decimal {
	return decimal.NewFromInt(int64(s.OwnershipUnits)).
		Div(decimal.NewFromInt(TotalOwnershipUnits)).
		Mul(decimal.NewFromInt(CapitalBase))
}

// ShareOf returns this shareholder's proportional slice of a distributable
// profit figure.
func (s Shareholder) ShareOf(distributableProfit decimal.Decimal) decimal.Decimal {
	return distributableProfit.
		Mul(decimal.NewFromInt(int64(s.OwnershipUnits))).
		Div(decimal.NewFromInt(TotalOwnershipUnits))
}

// Validate checks the shareholder invariants and reports every violated
// field-level rule. The roster-wide unit cap is a service-level check, not a
// single-entity one.
func (s Shareholder) Validate() error {
	var violations []apperrors.FieldViolation
	if s.ShareholderID == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "shareholderID", Reason: "must not be empty"})
	}
	if s.LastName == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "lastName", Reason: "must not be empty"})
	}
	if s.FirstName == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "firstName", Reason: "must not be empty"})
	}
	if s.OwnershipUnits < 1 || s.OwnershipUnits > TotalOwnershipUnits {
		violations = append(violations, apperrors.FieldViolation{Field: "ownershipUnits", Reason: "must be between 1 and 100"})
	}
	return apperrors.NewValidationError("shareholder", violations)
}
