package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that credentials are missing or invalid.
var ErrUnauthorized = errors.New("unauthorized")

// ErrCapacityExceeded indicates that a shareholder mutation would push the
// ownership unit total over the fixed 100-unit capital base.
var ErrCapacityExceeded = errors.New("ownership unit capacity exceeded")

// ErrOverpayment indicates that a salary payment would exceed the amount
// still owed to the employee for the target month.
var ErrOverpayment = errors.New("payment exceeds remaining amount owed")

// CapacityError carries the roster state behind a capacity rejection so
// callers can report how many units remain assignable.
type CapacityError struct {
	CurrentTotal   int
	RequestedUnits int
	MaxAllowed     int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("ownership unit capacity exceeded: %d units requested, %d already allocated, at most %d available",
		e.RequestedUnits, e.CurrentTotal, e.MaxAllowed)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// NewCapacityError builds a CapacityError from the unit total held by the
// other active shareholders and the requested unit count.
func NewCapacityError(currentTotal, requestedUnits int) *CapacityError {
	maxAllowed := 100 - currentTotal
	if maxAllowed < 0 {
		maxAllowed = 0
	}
	return &CapacityError{
		CurrentTotal:   currentTotal,
		RequestedUnits: requestedUnits,
		MaxAllowed:     maxAllowed,
	}
}

// OverpaymentError carries the remaining owed amount that a rejected salary
// payment would have exceeded.
type OverpaymentError struct {
	Requested decimal.Decimal
	Remaining decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %s exceeds remaining amount owed of %s", e.Requested.String(), e.Remaining.String())
}

func (e *OverpaymentError) Unwrap() error {
	return ErrOverpayment
}
