package services

import (
	"context"
	"time"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// PayrollSvcFacade exposes salary reconciliation and payment recording.
type PayrollSvcFacade interface {
	// MonthlyStatement reconciles every active employee for the month.
	MonthlyStatement(ctx context.Context, year int, month time.Month) (*domain.SalaryStatement, error)

	// PaySalary records one salary payment as an Outflow transaction. It
	// rejects payments that would push the cumulative paid amount past the
	// monthly salary.
	PaySalary(ctx context.Context, req dto.PaySalaryRequest) (*domain.Transaction, error)

	// PaymentHistory lists recorded salary payments, optionally narrowed to
	// one employee and one year.
	PaymentHistory(ctx context.Context, params dto.PaymentHistoryParams) ([]domain.Transaction, error)
}
