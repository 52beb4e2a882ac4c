package services

import (
	"context"
	"time"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// ReportingSvcFacade exposes read-only aggregate views over the ledger.
type ReportingSvcFacade interface {
	// Dashboard summarizes the ledger relative to the supplied reference day.
	Dashboard(ctx context.Context, today time.Time) (*domain.DashboardSummary, error)

	// MonthlyReport breaks one calendar month down by category and by day.
	MonthlyReport(ctx context.Context, year int, month time.Month) (*domain.MonthlyReport, error)

	// PeriodSummary aggregates an arbitrary inclusive date range.
	PeriodSummary(ctx context.Context, params dto.PeriodSummaryParams) (*domain.PeriodSummary, error)
}
