package services

import (
	"context"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// EquitySvcFacade exposes profit distribution planning and recording.
type EquitySvcFacade interface {
	// PreviewDistribution computes the distributable profit and per-holder
	// shares for the requested period without writing anything.
	PreviewDistribution(ctx context.Context, params dto.DistributionPeriodParams) (*domain.DistributionPlan, error)

	// RecordDistribution computes the plan and records one Outflow
	// transaction per non-zero share. Recording is best effort: a failure
	// on one share does not roll back the ones already written.
	RecordDistribution(ctx context.Context, req dto.RecordDistributionRequest) (*domain.DistributionPlan, *domain.DistributionResult, error)

	// DistributionHistory lists recorded distribution transactions.
	DistributionHistory(ctx context.Context, params dto.DistributionHistoryParams) ([]domain.Transaction, error)
}
