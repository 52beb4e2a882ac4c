package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/accounting"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// equityService implements the EquitySvcFacade interface
type equityService struct {
	BaseService
	txnRepo         portsrepo.TransactionRepositoryFacade
	employeeRepo    portsrepo.EmployeeRepositoryFacade
	shareholderRepo portsrepo.ShareholderRepositoryFacade
}

// NewEquityService creates a new equity service
func NewEquityService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	shareholderRepo portsrepo.ShareholderRepositoryFacade,
) portssvc.EquitySvcFacade {
	return &equityService{
		txnRepo:         txnRepo,
		employeeRepo:    employeeRepo,
		shareholderRepo: shareholderRepo,
	}
}

var _ portssvc.EquitySvcFacade = (*equityService)(nil)

func (s *equityService) PreviewDistribution(ctx context.Context, params dto.DistributionPeriodParams) (*domain.DistributionPlan, error) {
	start, end, err := resolvePeriod(params)
	if err != nil {
		return nil, err
	}
	return s.buildPlan(ctx, start, end)
}

func (s *equityService) RecordDistribution(ctx context.Context, req dto.RecordDistributionRequest) (*domain.DistributionPlan, *domain.DistributionResult, error) {
	start, end, err := resolvePeriod(req.PeriodParams())
	if err != nil {
		return nil, nil, err
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, nil, apperrors.NewValidationError("distribution", []apperrors.FieldViolation{
			{Field: "date", Reason: "must be a valid date in YYYY-MM-DD format"},
		})
	}

	plan, err := s.buildPlan(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}

	result := &domain.DistributionResult{Requested: len(plan.Shares)}
	if result.Requested == 0 {
		s.LogInfo(ctx, "No distributable profit, nothing recorded",
			slog.String("period_start", start.Format(dto.DateLayout)),
			slog.String("period_end", end.Format(dto.DateLayout)))
		return plan, result, nil
	}

	// Writes are best effort: a failed share is logged and skipped, the
	// caller reconciles Recorded against Requested.
	for _, share := range plan.Shares {
		if share.Amount.IsZero() {
			result.Requested--
			continue
		}
		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			Date:          date,
			Kind:          domain.Outflow,
			Amount:        share.Amount,
			Description:   accounting.DistributionDescription(share.FullName, start, end),
			Category:      accounting.DistributionCategory,
		}
		if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
			s.LogError(ctx, err, "Failed to record distribution share",
				slog.String("shareholder_id", share.ShareholderID),
				slog.String("amount", share.Amount.String()))
			continue
		}
		result.Recorded++
	}

	s.LogInfo(ctx, "Distribution recorded",
		slog.Int("requested", result.Requested),
		slog.Int("recorded", result.Recorded),
		slog.String("distributable_profit", plan.DistributableProfit.String()))
	return plan, result, nil
}

func (s *equityService) DistributionHistory(ctx context.Context, params dto.DistributionHistoryParams) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for distribution history")
		return nil, fmt.Errorf("failed to load transactions for distribution history: %w", err)
	}

	// Distribution rows carry the holder's full name in the description,
	// so a per-holder filter matches on that.
	var holderName string
	if params.ShareholderID != "" {
		sh, err := s.shareholderRepo.FindShareholderByID(ctx, params.ShareholderID)
		if err != nil {
			return nil, err
		}
		holderName = sh.FullName()
	}

	history := make([]domain.Transaction, 0)
	for _, txn := range txns {
		if txn.Kind != domain.Outflow || txn.Category != accounting.DistributionCategory {
			continue
		}
		if holderName != "" && !strings.Contains(txn.Description, holderName) {
			continue
		}
		if params.Year != 0 && txn.Date.Year() != params.Year {
			continue
		}
		history = append(history, txn)
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	return history, nil
}

// buildPlan loads the full data set and computes the distribution plan for
// the inclusive date range.
func (s *equityService) buildPlan(ctx context.Context, start, end time.Time) (*domain.DistributionPlan, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for distribution plan")
		return nil, fmt.Errorf("failed to load transactions for distribution plan: %w", err)
	}
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for distribution plan")
		return nil, fmt.Errorf("failed to load employees for distribution plan: %w", err)
	}
	shareholders, err := s.shareholderRepo.FindShareholders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shareholders for distribution plan")
		return nil, fmt.Errorf("failed to load shareholders for distribution plan: %w", err)
	}

	plan := accounting.BuildDistributionPlan(txns, employees, shareholders, start, end)
	return &plan, nil
}

// resolvePeriod turns the period selector into an inclusive [start, end]
// date range.
func resolvePeriod(params dto.DistributionPeriodParams) (time.Time, time.Time, error) {
	switch params.Period {
	case dto.PeriodMonthly:
		if params.Year == 0 || params.Month == 0 {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("period", []apperrors.FieldViolation{
				{Field: "year", Reason: "year and month are required for a monthly period"},
			})
		}
		start := time.Date(params.Year, time.Month(params.Month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil

	case dto.PeriodQuarterly:
		if params.Year == 0 || params.Quarter == 0 {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("period", []apperrors.FieldViolation{
				{Field: "year", Reason: "year and quarter are required for a quarterly period"},
			})
		}
		startMonth := time.Month((params.Quarter-1)*3 + 1)
		start := time.Date(params.Year, startMonth, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, -1), nil

	case dto.PeriodAnnual:
		if params.Year == 0 {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("period", []apperrors.FieldViolation{
				{Field: "year", Reason: "year is required for an annual period"},
			})
		}
		start := time.Date(params.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(params.Year, time.December, 31, 0, 0, 0, 0, time.UTC), nil

	case dto.PeriodCustom:
		start, err := dto.ParseDate(params.Start)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("period", []apperrors.FieldViolation{
				{Field: "start", Reason: "start and end are required for a custom period"},
			})
		}
		end, err := dto.ParseDate(params.End)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("period", []apperrors.FieldViolation{
				{Field: "end", Reason: "start and end are required for a custom period"},
			})
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("period", []apperrors.FieldViolation{
				{Field: "end", Reason: "must not be before start"},
			})
		}
		return start, end, nil

	default:
		return time.Time{}, time.Time{}, apperrors.NewValidationError("period", []apperrors.FieldViolation{
			{Field: "period", Reason: "must be monthly, quarterly, annual or custom"},
		})
	}
}
