package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/accounting"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txns = accounting.FilterPeriod(txns, parseOptionalDate(params.Start), parseOptionalDate(params.End))

	if params.Kind != "" || params.Category != "" {
		filtered := make([]domain.Transaction, 0, len(txns))
		for _, txn := range txns {
			if params.Kind != "" && string(txn.Kind) != params.Kind {
				continue
			}
			if params.Category != "" && txn.Category != params.Category {
				continue
			}
			filtered = append(filtered, txn)
		}
		txns = filtered
	}

	// Newest first for listing
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})

	s.LogDebug(ctx, "Transactions listed successfully", slog.Int("count", len(txns)))
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("transaction", []apperrors.FieldViolation{
			{Field: "date", Reason: "must be a valid date in YYYY-MM-DD format"},
		})
	}

	kind, ok := domain.ParseFlowType(req.Kind)
	if !ok {
		return nil, apperrors.NewValidationError("transaction", []apperrors.FieldViolation{
			{Field: "kind", Reason: "must be INFLOW or OUTFLOW"},
		})
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Kind:          kind,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("transaction", []apperrors.FieldViolation{
			{Field: "date", Reason: "must be a valid date in YYYY-MM-DD format"},
		})
	}

	kind, ok := domain.ParseFlowType(req.Kind)
	if !ok {
		return nil, apperrors.NewValidationError("transaction", []apperrors.FieldViolation{
			{Field: "kind", Reason: "must be INFLOW or OUTFLOW"},
		})
	}

	txn := domain.Transaction{
		TransactionID: existing.TransactionID,
		Date:          date,
		Kind:          kind,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		EmployeeID:    existing.EmployeeID, // Salary linkage survives edits
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully",
		slog.String("transaction_id", transactionID))
	return &txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.GetTransactionByID(ctx, transactionID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted successfully",
		slog.String("transaction_id", transactionID))
	return nil
}

// parseOptionalDate turns an already-validated wire date into a pointer, nil
// when absent.
func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := dto.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}
