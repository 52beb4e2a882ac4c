package services

import (
	"context"
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

// payrollService implements the PayrollSvcFacade interface
type payrollService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewPayrollService creates a new payroll service
func NewPayrollService(txnRepo portsrepo.TransactionRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.PayrollSvcFacade {
	return &payrollService{txnRepo: txnRepo, employeeRepo: employeeRepo}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) MonthlyStatement(ctx context.Context, year int, month time.Month) (*domain.SalaryStatement, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for statement")
		return nil, fmt.Errorf("failed to load employees for statement: %w", err)
	}

	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for statement")
		return nil, fmt.Errorf("failed to load transactions for statement: %w", err)
	}

	statement := accounting.Statement(employees, txns, year, month)

	s.LogDebug(ctx, "Salary statement computed",
		slog.Int("year", year),
		slog.Int("month", int(month)),
		slog.Int("lines", len(statement.Lines)))
	return &statement, nil
}

func (s *payrollService) PaySalary(ctx context.Context, req dto.PaySalaryRequest) (*domain.Transaction, error) {
	emp, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.Active {
		return nil, apperrors.NewValidationError("payment", []apperrors.FieldViolation{
			{Field: "employeeID", Reason: "employee is not active"},
		})
	}

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment", []apperrors.FieldViolation{
			{Field: "amount", Reason: "must be strictly positive"},
		})
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("payment", []apperrors.FieldViolation{
			{Field: "date", Reason: "must be a valid date in YYYY-MM-DD format"},
		})
	}

	// Reconcile against the current ledger right before writing, so two
	// requests racing for the same month cannot both pass a stale check.
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for payment check")
		return nil, fmt.Errorf("failed to load transactions for payment check: %w", err)
	}

	line := accounting.Reconcile(*emp, txns, req.Year, time.Month(req.Month))
	if req.Amount.GreaterThan(line.Remaining) {
		err := &apperrors.OverpaymentError{Requested: req.Amount, Remaining: line.Remaining}
		s.LogDebug(ctx, "Salary payment rejected as overpayment",
			slog.String("employee_id", req.EmployeeID),
			slog.String("requested", req.Amount.String()),
			slog.String("remaining", line.Remaining.String()))
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Kind:          domain.Outflow,
		Amount:        req.Amount,
		Description:   accounting.PaymentDescription(*emp, req.Year, time.Month(req.Month), req.Note),
		Category:      accounting.SalaryCategory,
		EmployeeID:    emp.EmployeeID,
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save salary payment",
			slog.String("employee_id", req.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Salary payment recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("employee_id", emp.EmployeeID),
		slog.String("amount", req.Amount.String()))
	return &txn, nil
}

func (s *payrollService) PaymentHistory(ctx context.Context, params dto.PaymentHistoryParams) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for payment history")
		return nil, fmt.Errorf("failed to load transactions for payment history: %w", err)
	}

	var emp *domain.Employee
	if params.EmployeeID != "" {
		emp, err = s.employeeRepo.FindEmployeeByID(ctx, params.EmployeeID)
		if err != nil {
			return nil, err
		}
	}

	history := make([]domain.Transaction, 0)
	for _, txn := range txns {
		if txn.Kind != domain.Outflow || txn.Category != accounting.SalaryCategory {
			continue
		}
		if emp != nil && !accounting.IsSalaryPaymentFor(txn, *emp) {
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
