package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	"github.com/habilafinance/finledger_backend/internal/models"
	"github.com/habilafinance/finledger_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	db Querier
}

func newPgxTransactionRepository(db Querier) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements the facade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, txn_date, kind, amount, description, category, employee_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Date,
		modelTxn.Kind,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.Category,
		nullIfEmpty(modelTxn.EmployeeID),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, txn_date, kind, amount, description, category, employee_id, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	modelTxn, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, txn_date, kind, amount, description, category, employee_id, created_at
		FROM transactions
		ORDER BY txn_date, created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		modelTxn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, modelTxn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET txn_date = $2, kind = $3, amount = $4, description = $5, category = $6, employee_id = $7
		WHERE transaction_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Date,
		modelTxn.Kind,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.Category,
		nullIfEmpty(modelTxn.EmployeeID),
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	tag, err := r.db.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanTransaction reads one row into a model, folding a NULL employee_id
// into an empty string.
func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var modelTxn models.Transaction
	var employeeID *string
	err := row.Scan(
		&modelTxn.TransactionID,
		&modelTxn.Date,
		&modelTxn.Kind,
		&modelTxn.Amount,
		&modelTxn.Description,
		&modelTxn.Category,
		&employeeID,
		&modelTxn.CreatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	if employeeID != nil {
		modelTxn.EmployeeID = *employeeID
	}
	return modelTxn, nil
}
