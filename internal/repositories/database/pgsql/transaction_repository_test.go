package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/habilafinance/finledger_backend/internal/models"
)

var txnColumns = []string{"transaction_id", "txn_date", "kind", "amount", "description", "category", "employee_id", "created_at"}

func testTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Kind:          domain.Inflow,
		Amount:        decimal.NewFromInt(2500),
		Description:   "Facture client",
		Category:      "Ventes",
	}
}

func TestPgxTransactionRepository_SaveTransaction(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTransactionRepository{db: mock}
	txn := testTransaction()

	query := `INSERT INTO transactions \(transaction_id, txn_date, kind, amount, description, category, employee_id, created_at\)`

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(txn.TransactionID, txn.Date, models.Inflow, txn.Amount, txn.Description, txn.Category, (*string)(nil), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.SaveTransaction(ctx, txn)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure", func(t *testing.T) {
		expectedErr := errors.New("db error")
		mock.ExpectExec(query).
			WithArgs(txn.TransactionID, txn.Date, models.Inflow, txn.Amount, txn.Description, txn.Category, (*string)(nil), pgxmock.AnyArg()).
			WillReturnError(expectedErr)

		err := repo.SaveTransaction(ctx, txn)
		assert.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgxTransactionRepository_SaveTransaction_EmployeeLink(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTransactionRepository{db: mock}
	txn := testTransaction()
	txn.Kind = domain.Outflow
	txn.EmployeeID = uuid.NewString()
	linked := txn.EmployeeID

	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs(txn.TransactionID, txn.Date, models.Outflow, txn.Amount, txn.Description, txn.Category, &linked, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.SaveTransaction(ctx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTransactionRepository_FindTransactionByID(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTransactionRepository{db: mock}
	txn := testTransaction()
	now := time.Now()

	query := `SELECT transaction_id, txn_date, kind, amount, description, category, employee_id, created_at`

	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(txnColumns).
			AddRow(txn.TransactionID, txn.Date, models.Inflow, txn.Amount, txn.Description, txn.Category, (*string)(nil), now)
		mock.ExpectQuery(query).WithArgs(txn.TransactionID).WillReturnRows(rows)

		found, err := repo.FindTransactionByID(ctx, txn.TransactionID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, txn.TransactionID, found.TransactionID)
		assert.Equal(t, domain.Inflow, found.Kind)
		assert.True(t, found.Amount.Equal(txn.Amount))
		assert.Empty(t, found.EmployeeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		unknownID := uuid.NewString()
		mock.ExpectQuery(query).WithArgs(unknownID).WillReturnRows(pgxmock.NewRows(txnColumns))

		found, err := repo.FindTransactionByID(ctx, unknownID)
		assert.Nil(t, found)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgxTransactionRepository_FindTransactions(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTransactionRepository{db: mock}
	first := testTransaction()
	second := testTransaction()
	employeeID := uuid.NewString()
	now := time.Now()

	rows := pgxmock.NewRows(txnColumns).
		AddRow(first.TransactionID, first.Date, models.Inflow, first.Amount, first.Description, first.Category, (*string)(nil), now).
		AddRow(second.TransactionID, second.Date, models.Outflow, second.Amount, "Salaire - Claire Martin (06/2025)", "Salaire", &employeeID, now)
	mock.ExpectQuery(`SELECT transaction_id, txn_date, kind, amount, description, category, employee_id, created_at`).
		WillReturnRows(rows)

	txns, err := repo.FindTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, domain.Outflow, txns[1].Kind)
	assert.Equal(t, employeeID, txns[1].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTransactionRepository_UpdateTransaction(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTransactionRepository{db: mock}
	txn := testTransaction()

	query := `UPDATE transactions`

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(txn.TransactionID, txn.Date, models.Inflow, txn.Amount, txn.Description, txn.Category, (*string)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateTransaction(ctx, txn)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected means not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(txn.TransactionID, txn.Date, models.Inflow, txn.Amount, txn.Description, txn.Category, (*string)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateTransaction(ctx, txn)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgxTransactionRepository_DeleteTransaction(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTransactionRepository{db: mock}
	transactionID := uuid.NewString()

	query := `DELETE FROM transactions WHERE transaction_id = \$1;`

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(transactionID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.DeleteTransaction(ctx, transactionID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(transactionID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteTransaction(ctx, transactionID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
