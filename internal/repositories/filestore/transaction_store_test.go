package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
)

func newTxnStore(t *testing.T) (*CSVTransactionRepository, string) {
	t.Helper()
	dir := t.TempDir()
	return &CSVTransactionRepository{path: filepath.Join(dir, "transactions.csv")}, dir
}

func storeTxn(kind domain.FlowType, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Kind:          kind,
		Amount:        decimal.NewFromInt(amount),
		Description:   "Facture client",
		Category:      "Ventes",
	}
}

func TestCSVTransactionRepository_EmptyFileIsEmptyLedger(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTxnStore(t)

	txns, err := repo.FindTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestCSVTransactionRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTxnStore(t)
	txn := storeTxn(domain.Inflow, 2500)
	txn.EmployeeID = uuid.NewString()

	require.NoError(t, repo.SaveTransaction(ctx, txn))

	found, err := repo.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, txn.TransactionID, found.TransactionID)
	assert.Equal(t, txn.Date, found.Date)
	assert.Equal(t, domain.Inflow, found.Kind)
	assert.True(t, found.Amount.Equal(txn.Amount))
	assert.Equal(t, txn.EmployeeID, found.EmployeeID)
}

func TestCSVTransactionRepository_UpdateTransaction(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTxnStore(t)
	txn := storeTxn(domain.Inflow, 2500)

	require.NoError(t, repo.SaveTransaction(ctx, txn))

	txn.Amount = decimal.NewFromInt(3000)
	txn.Description = "Facture client corrigée"
	require.NoError(t, repo.UpdateTransaction(ctx, txn))

	found, err := repo.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "Facture client corrigée", found.Description)
}

func TestCSVTransactionRepository_UpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTxnStore(t)

	err := repo.UpdateTransaction(ctx, storeTxn(domain.Inflow, 100))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCSVTransactionRepository_DeleteTransaction(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTxnStore(t)
	keep := storeTxn(domain.Inflow, 100)
	drop := storeTxn(domain.Outflow, 200)

	require.NoError(t, repo.SaveTransaction(ctx, keep))
	require.NoError(t, repo.SaveTransaction(ctx, drop))

	require.NoError(t, repo.DeleteTransaction(ctx, drop.TransactionID))

	txns, err := repo.FindTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, keep.TransactionID, txns[0].TransactionID)

	_, err = repo.FindTransactionByID(ctx, drop.TransactionID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCSVTransactionRepository_LegacyFrenchKinds(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTxnStore(t)

	legacy := "transaction_id,date,kind,amount,description,category\n" +
		"t-1,2024-01-10,Entrée,1000,Facture,Ventes\n" +
		"t-2,2024-01-15,Sortie,400,Loyer,Loyer\n"
	require.NoError(t, os.WriteFile(repo.path, []byte(legacy), 0o644))

	txns, err := repo.FindTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, domain.Inflow, txns[0].Kind)
	assert.Equal(t, domain.Outflow, txns[1].Kind)
	// Rows predating the employee_id column load with no link.
	assert.Empty(t, txns[0].EmployeeID)
}

func TestCSVTransactionRepository_RewriteUsesCanonicalKinds(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTxnStore(t)

	legacy := "transaction_id,date,kind,amount,description,category\n" +
		"t-1,2024-01-10,Entrée,1000,Facture,Ventes\n"
	require.NoError(t, os.WriteFile(repo.path, []byte(legacy), 0o644))

	// Any write rewrites the whole file with canonical labels.
	require.NoError(t, repo.SaveTransaction(ctx, storeTxn(domain.Outflow, 50)))

	raw, err := os.ReadFile(repo.path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "INFLOW")
	assert.NotContains(t, string(raw), "Entrée")
}
