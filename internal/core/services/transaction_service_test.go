package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/core/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func ledgerTxn(d time.Time, kind domain.FlowType, amount int64, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          d,
		Kind:          kind,
		Amount:        decimal.NewFromInt(amount),
		Description:   "Test movement",
		Category:      category,
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        "2025-06-15",
		Kind:        "INFLOW",
		Amount:      decimal.NewFromInt(2500),
		Description: "Facture client",
		Category:    "Ventes",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Inflow, txn.Kind)
	suite.Equal(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), txn.Date)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(2500)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidKind() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        "2025-06-15",
		Kind:        "TRANSFER",
		Amount:      decimal.NewFromInt(2500),
		Description: "Facture client",
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        "2025-06-15",
		Kind:        "OUTFLOW",
		Amount:      decimal.Zero,
		Description: "Facture client",
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FiltersAndSorts() {
	ctx := context.Background()
	older := ledgerTxn(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), domain.Inflow, 100, "Ventes")
	newer := ledgerTxn(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), domain.Inflow, 200, "Ventes")
	outflow := ledgerTxn(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), domain.Outflow, 50, "Loyer")

	suite.mockRepo.On("FindTransactions", ctx).Return([]domain.Transaction{older, newer, outflow}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Kind: "INFLOW"})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	// Newest first.
	suite.Equal(newer.TransactionID, txns[0].TransactionID)
	suite.Equal(older.TransactionID, txns[1].TransactionID)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PeriodBoundsInclusive() {
	ctx := context.Background()
	before := ledgerTxn(time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), domain.Inflow, 100, "")
	first := ledgerTxn(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), domain.Inflow, 200, "")
	last := ledgerTxn(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), domain.Inflow, 300, "")
	after := ledgerTxn(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), domain.Inflow, 400, "")

	suite.mockRepo.On("FindTransactions", ctx).Return([]domain.Transaction{before, first, last, after}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		Start: "2025-06-01",
		End:   "2025-06-30",
	})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_KeepsEmployeeLink() {
	ctx := context.Background()
	existing := ledgerTxn(time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC), domain.Outflow, 3000, "Salaire")
	existing.EmployeeID = uuid.NewString()

	req := dto.UpdateTransactionRequest{
		Date:        "2025-06-29",
		Kind:        "OUTFLOW",
		Amount:      decimal.NewFromInt(3000),
		Description: existing.Description,
		Category:    existing.Category,
	}

	suite.mockRepo.On("FindTransactionByID", ctx, existing.TransactionID).Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.EmployeeID == existing.EmployeeID
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal(existing.EmployeeID, txn.EmployeeID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	req := dto.UpdateTransactionRequest{
		Date:        "2025-06-29",
		Kind:        "OUTFLOW",
		Amount:      decimal.NewFromInt(100),
		Description: "Quelconque",
	}

	suite.mockRepo.On("FindTransactionByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.UpdateTransaction(ctx, unknownID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	existing := ledgerTxn(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), domain.Inflow, 100, "")

	suite.mockRepo.On("FindTransactionByID", ctx, existing.TransactionID).Return(&existing, nil).Once()
	suite.mockRepo.On("DeleteTransaction", ctx, existing.TransactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, existing.TransactionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_RepoError() {
	ctx := context.Background()
	existing := ledgerTxn(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), domain.Inflow, 100, "")
	expectedErr := assert.AnError

	suite.mockRepo.On("FindTransactionByID", ctx, existing.TransactionID).Return(&existing, nil).Once()
	suite.mockRepo.On("DeleteTransaction", ctx, existing.TransactionID).Return(expectedErr).Once()

	err := suite.service.DeleteTransaction(ctx, existing.TransactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
