package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/core/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

type ShareholderServiceTestSuite struct {
	suite.Suite
	mockRepo *MockShareholderRepository
	service  portssvc.ShareholderSvcFacade
}

func (suite *ShareholderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockShareholderRepository)
	suite.service = services.NewShareholderService(suite.mockRepo)
}

func holder(units int, active bool) domain.Shareholder {
	return domain.Shareholder{
		ShareholderID:  uuid.NewString(),
		LastName:       "Dubois",
		FirstName:      "Pierre",
		OwnershipUnits: units,
		Active:         active,
	}
}

func (suite *ShareholderServiceTestSuite) TestCreateShareholder_Success() {
	ctx := context.Background()
	req := dto.CreateShareholderRequest{
		LastName:       "Dubois",
		FirstName:      "Pierre",
		OwnershipUnits: 40,
	}

	suite.mockRepo.On("FindShareholders", ctx).Return([]domain.Shareholder{holder(50, true)}, nil).Once()
	suite.mockRepo.On("SaveShareholder", ctx, mock.AnythingOfType("domain.Shareholder")).Return(nil).Once()

	sh, err := suite.service.CreateShareholder(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sh)
	suite.NotEmpty(sh.ShareholderID)
	suite.Equal(40, sh.OwnershipUnits)
	suite.True(sh.Active)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShareholderServiceTestSuite) TestCreateShareholder_CapacityExceeded() {
	ctx := context.Background()
	req := dto.CreateShareholderRequest{
		LastName:       "Dubois",
		FirstName:      "Pierre",
		OwnershipUnits: 30,
	}

	// 80 units already allocated, 30 more would overflow the 100-unit base.
	suite.mockRepo.On("FindShareholders", ctx).Return([]domain.Shareholder{holder(50, true), holder(30, true)}, nil).Once()

	sh, err := suite.service.CreateShareholder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(sh)
	suite.ErrorIs(err, apperrors.ErrCapacityExceeded)

	var capErr *apperrors.CapacityError
	suite.Require().ErrorAs(err, &capErr)
	suite.Equal(80, capErr.CurrentTotal)
	suite.Equal(20, capErr.MaxAllowed)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveShareholder", mock.Anything, mock.Anything)
}

func (suite *ShareholderServiceTestSuite) TestCreateShareholder_InactiveUnitsDoNotCount() {
	ctx := context.Background()
	req := dto.CreateShareholderRequest{
		LastName:       "Dubois",
		FirstName:      "Pierre",
		OwnershipUnits: 50,
	}

	// The inactive holder's 60 units no longer consume capacity.
	suite.mockRepo.On("FindShareholders", ctx).Return([]domain.Shareholder{holder(60, false), holder(50, true)}, nil).Once()
	suite.mockRepo.On("SaveShareholder", ctx, mock.AnythingOfType("domain.Shareholder")).Return(nil).Once()

	sh, err := suite.service.CreateShareholder(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sh)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShareholderServiceTestSuite) TestUpdateShareholder_OwnUnitsExcluded() {
	ctx := context.Background()
	existing := holder(40, true)
	active := true

	req := dto.UpdateShareholderRequest{
		LastName:       existing.LastName,
		FirstName:      existing.FirstName,
		OwnershipUnits: 60,
		Active:         &active,
	}

	// 40 (self, excluded) + 40 (other) leaves room for the new 60.
	other := holder(40, true)
	suite.mockRepo.On("FindShareholderByID", ctx, existing.ShareholderID).Return(&existing, nil).Once()
	suite.mockRepo.On("FindShareholders", ctx).Return([]domain.Shareholder{existing, other}, nil).Once()
	suite.mockRepo.On("UpdateShareholder", ctx, mock.AnythingOfType("domain.Shareholder")).Return(nil).Once()

	sh, err := suite.service.UpdateShareholder(ctx, existing.ShareholderID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sh)
	suite.Equal(60, sh.OwnershipUnits)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShareholderServiceTestSuite) TestUpdateShareholder_DeactivationSkipsCapacityCheck() {
	ctx := context.Background()
	existing := holder(40, true)
	inactive := false

	req := dto.UpdateShareholderRequest{
		LastName:       existing.LastName,
		FirstName:      existing.FirstName,
		OwnershipUnits: existing.OwnershipUnits,
		Active:         &inactive,
	}

	suite.mockRepo.On("FindShareholderByID", ctx, existing.ShareholderID).Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateShareholder", ctx, mock.AnythingOfType("domain.Shareholder")).Return(nil).Once()

	sh, err := suite.service.UpdateShareholder(ctx, existing.ShareholderID, req)

	suite.Require().NoError(err)
	suite.False(sh.Active)

	// No roster load for an inactive record.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindShareholders", mock.Anything)
}

func (suite *ShareholderServiceTestSuite) TestListShareholders_SortedAndAllocated() {
	ctx := context.Background()
	small := holder(10, true)
	big := holder(60, true)
	gone := holder(20, false)

	suite.mockRepo.On("FindShareholders", ctx).Return([]domain.Shareholder{small, gone, big}, nil).Once()

	roster, allocated, err := suite.service.ListShareholders(ctx, true)

	suite.Require().NoError(err)
	suite.Require().Len(roster, 2)
	suite.Equal(big.ShareholderID, roster[0].ShareholderID)
	suite.Equal(small.ShareholderID, roster[1].ShareholderID)
	suite.Equal(70, allocated)
}

func (suite *ShareholderServiceTestSuite) TestRemoveShareholder_NotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockRepo.On("FindShareholderByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RemoveShareholder(ctx, unknownID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "RemoveShareholder", mock.Anything, mock.Anything)
}

func (suite *ShareholderServiceTestSuite) TestGetShareholderByID_RepoError() {
	ctx := context.Background()
	testID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindShareholderByID", ctx, testID).Return(nil, expectedErr).Once()

	sh, err := suite.service.GetShareholderByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(sh)
	suite.ErrorIs(err, expectedErr)
}

func TestShareholderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShareholderServiceTestSuite))
}
