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
	"github.com/habilafinance/finledger_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) seededUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     "admin",
		Name:         "Administrateur",
		PasswordHash: hash,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	user := suite.seededUser("secret123")

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	authed, err := suite.service.Authenticate(ctx, "admin", "secret123")

	suite.Require().NoError(err)
	suite.Require().NotNil(authed)
	suite.Equal(user.UserID, authed.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	user := suite.seededUser("secret123")

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	authed, err := suite.service.Authenticate(ctx, "admin", "wrong")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserMapsToUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authed, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(authed)
	// Unknown usernames must be indistinguishable from bad passwords.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_SeedsWhenMissing() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "admin" &&
			user.Name == "Administrateur" &&
			utils.CheckPasswordHash("secret123", user.PasswordHash)
	})).Return(nil).Once()

	err := suite.service.EnsureAdminUser(ctx, "admin", "secret123", "Administrateur")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_NoopWhenPresent() {
	ctx := context.Background()
	user := suite.seededUser("secret123")

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	err := suite.service.EnsureAdminUser(ctx, "admin", "secret123", "Administrateur")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_LookupError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(nil, expectedErr).Once()

	err := suite.service.EnsureAdminUser(ctx, "admin", "secret123", "Administrateur")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
