package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/core/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		LastName:      "Martin",
		FirstName:     "Claire",
		Position:      "Comptable",
		MonthlySalary: decimal.NewFromInt(3000),
		HireDate:      "2023-03-01",
	}

	suite.mockRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	emp, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(emp)
	suite.NotEmpty(emp.EmployeeID)
	suite.Equal("Claire Martin", emp.FullName())
	suite.Equal(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), emp.HireDate)
	suite.True(emp.Active)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NonPositiveSalary() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		LastName:      "Martin",
		FirstName:     "Claire",
		Position:      "Comptable",
		MonthlySalary: decimal.NewFromInt(-100),
		HireDate:      "2023-03-01",
	}

	emp, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(emp)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_ActiveOnlyAndSorted() {
	ctx := context.Background()
	hired := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

	bernard := domain.Employee{EmployeeID: uuid.NewString(), LastName: "Bernard", FirstName: "Luc", Position: "Dev", MonthlySalary: decimal.NewFromInt(3200), HireDate: hired, Active: true}
	albert := domain.Employee{EmployeeID: uuid.NewString(), LastName: "Albert", FirstName: "Jean", Position: "Dev", MonthlySalary: decimal.NewFromInt(3100), HireDate: hired, Active: true}
	gone := domain.Employee{EmployeeID: uuid.NewString(), LastName: "Zidane", FirstName: "Karim", Position: "Dev", MonthlySalary: decimal.NewFromInt(2900), HireDate: hired, Active: false}

	suite.mockRepo.On("FindEmployees", ctx).Return([]domain.Employee{bernard, gone, albert}, nil).Once()

	employees, err := suite.service.ListEmployees(ctx, true)

	suite.Require().NoError(err)
	suite.Require().Len(employees, 2)
	suite.Equal("Albert", employees[0].LastName)
	suite.Equal("Bernard", employees[1].LastName)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_CanDeactivate() {
	ctx := context.Background()
	existing := domain.Employee{
		EmployeeID:    uuid.NewString(),
		LastName:      "Martin",
		FirstName:     "Claire",
		Position:      "Comptable",
		MonthlySalary: decimal.NewFromInt(3000),
		HireDate:      time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
	inactive := false

	req := dto.UpdateEmployeeRequest{
		LastName:      existing.LastName,
		FirstName:     existing.FirstName,
		Position:      existing.Position,
		MonthlySalary: existing.MonthlySalary,
		HireDate:      "2023-03-01",
		Active:        &inactive,
	}

	suite.mockRepo.On("FindEmployeeByID", ctx, existing.EmployeeID).Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(emp domain.Employee) bool {
		return !emp.Active
	})).Return(nil).Once()

	emp, err := suite.service.UpdateEmployee(ctx, existing.EmployeeID, req)

	suite.Require().NoError(err)
	suite.False(emp.Active)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestRemoveEmployee_NotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockRepo.On("FindEmployeeByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RemoveEmployee(ctx, unknownID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "RemoveEmployee", mock.Anything, mock.Anything)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
