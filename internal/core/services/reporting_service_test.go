package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/core/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	mockEmpRepo *MockEmployeeRepository
	mockShRepo  *MockShareholderRepository
	service     portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockEmpRepo = new(MockEmployeeRepository)
	suite.mockShRepo = new(MockShareholderRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockEmpRepo, suite.mockShRepo)
}

func (suite *ReportingServiceTestSuite) TestDashboard_MonthWindowAndRoster() {
	ctx := context.Background()
	today := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)

	inMonth := ledgerTxn(time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), domain.Inflow, 5000, "Ventes")
	lastMonth := ledgerTxn(time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC), domain.Inflow, 2000, "Ventes")
	spend := ledgerTxn(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), domain.Outflow, 1000, "Loyer")

	active := domain.Employee{
		EmployeeID:    uuid.NewString(),
		LastName:      "Martin",
		FirstName:     "Claire",
		MonthlySalary: decimal.NewFromInt(3000),
		HireDate:      today,
		Active:        true,
	}
	gone := active
	gone.EmployeeID = uuid.NewString()
	gone.Active = false

	suite.mockTxnRepo.On("FindTransactions", ctx).Return([]domain.Transaction{inMonth, lastMonth, spend}, nil).Once()
	suite.mockEmpRepo.On("FindEmployees", ctx).Return([]domain.Employee{active, gone}, nil).Once()
	suite.mockShRepo.On("FindShareholders", ctx).Return([]domain.Shareholder{
		{ShareholderID: uuid.NewString(), LastName: "Dubois", FirstName: "Pierre", OwnershipUnits: 70, Active: true},
		{ShareholderID: uuid.NewString(), LastName: "Morel", FirstName: "Anne", OwnershipUnits: 30, Active: false},
	}, nil).Once()

	summary, err := suite.service.Dashboard(ctx, today)

	suite.Require().NoError(err)
	suite.True(summary.Totals.TotalInflow.Equal(decimal.NewFromInt(7000)))
	suite.True(summary.MonthInflow.Equal(decimal.NewFromInt(5000)))
	suite.True(summary.MonthOutflow.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.MonthNet.Equal(decimal.NewFromInt(4000)))
	suite.Equal(1, summary.ActiveEmployees)
	suite.True(summary.MonthlySalaryTotal.Equal(decimal.NewFromInt(3000)))
	suite.Equal(1, summary.ActiveShareholders)
	suite.Equal(70, summary.AllocatedUnits)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_CategoryBreakdown() {
	ctx := context.Background()

	sales1 := ledgerTxn(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), domain.Inflow, 3000, "Ventes")
	sales2 := ledgerTxn(time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC), domain.Inflow, 1000, "Ventes")
	subsidy := ledgerTxn(time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC), domain.Inflow, 500, "Subventions")
	rent := ledgerTxn(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), domain.Outflow, 1200, "Loyer")

	suite.mockTxnRepo.On("FindTransactions", ctx).Return([]domain.Transaction{sales1, sales2, subsidy, rent}, nil).Once()
	suite.mockEmpRepo.On("FindEmployees", ctx).Return([]domain.Employee{}, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, 2025, time.June)

	suite.Require().NoError(err)
	suite.Require().Len(report.InflowByCategory, 2)
	// Largest totals first.
	suite.Equal("Ventes", report.InflowByCategory[0].Category)
	suite.True(report.InflowByCategory[0].Total.Equal(decimal.NewFromInt(4000)))
	suite.Equal(2, report.InflowByCategory[0].Count)
	suite.Equal("88.9", report.InflowByCategory[0].PercentOfTotal)
	suite.Equal("Subventions", report.InflowByCategory[1].Category)
	suite.Equal("11.1", report.InflowByCategory[1].PercentOfTotal)

	suite.Require().Len(report.OutflowByCategory, 1)
	suite.Equal("Loyer", report.OutflowByCategory[0].Category)
	suite.Equal("100", report.OutflowByCategory[0].PercentOfTotal)

	// One flow entry per distinct day.
	suite.Len(report.DailyFlows, 4)
	suite.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), report.DailyFlows[0].Date)
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_AverageAndMonthlyNet() {
	ctx := context.Background()

	may := ledgerTxn(time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC), domain.Inflow, 1000, "")
	june := ledgerTxn(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), domain.Inflow, 2000, "")
	spend := ledgerTxn(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), domain.Outflow, 600, "")

	suite.mockTxnRepo.On("FindTransactions", ctx).Return([]domain.Transaction{june, may, spend}, nil).Once()

	summary, err := suite.service.PeriodSummary(ctx, dto.PeriodSummaryParams{
		Start: "2025-05-01",
		End:   "2025-06-30",
	})

	suite.Require().NoError(err)
	suite.Equal(3, summary.TransactionCount)
	suite.True(summary.AverageAmount.Equal(decimal.NewFromInt(1200)))

	suite.Require().Len(summary.MonthlyNet, 2)
	suite.Equal(time.May, summary.MonthlyNet[0].Month)
	suite.Equal(time.June, summary.MonthlyNet[1].Month)
	suite.True(summary.MonthlyNet[1].Net.Equal(decimal.NewFromInt(1400)))

	// Largest amounts first.
	suite.Require().NotEmpty(summary.TopTransactions)
	suite.Equal(june.TransactionID, summary.TopTransactions[0].TransactionID)
}

func (suite *ReportingServiceTestSuite) TestPeriodSummary_EndBeforeStart() {
	ctx := context.Background()

	summary, err := suite.service.PeriodSummary(ctx, dto.PeriodSummaryParams{
		Start: "2025-06-30",
		End:   "2025-06-01",
	})

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
