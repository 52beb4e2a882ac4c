package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	"github.com/habilafinance/finledger_backend/internal/core/accounting"
	"github.com/habilafinance/finledger_backend/internal/core/domain"
	portsrepo "github.com/habilafinance/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
	"github.com/habilafinance/finledger_backend/internal/utils"
)

const defaultTopTransactions = 5

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	txnRepo         portsrepo.TransactionRepositoryFacade
	employeeRepo    portsrepo.EmployeeRepositoryFacade
	shareholderRepo portsrepo.ShareholderRepositoryFacade
}

// NewReportingService creates a new reporting service
func NewReportingService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	shareholderRepo portsrepo.ShareholderRepositoryFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo:         txnRepo,
		employeeRepo:    employeeRepo,
		shareholderRepo: shareholderRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Dashboard(ctx context.Context, today time.Time) (*domain.DashboardSummary, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for dashboard")
		return nil, fmt.Errorf("failed to load transactions for dashboard: %w", err)
	}
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for dashboard")
		return nil, fmt.Errorf("failed to load employees for dashboard: %w", err)
	}
	shareholders, err := s.shareholderRepo.FindShareholders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shareholders for dashboard")
		return nil, fmt.Errorf("failed to load shareholders for dashboard: %w", err)
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	monthTotals := accounting.Totals(accounting.FilterPeriod(txns, &monthStart, &monthEnd))

	summary := domain.DashboardSummary{
		Totals:             accounting.Totals(txns),
		MonthInflow:        monthTotals.TotalInflow,
		MonthOutflow:       monthTotals.TotalOutflow,
		MonthNet:           monthTotals.Balance,
		MonthlySalaryTotal: decimal.Zero,
	}

	for _, emp := range employees {
		if emp.Active {
			summary.ActiveEmployees++
			summary.MonthlySalaryTotal = summary.MonthlySalaryTotal.Add(emp.MonthlySalary)
		}
	}
	for _, sh := range shareholders {
		if sh.Active {
			summary.ActiveShareholders++
		}
	}
	summary.AllocatedUnits = accounting.AllocatedUnits(shareholders, "")

	s.LogDebug(ctx, "Dashboard computed",
		slog.Int("transactions", len(txns)),
		slog.Int("active_employees", summary.ActiveEmployees))
	return &summary, nil
}

func (s *reportingService) MonthlyReport(ctx context.Context, year int, month time.Month) (*domain.MonthlyReport, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for monthly report")
		return nil, fmt.Errorf("failed to load transactions for monthly report: %w", err)
	}
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for monthly report")
		return nil, fmt.Errorf("failed to load employees for monthly report: %w", err)
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	monthTxns := accounting.FilterPeriod(txns, &monthStart, &monthEnd)

	report := domain.MonthlyReport{
		Year:              year,
		Month:             month,
		Totals:            accounting.Totals(monthTxns),
		InflowByCategory:  categoryBreakdown(monthTxns, domain.Inflow),
		OutflowByCategory: categoryBreakdown(monthTxns, domain.Outflow),
		Salaries:          accounting.Statement(employees, txns, year, month),
		DailyFlows:        dailyFlows(monthTxns),
	}

	return &report, nil
}

func (s *reportingService) PeriodSummary(ctx context.Context, params dto.PeriodSummaryParams) (*domain.PeriodSummary, error) {
	start, err := dto.ParseDate(params.Start)
	if err != nil {
		return nil, apperrors.NewValidationError("period", []apperrors.FieldViolation{
			{Field: "start", Reason: "must be a valid date in YYYY-MM-DD format"},
		})
	}
	end, err := dto.ParseDate(params.End)
	if err != nil {
		return nil, apperrors.NewValidationError("period", []apperrors.FieldViolation{
			{Field: "end", Reason: "must be a valid date in YYYY-MM-DD format"},
		})
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("period", []apperrors.FieldViolation{
			{Field: "end", Reason: "must not be before start"},
		})
	}

	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for period summary")
		return nil, fmt.Errorf("failed to load transactions for period summary: %w", err)
	}

	periodTxns := accounting.FilterPeriod(txns, &start, &end)

	topN := params.TopN
	if topN == 0 {
		topN = defaultTopTransactions
	}

	summary := domain.PeriodSummary{
		Start:            accounting.DateOnly(start),
		End:              accounting.DateOnly(end),
		Totals:           accounting.Totals(periodTxns),
		TransactionCount: len(periodTxns),
		AverageAmount:    decimal.Zero,
		MonthlyNet:       monthlyNet(periodTxns),
		TopTransactions:  accounting.TopN(periodTxns, topN),
	}

	if len(periodTxns) > 0 {
		var sum decimal.Decimal
		for _, txn := range periodTxns {
			sum = sum.Add(txn.Amount)
		}
		summary.AverageAmount = sum.Div(decimal.NewFromInt(int64(len(periodTxns)))).Round(2)
	}

	return &summary, nil
}

// categoryBreakdown sums one flow direction per category, largest totals
// first. Uncategorized rows are reported under an empty category name.
func categoryBreakdown(txns []domain.Transaction, kind domain.FlowType) []domain.CategoryLine {
	sums := make(map[string]*domain.CategoryLine)
	for _, txn := range txns {
		if txn.Kind != kind {
			continue
		}
		line, ok := sums[txn.Category]
		if !ok {
			line = &domain.CategoryLine{Category: txn.Category}
			sums[txn.Category] = line
		}
		line.Total = line.Total.Add(txn.Amount)
		line.Count++
	}

	var directionTotal decimal.Decimal
	for _, line := range sums {
		directionTotal = directionTotal.Add(line.Total)
	}

	lines := make([]domain.CategoryLine, 0, len(sums))
	for _, line := range sums {
		if directionTotal.IsPositive() {
			percent := line.Total.Div(directionTotal).Mul(decimal.NewFromInt(100))
			line.PercentOfTotal = utils.FormatWithPrecision(percent, 1)
		}
		lines = append(lines, *line)
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Total.Equal(lines[j].Total) {
			return lines[i].Total.GreaterThan(lines[j].Total)
		}
		return lines[i].Category < lines[j].Category
	})
	return lines
}

// dailyFlows pairs each day's inflow and outflow, in date order.
func dailyFlows(txns []domain.Transaction) []domain.DailyFlow {
	byDay := make(map[time.Time]*domain.DailyFlow)
	for _, txn := range txns {
		day := accounting.DateOnly(txn.Date)
		flow, ok := byDay[day]
		if !ok {
			flow = &domain.DailyFlow{Date: day}
			byDay[day] = flow
		}
		if txn.Kind == domain.Inflow {
			flow.Inflow = flow.Inflow.Add(txn.Amount)
		} else {
			flow.Outflow = flow.Outflow.Add(txn.Amount)
		}
	}

	flows := make([]domain.DailyFlow, 0, len(byDay))
	for _, flow := range byDay {
		flows = append(flows, *flow)
	}
	sort.SliceStable(flows, func(i, j int) bool {
		return flows[i].Date.Before(flows[j].Date)
	})
	return flows
}

// monthlyNet aggregates inflow, outflow and net per calendar month, in
// chronological order.
func monthlyNet(txns []domain.Transaction) []domain.MonthlyNet {
	type monthKey struct {
		year  int
		month time.Month
	}
	byMonth := make(map[monthKey]*domain.MonthlyNet)
	for _, txn := range txns {
		key := monthKey{year: txn.Date.Year(), month: txn.Date.Month()}
		net, ok := byMonth[key]
		if !ok {
			net = &domain.MonthlyNet{Year: key.year, Month: key.month}
			byMonth[key] = net
		}
		if txn.Kind == domain.Inflow {
			net.Inflow = net.Inflow.Add(txn.Amount)
		} else {
			net.Outflow = net.Outflow.Add(txn.Amount)
		}
	}

	nets := make([]domain.MonthlyNet, 0, len(byMonth))
	for _, net := range byMonth {
		net.Net = net.Inflow.Sub(net.Outflow)
		nets = append(nets, *net)
	}
	sort.SliceStable(nets, func(i, j int) bool {
		if nets[i].Year != nets[j].Year {
			return nets[i].Year < nets[j].Year
		}
		return nets[i].Month < nets[j].Month
	})
	return nets
}
