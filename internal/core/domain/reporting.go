package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTotals summarizes a transaction collection.
type LedgerTotals struct {
	TotalInflow  decimal.Decimal `json:"totalInflow"`
	TotalOutflow decimal.Decimal `json:"totalOutflow"`
	Balance      decimal.Decimal `json:"balance"` // TotalInflow - TotalOutflow
}

// RunningBalanceEntry is one step of the cumulative balance sequence, in
// date-ascending order.
type RunningBalanceEntry struct {
	Transaction Transaction     `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"` // Cumulative balance after this transaction
}

// GroupTotal aggregates the transactions that fell into one group key.
type GroupTotal struct {
	Sum   decimal.Decimal `json:"sum"`
	Count int             `json:"count"`
}

// GroupDimension selects how GroupBy buckets transactions.
type GroupDimension string

const (
	GroupByKind     GroupDimension = "kind"
	GroupByCategory GroupDimension = "category"
	GroupByMonth    GroupDimension = "month"
	GroupByWeek     GroupDimension = "week"
)

// SalaryStatus reports whether a month's salary obligation is settled.
type SalaryStatus string

const (
	SalaryPaid    SalaryStatus = "PAID"
	SalaryPending SalaryStatus = "PENDING"
)

// SalaryLine is the reconciliation result for one employee and one month.
type SalaryLine struct {
	EmployeeID string          `json:"employeeID"`
	FullName   string          `json:"fullName"`
	Position   string          `json:"position"`
	SalaryDue  decimal.Decimal `json:"salaryDue"`
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"` // max(0, SalaryDue - Paid)
	Status     SalaryStatus    `json:"status"`
}

// SalaryStatement is the payroll state of every active employee for a month.
type SalaryStatement struct {
	Year           int             `json:"year"`
	Month          time.Month      `json:"month"`
	Lines          []SalaryLine    `json:"lines"`
	TotalDue       decimal.Decimal `json:"totalDue"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}

// DistributionShare is one shareholder's slice in a distribution plan.
type DistributionShare struct {
	ShareholderID  string          `json:"shareholderID"`
	FullName       string          `json:"fullName"`
	OwnershipUnits int             `json:"ownershipUnits"`
	Amount         decimal.Decimal `json:"amount"`
}

// DistributionPlan is the computed profit distribution for a period, before
// any transaction is written.
type DistributionPlan struct {
	PeriodStart         time.Time           `json:"periodStart"`
	PeriodEnd           time.Time           `json:"periodEnd"`
	TotalInflow         decimal.Decimal     `json:"totalInflow"`
	TotalOutflow        decimal.Decimal     `json:"totalOutflow"`
	GrossProfit         decimal.Decimal     `json:"grossProfit"`
	TheoreticalSalaries decimal.Decimal     `json:"theoreticalSalaries"`
	DistributableProfit decimal.Decimal     `json:"distributableProfit"`
	Shares              []DistributionShare `json:"shares"`
}

// DistributionResult reports how many of the planned distribution
// transactions were persisted. Writes are best-effort with no rollback, so
// Recorded may be lower than Requested and the caller must reconcile.
type DistributionResult struct {
	Requested int `json:"requested"`
	Recorded  int `json:"recorded"`
}

// DashboardSummary is the landing-page snapshot: all-time totals plus the
// current calendar month's movement and headline roster figures.
type DashboardSummary struct {
	Totals             LedgerTotals    `json:"totals"`
	MonthInflow        decimal.Decimal `json:"monthInflow"`
	MonthOutflow       decimal.Decimal `json:"monthOutflow"`
	MonthNet           decimal.Decimal `json:"monthNet"`
	ActiveEmployees    int             `json:"activeEmployees"`
	MonthlySalaryTotal decimal.Decimal `json:"monthlySalaryTotal"`
	ActiveShareholders int             `json:"activeShareholders"`
	AllocatedUnits     int             `json:"allocatedUnits"`
}

// CategoryLine is a per-category breakdown row within one flow direction.
// PercentOfTotal is the category's share of the direction total, rendered
// with one decimal place for display.
type CategoryLine struct {
	Category       string          `json:"category"`
	Total          decimal.Decimal `json:"total"`
	Count          int             `json:"count"`
	PercentOfTotal string          `json:"percentOfTotal"`
}

// DailyFlow is one day's inflow/outflow pair, used for evolution series.
type DailyFlow struct {
	Date    time.Time       `json:"date"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

// MonthlyReport is the detailed report for one calendar month.
type MonthlyReport struct {
	Year              int             `json:"year"`
	Month             time.Month      `json:"month"`
	Totals            LedgerTotals    `json:"totals"`
	InflowByCategory  []CategoryLine  `json:"inflowByCategory"`
	OutflowByCategory []CategoryLine  `json:"outflowByCategory"`
	Salaries          SalaryStatement `json:"salaries"`
	DailyFlows        []DailyFlow     `json:"dailyFlows"`
}

// PeriodSummary aggregates an arbitrary date range for the analytics view.
type PeriodSummary struct {
	Start            time.Time       `json:"start"`
	End              time.Time       `json:"end"`
	Totals           LedgerTotals    `json:"totals"`
	TransactionCount int             `json:"transactionCount"`
	AverageAmount    decimal.Decimal `json:"averageAmount"`
	MonthlyNet       []MonthlyNet    `json:"monthlyNet"`
	TopTransactions  []Transaction   `json:"topTransactions"`
}

// MonthlyNet is one month's inflow, outflow and net result.
type MonthlyNet struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}
