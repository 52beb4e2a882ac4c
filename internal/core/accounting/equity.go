package accounting

import (
	"fmt"
	"time"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DistributionCategory labels the transactions created when a profit
// distribution is recorded.
const DistributionCategory = "Distribution Bénéfices"

// MonthsInPeriod counts the calendar months touched by the inclusive
// [start, end] range. A range inside a single month counts as 1.
func MonthsInPeriod(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months < 0 {
		return 0
	}
	return months
}

// TheoreticalSalaryCost is the salary obligation accrued over a period:
// the sum of active employees' monthly salaries times the month count. It is
// a theoretical figure, independent of what was actually paid.
func TheoreticalSalaryCost(employees []domain.Employee, months int) decimal.Decimal {
	total := decimal.Zero
	for _, emp := range employees {
		if !emp.Active {
			continue
		}
		total = total.Add(emp.MonthlySalary)
	}
	return total.Mul(decimal.NewFromInt(int64(months)))
}

// DistributableProfit is the net cash result minus the theoretical salary
// cost, floored at zero.
func DistributableProfit(totalInflow, totalOutflow, theoreticalSalaryCost decimal.Decimal) decimal.Decimal {
	profit := totalInflow.Sub(totalOutflow).Sub(theoreticalSalaryCost)
	if profit.IsNegative() {
		return decimal.Zero
	}
	return profit
}

// AllocatedUnits sums the ownership units held by active shareholders,
// skipping the one identified by excludeID (pass "" to count everyone).
func AllocatedUnits(shareholders []domain.Shareholder, excludeID string) int {
	total := 0
	for _, sh := range shareholders {
		if !sh.Active || sh.ShareholderID == excludeID {
			continue
		}
		total += sh.OwnershipUnits
	}
	return total
}

// BuildDistributionPlan computes the full distribution for a period: period
// totals over the supplied ledger, the theoretical salary cost, the
// distributable profit and one share per active shareholder. Shares are
// rounded to 2 decimal places for persistence; DistributableProfit carries
// the exact figure.
func BuildDistributionPlan(
	txns []domain.Transaction,
	employees []domain.Employee,
	shareholders []domain.Shareholder,
	start, end time.Time,
) domain.DistributionPlan {
	periodTxns := FilterPeriod(txns, &start, &end)
	totals := Totals(periodTxns)

	months := MonthsInPeriod(start, end)
	salaryCost := TheoreticalSalaryCost(employees, months)
	profit := DistributableProfit(totals.TotalInflow, totals.TotalOutflow, salaryCost)

	plan := domain.DistributionPlan{
		PeriodStart:         DateOnly(start),
		PeriodEnd:           DateOnly(end),
		TotalInflow:         totals.TotalInflow,
		TotalOutflow:        totals.TotalOutflow,
		GrossProfit:         totals.Balance,
		TheoreticalSalaries: salaryCost,
		DistributableProfit: profit,
		Shares:              []domain.DistributionShare{},
	}
	if profit.IsZero() {
		return plan
	}
	for _, sh := range shareholders {
		if !sh.Active {
			continue
		}
		plan.Shares = append(plan.Shares, domain.DistributionShare{
			ShareholderID:  sh.ShareholderID,
			FullName:       sh.FullName(),
			OwnershipUnits: sh.OwnershipUnits,
			Amount:         sh.ShareOf(profit).Round(2),
		})
	}
	return plan
}

// DistributionDescription builds the canonical description for one recorded
// distribution transaction.
func DistributionDescription(fullName string, start, end time.Time) string {
	return fmt.Sprintf("Distribution bénéfices - %s (%s à %s)", fullName, start.Format("01/2006"), end.Format("01/2006"))
}
