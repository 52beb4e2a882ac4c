// Package accounting holds the pure financial computations: ledger
// aggregation, salary reconciliation and equity distribution. Every function
// takes explicit collections and an explicit reference date where one is
// needed, never mutates its input and never touches storage or the clock.
package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateOnly truncates a timestamp to its calendar date in UTC. All ledger
// comparisons are date-only.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Totals sums a transaction collection into inflow, outflow and balance.
// An empty collection yields all zeros.
func Totals(txns []domain.Transaction) domain.LedgerTotals {
	totals := domain.LedgerTotals{
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		Balance:      decimal.Zero,
	}
	for _, txn := range txns {
		if txn.Kind == domain.Inflow {
			totals.TotalInflow = totals.TotalInflow.Add(txn.Amount)
		} else {
			totals.TotalOutflow = totals.TotalOutflow.Add(txn.Amount)
		}
	}
	totals.Balance = totals.TotalInflow.Sub(totals.TotalOutflow)
	return totals
}

// RunningBalance sorts the collection by date ascending (stable, so same-day
// transactions keep their original relative order) and returns the cumulative
// balance after each transaction. The sequence is recomputed from scratch on
// every call; there is no incremental state.
func RunningBalance(txns []domain.Transaction) []domain.RunningBalanceEntry {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DateOnly(sorted[i].Date).Before(DateOnly(sorted[j].Date))
	})

	entries := make([]domain.RunningBalanceEntry, 0, len(sorted))
	balance := decimal.Zero
	for _, txn := range sorted {
		balance = balance.Add(txn.SignedAmount())
		entries = append(entries, domain.RunningBalanceEntry{Transaction: txn, Balance: balance})
	}
	return entries
}

// FilterPeriod keeps the transactions whose date falls inside the inclusive
// [start, end] range. A nil bound leaves that side open.
func FilterPeriod(txns []domain.Transaction, start, end *time.Time) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		d := DateOnly(txn.Date)
		if start != nil && d.Before(DateOnly(*start)) {
			continue
		}
		if end != nil && d.After(DateOnly(*end)) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}

// GroupBy buckets transactions along the requested dimension and returns the
// sum and count per group key. Transactions without a category are excluded
// from category grouping but participate in every other dimension.
func GroupBy(txns []domain.Transaction, dimension domain.GroupDimension) (map[string]domain.GroupTotal, error) {
	groups := make(map[string]domain.GroupTotal)
	for _, txn := range txns {
		var key string
		switch dimension {
		case domain.GroupByKind:
			key = string(txn.Kind)
		case domain.GroupByCategory:
			if txn.Category == "" {
				continue
			}
			key = txn.Category
		case domain.GroupByMonth:
			key = txn.Date.Format("2006-01")
		case domain.GroupByWeek:
			year, week := txn.Date.ISOWeek()
			key = fmt.Sprintf("%d-W%02d", year, week)
		default:
			return nil, fmt.Errorf("unknown grouping dimension %q", dimension)
		}
		total := groups[key]
		total.Sum = total.Sum.Add(txn.Amount)
		total.Count++
		groups[key] = total
	}
	return groups, nil
}

// TopN returns the n transactions with the largest amounts, descending.
// Ties keep the original collection order.
func TopN(txns []domain.Transaction, n int) []domain.Transaction {
	if n <= 0 {
		return []domain.Transaction{}
	}
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
