package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/habilafinance/finledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalaryCategory labels the transactions created by salary payments.
const SalaryCategory = "Salaire"

// salaryDescriptionPrefix is the historical correlation key. Rows persisted
// before salary transactions carried an employee reference are matched by
// this substring against the employee's last name.
const salaryDescriptionPrefix = "Salaire - "

// IsSalaryPaymentFor reports whether a transaction is a salary payment for
// the given employee. The explicit employee link wins; the description
// substring match only applies to legacy rows without one.
func IsSalaryPaymentFor(txn domain.Transaction, emp domain.Employee) bool {
	if txn.Kind != domain.Outflow {
		return false
	}
	if txn.EmployeeID != "" {
		return txn.EmployeeID == emp.EmployeeID
	}
	return strings.Contains(txn.Description, salaryDescriptionPrefix+emp.LastName)
}

// PaidInMonth sums the salary payments made to an employee whose effective
// date falls in the target calendar month.
func PaidInMonth(txns []domain.Transaction, emp domain.Employee, year int, month time.Month) decimal.Decimal {
	paid := decimal.Zero
	for _, txn := range txns {
		if txn.Date.Year() != year || txn.Date.Month() != month {
			continue
		}
		if IsSalaryPaymentFor(txn, emp) {
			paid = paid.Add(txn.Amount)
		}
	}
	return paid
}

// Reconcile computes one employee's paid-versus-owed state for a month.
// paid + remaining equals the monthly salary while paid has not overshot it;
// remaining never goes negative.
func Reconcile(emp domain.Employee, txns []domain.Transaction, year int, month time.Month) domain.SalaryLine {
	paid := PaidInMonth(txns, emp, year, month)
	remaining := emp.MonthlySalary.Sub(paid)
	status := domain.SalaryPending
	if remaining.LessThanOrEqual(decimal.Zero) {
		remaining = decimal.Zero
		status = domain.SalaryPaid
	}
	return domain.SalaryLine{
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName(),
		Position:   emp.Position,
		SalaryDue:  emp.MonthlySalary,
		Paid:       paid,
		Remaining:  remaining,
		Status:     status,
	}
}

// Statement reconciles every active employee for a month. Inactive employees
// are excluded entirely.
func Statement(employees []domain.Employee, txns []domain.Transaction, year int, month time.Month) domain.SalaryStatement {
	stmt := domain.SalaryStatement{
		Year:           year,
		Month:          month,
		Lines:          []domain.SalaryLine{},
		TotalDue:       decimal.Zero,
		TotalPaid:      decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	for _, emp := range employees {
		if !emp.Active {
			continue
		}
		line := Reconcile(emp, txns, year, month)
		stmt.Lines = append(stmt.Lines, line)
		stmt.TotalDue = stmt.TotalDue.Add(line.SalaryDue)
		stmt.TotalPaid = stmt.TotalPaid.Add(line.Paid)
		stmt.TotalRemaining = stmt.TotalRemaining.Add(line.Remaining)
	}
	return stmt
}

// PaymentDescription builds the canonical salary payment description,
// optionally suffixed with a free-text note.
func PaymentDescription(emp domain.Employee, year int, month time.Month, note string) string {
	desc := fmt.Sprintf("%s%s (%02d/%d)", salaryDescriptionPrefix, emp.FullName(), int(month), year)
	if note = strings.TrimSpace(note); note != "" {
		desc += " - " + note
	}
	return desc
}
