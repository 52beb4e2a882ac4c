package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatEUR renders an amount for display in the ledger currency.
// Example: 1234.5 returns "€1,234.50".
func FormatEUR(amount decimal.Decimal) string {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, money.EUR).Display()
}

// FormatWithPrecision formats an amount with the given number of decimal
// places, without a currency symbol.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
