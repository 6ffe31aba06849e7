package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies have no minor unit.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
	"CLP": true,
}

// CurrencyPrecision returns the number of decimal places used to display code.
func CurrencyPrecision(code string) int {
	if zeroDecimalCurrencies[strings.ToUpper(code)] {
		return 0
	}
	return 2
}

// FormatMoney formats an amount with the correct precision for its currency
// Example: 12.3456 USD returns "12.35"
// Example: 12.3456 JPY returns "12"
func FormatMoney(amount decimal.Decimal, code string) string {
	return FormatWithPrecision(amount, CurrencyPrecision(code))
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
