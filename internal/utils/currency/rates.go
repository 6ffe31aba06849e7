// Package currency converts amounts between currencies using a fixed rate table
// and aggregates multi-currency amounts.
package currency

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrUnknownCurrency is returned when a currency has no entry in the rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// defaultRates are units of each currency per one USD.
var defaultRates = map[string]string{
	domain.USD: "1",
	domain.EUR: "0.85",
	domain.GBP: "0.73",
	domain.INR: "83",
	domain.AUD: "1.52",
	domain.CAD: "1.36",
	domain.JPY: "149.5",
	domain.SGD: "1.34",
	domain.AED: "3.67",
	domain.CHF: "0.88",
}

// RateTable maps a currency code to the number of units that buy one USD.
// A RateTable is immutable once built and safe for concurrent use.
type RateTable struct {
	rates map[string]decimal.Decimal
}

// DefaultRates returns a copy of the built-in rate table values.
func DefaultRates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(defaultRates))
	for code, v := range defaultRates {
		out[code] = decimal.RequireFromString(v)
	}
	return out
}

// NewRateTable builds a table from the given rates. Codes are upper-cased,
// USD is always pinned to 1 and non-positive rates are rejected.
func NewRateTable(rates map[string]decimal.Decimal) (*RateTable, error) {
	t := &RateTable{rates: make(map[string]decimal.Decimal, len(rates)+1)}
	for code, rate := range rates {
		code = Normalize(code)
		if code == "" {
			return nil, fmt.Errorf("empty currency code in rate table")
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("rate for %s must be positive, got %s", code, rate.String())
		}
		t.rates[code] = rate
	}
	t.rates[domain.USD] = decimal.NewFromInt(1)
	return t, nil
}

// Default returns the built-in rate table.
func Default() *RateTable {
	t, _ := NewRateTable(DefaultRates())
	return t
}

// WithOverrides returns a new table holding t's rates replaced by overrides.
func (t *RateTable) WithOverrides(overrides map[string]decimal.Decimal) (*RateTable, error) {
	merged := make(map[string]decimal.Decimal, len(t.rates)+len(overrides))
	for code, rate := range t.rates {
		merged[code] = rate
	}
	for code, rate := range overrides {
		merged[Normalize(code)] = rate
	}
	return NewRateTable(merged)
}

// Lookup returns the units of code per USD.
func (t *RateTable) Lookup(code string) (decimal.Decimal, bool) {
	rate, ok := t.rates[Normalize(code)]
	return rate, ok
}

// Codes lists the known currency codes in sorted order.
func (t *RateTable) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ConvertToUSD converts amount from the given currency into USD. No rounding is applied.
func (t *RateTable) ConvertToUSD(amount decimal.Decimal, from string) (decimal.Decimal, error) {
	from = Normalize(from)
	if from == domain.USD {
		return amount, nil
	}
	rate, ok := t.rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	return amount.Div(rate), nil
}

// ConvertToINR converts amount into INR by way of USD.
func (t *RateTable) ConvertToINR(amount decimal.Decimal, from string) (decimal.Decimal, error) {
	usd, err := t.ConvertToUSD(amount, from)
	if err != nil {
		return decimal.Zero, err
	}
	inr, ok := t.rates[domain.INR]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, domain.INR)
	}
	return usd.Mul(inr), nil
}

// Normalize trims and upper-cases a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
