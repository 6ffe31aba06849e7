package currency

import (
	"fmt"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Policy decides what Aggregate does with currencies missing from the rate table.
type Policy int

const (
	// SkipUnknown leaves unknown currencies out of the normalised totals.
	SkipUnknown Policy = iota
	// FailOnUnknown makes Aggregate return ErrUnknownCurrency.
	FailOnUnknown
	// UnknownAsUSD treats unknown amounts as if they were already USD.
	UnknownAsUSD
)

// ParsePolicy maps the configuration values "skip", "fail" and "usd" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return SkipUnknown, nil
	case "fail":
		return FailOnUnknown, nil
	case "usd":
		return UnknownAsUSD, nil
	}
	return SkipUnknown, fmt.Errorf("unknown currency policy %q", s)
}

func (p Policy) String() string {
	switch p {
	case FailOnUnknown:
		return "fail"
	case UnknownAsUSD:
		return "usd"
	default:
		return "skip"
	}
}

// Aggregate sums items per currency in first-seen order and converts each
// subtotal to USD and INR. Every currency missing from the table is listed in
// Unconverted regardless of policy.
func (t *RateTable) Aggregate(items []domain.MoneyAmount, policy Policy) (domain.AggregateResult, error) {
	result := domain.AggregateResult{
		Totals:         []domain.CurrencyTotal{},
		ConvertedToUSD: decimal.Zero,
		ConvertedToINR: decimal.Zero,
	}

	index := make(map[string]int)
	for _, item := range items {
		code := Normalize(item.Currency)
		i, seen := index[code]
		if !seen {
			i = len(result.Totals)
			index[code] = i
			result.Totals = append(result.Totals, domain.CurrencyTotal{Currency: code, Amount: decimal.Zero})
		}
		result.Totals[i].Amount = result.Totals[i].Amount.Add(item.Amount)
	}

	inrRate, _ := t.Lookup(domain.INR)
	for _, total := range result.Totals {
		usd, err := t.ConvertToUSD(total.Amount, total.Currency)
		if err != nil {
			result.Unconverted = append(result.Unconverted, total.Currency)
			switch policy {
			case FailOnUnknown:
				return domain.AggregateResult{}, err
			case UnknownAsUSD:
				usd = total.Amount
			default:
				continue
			}
		}
		result.ConvertedToUSD = result.ConvertedToUSD.Add(usd)
		result.ConvertedToINR = result.ConvertedToINR.Add(usd.Mul(inrRate))
	}

	return result, nil
}
