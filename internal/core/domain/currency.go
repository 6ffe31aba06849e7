package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency codes referenced across the application. Any ISO-4217 code is
// accepted on input; these are the ones the built-in rate table knows.
const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	INR = "INR"
	AUD = "AUD"
	CAD = "CAD"
	JPY = "JPY"
	SGD = "SGD"
	AED = "AED"
	CHF = "CHF"
)

// MoneyAmount is an amount denominated in a single currency.
type MoneyAmount struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// ExchangeRate stores how many units of ToCurrencyCode one unit of FromCurrencyCode buys.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
