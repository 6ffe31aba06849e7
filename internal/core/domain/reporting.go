package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyTotal is the summed amount of one currency.
type CurrencyTotal struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// AggregateResult groups amounts by currency and normalises them.
type AggregateResult struct {
	Totals         []CurrencyTotal `json:"totals"` // first-seen currency order
	ConvertedToUSD decimal.Decimal `json:"convertedToUSD"`
	ConvertedToINR decimal.Decimal `json:"convertedToINR"`
	Unconverted    []string        `json:"unconverted,omitempty"` // currencies missing from the rate table
}

// RenewalForecast summarises renewals falling in a window.
type RenewalForecast struct {
	WindowStart  time.Time       `json:"windowStart"`
	WindowEnd    time.Time       `json:"windowEnd"`
	RenewalCount int             `json:"renewalCount"`
	Amounts      AggregateResult `json:"amounts"`
}

// UpcomingRenewal is a service renewing soon.
type UpcomingRenewal struct {
	ServiceID   string          `json:"serviceID"`
	ServiceName string          `json:"serviceName"`
	Provider    string          `json:"provider"`
	RenewalDate time.Time       `json:"renewalDate"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

// DashboardSummary is the headline statistics of the back office.
type DashboardSummary struct {
	AsOf             time.Time         `json:"asOf"`
	ActiveServices   int               `json:"activeServices"`
	TotalServices    int               `json:"totalServices"`
	ThisMonth        RenewalForecast   `json:"thisMonth"`
	ThisYear         RenewalForecast   `json:"thisYear"`
	PaymentsThisYear AggregateResult   `json:"paymentsThisYear"`
	UpcomingRenewals []UpcomingRenewal `json:"upcomingRenewals"`
}
