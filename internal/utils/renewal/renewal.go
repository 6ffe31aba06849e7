// Package renewal projects subscription renewals across a date window.
package renewal

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/shopspring/decimal"
)

// Window is an inclusive date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar day of t lies within the window,
// bounds included. Each bound is read as a calendar day in its own location.
func (w Window) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(Day(w.Start)) && !d.After(Day(w.End))
}

// Day returns the calendar date of t as midnight UTC. Renewal dates are
// calendar dates, so comparisons go through Day rather than instants.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// YearWindow covers January 1 through the last instant of December 31.
func YearWindow(year int, loc *time.Location) Window {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
}

// MonthWindow covers the whole of the given calendar month.
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// Projection is the renewals of one service inside a window.
type Projection struct {
	ServiceID string
	Count     int
	Amount    decimal.Decimal
	Currency  string
}

// Advance moves date forward by one billing cycle. It reports false when the
// cycle cannot advance: an unknown cycle or Custom_days without a positive day count.
func Advance(date time.Time, cycle domain.BillingCycle, customDays *int) (time.Time, bool) {
	switch cycle {
	case domain.Monthly:
		return date.AddDate(0, 1, 0), true
	case domain.Quarterly:
		return date.AddDate(0, 3, 0), true
	case domain.SemiAnnual:
		return date.AddDate(0, 6, 0), true
	case domain.Annual:
		return date.AddDate(1, 0, 0), true
	case domain.CustomDays:
		if customDays == nil || *customDays <= 0 {
			return date, false
		}
		return date.AddDate(0, 0, *customDays), true
	}
	return date, false
}

// maxCatchUp bounds FirstOnOrAfter for very old start dates with short cycles.
const maxCatchUp = 100000

// FirstOnOrAfter advances start by whole billing cycles until it is not before
// day. It reports false when the cycle cannot advance.
func FirstOnOrAfter(start time.Time, cycle domain.BillingCycle, customDays *int, day time.Time) (time.Time, bool) {
	date, target := start, Day(day)
	for i := 0; Day(date).Before(target); i++ {
		next, ok := Advance(date, cycle, customDays)
		if !ok || i >= maxCatchUp {
			return start, false
		}
		date = next
	}
	return date, true
}

// Project counts how many times s renews inside w, starting at its next
// renewal date, and the amount those renewals add up to.
func Project(s domain.Service, w Window) Projection {
	p := Projection{ServiceID: s.ServiceID, Amount: decimal.Zero, Currency: currency.Normalize(s.Currency)}
	if s.NextRenewalDate == nil || !w.Contains(*s.NextRenewalDate) {
		return p
	}
	if _, ok := Advance(*s.NextRenewalDate, s.BillingCycle, s.CustomCycleDays); !ok {
		return p
	}

	end := Day(w.End)
	for date := Day(*s.NextRenewalDate); !date.After(end); {
		p.Count++
		date, _ = Advance(date, s.BillingCycle, s.CustomCycleDays)
	}
	p.Amount = s.RenewalAmount().Mul(decimal.NewFromInt(int64(p.Count)))
	return p
}

// ProjectAll projects every active service and aggregates the renewal amounts per currency.
func ProjectAll(services []domain.Service, w Window, rates *currency.RateTable, policy currency.Policy) (domain.RenewalForecast, []Projection, error) {
	forecast := domain.RenewalForecast{WindowStart: w.Start, WindowEnd: w.End}
	var projections []Projection
	var amounts []domain.MoneyAmount

	for _, s := range services {
		if !s.IsActive() {
			continue
		}
		p := Project(s, w)
		if p.Count == 0 {
			continue
		}
		projections = append(projections, p)
		forecast.RenewalCount += p.Count
		amounts = append(amounts, domain.MoneyAmount{Amount: p.Amount, Currency: p.Currency})
	}

	agg, err := rates.Aggregate(amounts, policy)
	if err != nil {
		return domain.RenewalForecast{}, nil, err
	}
	forecast.Amounts = agg
	return forecast, projections, nil
}
