// Package depreciation computes asset depreciation for straight-line,
// double-declining-balance and sum-of-years-digits schedules.
package depreciation

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidSchedule is returned for schedules that cannot be computed.
var ErrInvalidSchedule = errors.New("invalid depreciation schedule")

var (
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(12)
)

// Validate checks the schedule against the asset it depreciates.
func Validate(asset domain.Asset, s domain.DepreciationSchedule) error {
	if !s.Method.IsValid() {
		return fmt.Errorf("%w: unsupported method %q", ErrInvalidSchedule, s.Method)
	}
	if s.UsefulLifeYears < 1 {
		return fmt.Errorf("%w: useful life must be at least 1 year", ErrInvalidSchedule)
	}
	if s.SalvageValue.IsNegative() {
		return fmt.Errorf("%w: salvage value must not be negative", ErrInvalidSchedule)
	}
	if s.SalvageValue.GreaterThan(asset.PurchaseCost) {
		return fmt.Errorf("%w: salvage value exceeds purchase cost", ErrInvalidSchedule)
	}
	return nil
}

// MonthsElapsed counts whole calendar months from start to asOf, never below zero.
func MonthsElapsed(start, asOf time.Time) int {
	months := (asOf.Year()-start.Year())*12 + int(asOf.Month()) - int(start.Month())
	if asOf.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// Compute returns the annual, monthly and accumulated depreciation of asset as of asOf.
// Declining balance works from the asset's current book value.
func Compute(asset domain.Asset, s domain.DepreciationSchedule, asOf time.Time) (domain.DepreciationResult, error) {
	if err := Validate(asset, s); err != nil {
		return domain.DepreciationResult{}, err
	}

	life := decimal.NewFromInt(int64(s.UsefulLifeYears))
	depreciable := asset.PurchaseCost.Sub(s.SalvageValue)

	var annual decimal.Decimal
	switch s.Method {
	case domain.StraightLine:
		annual = depreciable.Div(life)
	case domain.DecliningBalance:
		annual = asset.CurrentBookValue.Mul(two.Div(life))
	case domain.SumOfYearsDigits:
		annual = depreciable.Mul(decimal.NewFromInt(int64(remainingYearDigit(s, asOf)))).Div(sumOfYears(s.UsefulLifeYears))
	}

	monthly := annual.Div(twelve)
	months := MonthsElapsed(s.StartDate, asOf)
	accumulated := decimal.Min(monthly.Mul(decimal.NewFromInt(int64(months))), depreciable)

	return domain.DepreciationResult{
		AssetID:           asset.AssetID,
		Method:            s.Method,
		DepreciableAmount: depreciable,
		Annual:            annual,
		Monthly:           monthly,
		Accumulated:       accumulated,
		MonthsElapsed:     months,
		DerivedBookValue:  DerivedBookValue(asset, accumulated),
		AsOf:              asOf,
	}, nil
}

// DerivedBookValue is the purchase cost less accumulated depreciation.
func DerivedBookValue(asset domain.Asset, accumulated decimal.Decimal) decimal.Decimal {
	return asset.PurchaseCost.Sub(accumulated)
}

// Schedule builds the year-by-year depreciation table over the useful life.
// Declining balance starts from the purchase cost and stops at the salvage value.
func Schedule(asset domain.Asset, s domain.DepreciationSchedule) ([]domain.DepreciationYear, error) {
	if err := Validate(asset, s); err != nil {
		return nil, err
	}

	life := decimal.NewFromInt(int64(s.UsefulLifeYears))
	depreciable := asset.PurchaseCost.Sub(s.SalvageValue)
	sum := sumOfYears(s.UsefulLifeYears)
	rate := two.Div(life)

	years := make([]domain.DepreciationYear, 0, s.UsefulLifeYears)
	accumulated := decimal.Zero
	book := asset.PurchaseCost
	for i := 1; i <= s.UsefulLifeYears; i++ {
		var expense decimal.Decimal
		switch s.Method {
		case domain.StraightLine:
			expense = depreciable.Div(life)
		case domain.DecliningBalance:
			expense = decimal.Min(book.Mul(rate), book.Sub(s.SalvageValue))
		case domain.SumOfYearsDigits:
			expense = depreciable.Mul(decimal.NewFromInt(int64(s.UsefulLifeYears - i + 1))).Div(sum)
		}
		if i == s.UsefulLifeYears && s.Method != domain.DecliningBalance {
			// absorb rounding so the table lands exactly on salvage
			expense = depreciable.Sub(accumulated)
		}
		expense = expense.Round(2)
		accumulated = accumulated.Add(expense)
		book = asset.PurchaseCost.Sub(accumulated)
		years = append(years, domain.DepreciationYear{
			Year:            s.StartDate.Year() + i - 1,
			Expense:         expense,
			Accumulated:     accumulated,
			EndingBookValue: book,
		})
	}
	return years, nil
}

func sumOfYears(life int) decimal.Decimal {
	return decimal.NewFromInt(int64(life * (life + 1) / 2))
}

// remainingYearDigit is the sum-of-years digit for the year containing asOf.
// Dates before the start year use the first-year digit; the result is floored at 1.
func remainingYearDigit(s domain.DepreciationSchedule, asOf time.Time) int {
	yearsElapsed := asOf.Year() - s.StartDate.Year() + 1
	if yearsElapsed < 1 {
		yearsElapsed = 1
	}
	return max(1, s.UsefulLifeYears-yearsElapsed+1)
}
