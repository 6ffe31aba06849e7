package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod selects the formula used to depreciate an asset.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "straight_line"
	DecliningBalance DepreciationMethod = "declining_balance"
	SumOfYearsDigits DepreciationMethod = "sum_of_years_digits"
)

// IsValid reports whether m is a supported method.
func (m DepreciationMethod) IsValid() bool {
	switch m {
	case StraightLine, DecliningBalance, SumOfYearsDigits:
		return true
	}
	return false
}

// DepreciationSchedule describes how an asset loses value over time.
type DepreciationSchedule struct {
	DepreciationID  string             `json:"depreciationID"`
	AssetID         string             `json:"assetID"`
	Method          DepreciationMethod `json:"method"`
	UsefulLifeYears int                `json:"usefulLifeYears"`
	SalvageValue    decimal.Decimal    `json:"salvageValue"`
	StartDate       time.Time          `json:"startDate"`
	AuditFields
}

// DepreciationResult is the depreciation of one asset as of a point in time.
type DepreciationResult struct {
	AssetID           string             `json:"assetID"`
	Method            DepreciationMethod `json:"method"`
	DepreciableAmount decimal.Decimal    `json:"depreciableAmount"`
	Annual            decimal.Decimal    `json:"annual"`
	Monthly           decimal.Decimal    `json:"monthly"`
	Accumulated       decimal.Decimal    `json:"accumulated"`
	MonthsElapsed     int                `json:"monthsElapsed"`
	DerivedBookValue  decimal.Decimal    `json:"derivedBookValue"`
	AsOf              time.Time          `json:"asOf"`
}

// DepreciationYear is one row of a year-by-year depreciation table.
type DepreciationYear struct {
	Year            int             `json:"year"`
	Expense         decimal.Decimal `json:"expense"`
	Accumulated     decimal.Decimal `json:"accumulated"`
	EndingBookValue decimal.Decimal `json:"endingBookValue"`
}
