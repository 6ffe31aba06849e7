package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepreciationRequest attaches a depreciation schedule to an asset.
type CreateDepreciationRequest struct {
	Method          domain.DepreciationMethod `json:"method" binding:"required,oneof=straight_line declining_balance sum_of_years_digits" validate:"required,oneof=straight_line declining_balance sum_of_years_digits"`
	UsefulLifeYears int                       `json:"usefulLifeYears" binding:"required,min=1" validate:"required,min=1"`
	SalvageValue    decimal.Decimal           `json:"salvageValue"`
	StartDate       time.Time                 `json:"startDate" binding:"required" validate:"required"`
}

// GetDepreciationParams defines query parameters for reading depreciation.
type GetDepreciationParams struct {
	AsOf *time.Time `form:"asOf" time_format:"2006-01-02"`
}

// DepreciationResponse combines the stored schedule with computed figures.
type DepreciationResponse struct {
	Schedule domain.DepreciationSchedule `json:"schedule"`
	Result   domain.DepreciationResult   `json:"result"`
	Table    []domain.DepreciationYear   `json:"table"`
}
