package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a row of the assets table.
type Asset struct {
	AssetID          string          `db:"asset_id"`
	Name             string          `db:"name"`
	AssetTag         string          `db:"asset_tag"`
	CategoryID       *string         `db:"category_id"`
	LocationID       *string         `db:"location_id"`
	VendorID         *string         `db:"vendor_id"`
	PurchaseDate     *time.Time      `db:"purchase_date"`
	PurchaseCost     decimal.Decimal `db:"purchase_cost"`
	CurrentBookValue decimal.Decimal `db:"current_book_value"`
	Currency         string          `db:"currency"`
	Status           string          `db:"status"`
	Condition        string          `db:"condition"`
	SerialNumber     string          `db:"serial_number"`
	Notes            string          `db:"notes"`
	AuditFields
}

// AssetCategory is a row of the asset_categories table.
type AssetCategory struct {
	AssetCategoryID string `db:"asset_category_id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	AuditFields
}

// AssetLocation is a row of the asset_locations table.
type AssetLocation struct {
	AssetLocationID string `db:"asset_location_id"`
	Name            string `db:"name"`
	Address         string `db:"address"`
	Description     string `db:"description"`
	AuditFields
}

// DepreciationSchedule is a row of the asset_depreciation table. asset_id is unique.
type DepreciationSchedule struct {
	DepreciationID  string          `db:"depreciation_id"`
	AssetID         string          `db:"asset_id"`
	Method          string          `db:"method"`
	UsefulLifeYears int32           `db:"useful_life_years"`
	SalvageValue    decimal.Decimal `db:"salvage_value"`
	StartDate       time.Time       `db:"start_date"`
	AuditFields
}
