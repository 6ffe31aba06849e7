package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the operational state of an asset.
type AssetStatus string

const (
	AssetActive   AssetStatus = "Active"
	AssetInRepair AssetStatus = "In_Repair"
	AssetRetired  AssetStatus = "Retired"
	AssetDisposed AssetStatus = "Disposed"
)

// AssetCondition is the physical condition of an asset.
type AssetCondition string

const (
	ConditionNew  AssetCondition = "New"
	ConditionGood AssetCondition = "Good"
	ConditionFair AssetCondition = "Fair"
	ConditionPoor AssetCondition = "Poor"
)

// Asset is a tracked company asset.
// CurrentBookValue is stored independently of any depreciation schedule.
type Asset struct {
	AssetID          string          `json:"assetID"`
	Name             string          `json:"name"`
	AssetTag         string          `json:"assetTag"`
	CategoryID       *string         `json:"categoryID,omitempty"`
	LocationID       *string         `json:"locationID,omitempty"`
	VendorID         *string         `json:"vendorID,omitempty"`
	PurchaseDate     *time.Time      `json:"purchaseDate,omitempty"`
	PurchaseCost     decimal.Decimal `json:"purchaseCost"`
	CurrentBookValue decimal.Decimal `json:"currentBookValue"`
	Currency         string          `json:"currency"`
	Status           AssetStatus     `json:"status"`
	Condition        AssetCondition  `json:"condition"`
	SerialNumber     string          `json:"serialNumber"`
	Notes            string          `json:"notes"`
	AuditFields
}

// AssetCategory classifies assets.
type AssetCategory struct {
	AssetCategoryID string `json:"assetCategoryID"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	AuditFields
}

// AssetLocation is where an asset physically lives.
type AssetLocation struct {
	AssetLocationID string `json:"assetLocationID"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	Description     string `json:"description"`
	AuditFields
}
