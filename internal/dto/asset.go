package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to register an asset.
type CreateAssetRequest struct {
	Name             string                `json:"name" binding:"required"`
	AssetTag         string                `json:"assetTag"`
	CategoryID       *string               `json:"categoryID" binding:"omitempty,uuid"`
	LocationID       *string               `json:"locationID" binding:"omitempty,uuid"`
	VendorID         *string               `json:"vendorID" binding:"omitempty,uuid"`
	PurchaseDate     *time.Time            `json:"purchaseDate"`
	PurchaseCost     decimal.Decimal       `json:"purchaseCost"`
	CurrentBookValue *decimal.Decimal      `json:"currentBookValue"` // defaults to the purchase cost
	Currency         string                `json:"currency" binding:"required,len=3"`
	Status           domain.AssetStatus    `json:"status"`
	Condition        domain.AssetCondition `json:"condition"`
	SerialNumber     string                `json:"serialNumber"`
	Notes            string                `json:"notes"`
}

// UpdateAssetRequest defines the fields that can be changed on an asset.
type UpdateAssetRequest struct {
	Name             *string                `json:"name" binding:"omitempty,min=1"`
	AssetTag         *string                `json:"assetTag"`
	CategoryID       *string                `json:"categoryID" binding:"omitempty,uuid"`
	LocationID       *string                `json:"locationID" binding:"omitempty,uuid"`
	VendorID         *string                `json:"vendorID" binding:"omitempty,uuid"`
	PurchaseDate     *time.Time             `json:"purchaseDate"`
	PurchaseCost     *decimal.Decimal       `json:"purchaseCost"`
	CurrentBookValue *decimal.Decimal       `json:"currentBookValue"`
	Currency         *string                `json:"currency" binding:"omitempty,len=3"`
	Status           *domain.AssetStatus    `json:"status"`
	Condition        *domain.AssetCondition `json:"condition"`
	SerialNumber     *string                `json:"serialNumber"`
	Notes            *string                `json:"notes"`
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Status     string `form:"status"`
	CategoryID string `form:"categoryID"`
	LocationID string `form:"locationID"`
}

// ListAssetsResponse wraps a list of assets.
type ListAssetsResponse struct {
	Assets []domain.Asset `json:"assets"`
}

// CreateAssetCategoryRequest defines an asset category.
type CreateAssetCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateAssetLocationRequest defines an asset location.
type CreateAssetLocationRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
}
