package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetFilter narrows an asset listing. Zero values mean no filter.
type AssetFilter struct {
	Status     domain.AssetStatus
	CategoryID string
	LocationID string
}

// AssetReader defines read operations for assets
type AssetReader interface {
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)
	FindAssets(ctx context.Context, filter AssetFilter) ([]domain.Asset, error)
}

// AssetWriter defines write operations for assets
type AssetWriter interface {
	SaveAsset(ctx context.Context, asset domain.Asset) error
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// UpdateBookValue overwrites the stored current_book_value only.
	UpdateBookValue(ctx context.Context, assetID string, bookValue decimal.Decimal, updatedBy string) error
}

// AssetLifecycleManager removes an asset, its schedule and its attachments.
type AssetLifecycleManager interface {
	// DeleteAsset returns the storage keys of the attachment rows removed with the asset.
	DeleteAsset(ctx context.Context, assetID string) ([]string, error)
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssetLifecycleManager
}

// AssetCategoryRepositoryFacade manages asset categories.
type AssetCategoryRepositoryFacade interface {
	FindAssetCategories(ctx context.Context) ([]domain.AssetCategory, error)
	SaveAssetCategory(ctx context.Context, category domain.AssetCategory) error
}

// AssetLocationRepositoryFacade manages asset locations.
type AssetLocationRepositoryFacade interface {
	FindAssetLocations(ctx context.Context) ([]domain.AssetLocation, error)
	SaveAssetLocation(ctx context.Context, location domain.AssetLocation) error
}
