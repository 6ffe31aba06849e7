package services

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// AssetReaderSvc defines read operations for assets
type AssetReaderSvc interface {
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)
	ListAssets(ctx context.Context, params dto.ListAssetsParams) ([]domain.Asset, error)
	ListAssetCategories(ctx context.Context) ([]domain.AssetCategory, error)
	ListAssetLocations(ctx context.Context) ([]domain.AssetLocation, error)
}

// AssetWriterSvc defines write operations for assets
type AssetWriterSvc interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, requestingUserID string) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, assetID string, requestingUserID string) error
	CreateAssetCategory(ctx context.Context, req dto.CreateAssetCategoryRequest, creatorUserID string) (*domain.AssetCategory, error)
	CreateAssetLocation(ctx context.Context, req dto.CreateAssetLocationRequest, creatorUserID string) (*domain.AssetLocation, error)
}

// AssetSvcFacade combines all asset service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}

// DepreciationSvcFacade manages depreciation schedules and derived book values.
type DepreciationSvcFacade interface {
	// CreateSchedule attaches a schedule to an asset. A second schedule is apperrors.ErrDuplicate.
	CreateSchedule(ctx context.Context, assetID string, req dto.CreateDepreciationRequest, creatorUserID string) (*dto.DepreciationResponse, error)

	// GetDepreciation computes depreciation as of asOf.
	GetDepreciation(ctx context.Context, assetID string, asOf time.Time) (*dto.DepreciationResponse, error)

	// SyncBookValue writes the derived book value as of asOf into the asset.
	SyncBookValue(ctx context.Context, assetID string, asOf time.Time, requestingUserID string) (*domain.Asset, error)
}
