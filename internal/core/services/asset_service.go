package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/SscSPs/backoffice_app/internal/utils/depreciation"
	"github.com/google/uuid"
)

// BookValueSchedule makes asset reads report the schedule-derived book value.
const BookValueSchedule = "schedule"

type assetService struct {
	BaseService
	assetRepo        portsrepo.AssetRepositoryFacade
	categoryRepo     portsrepo.AssetCategoryRepositoryFacade
	locationRepo     portsrepo.AssetLocationRepositoryFacade
	depreciationRepo portsrepo.DepreciationRepositoryFacade
	files            portsrepo.FileStore
	deriveBookValue  bool
}

// NewAssetService creates the asset service. With bookValueMode "schedule" the
// book value of every asset read is derived from its depreciation schedule.
func NewAssetService(
	assetRepo portsrepo.AssetRepositoryFacade,
	categoryRepo portsrepo.AssetCategoryRepositoryFacade,
	locationRepo portsrepo.AssetLocationRepositoryFacade,
	depreciationRepo portsrepo.DepreciationRepositoryFacade,
	files portsrepo.FileStore,
	bookValueMode string,
) portssvc.AssetSvcFacade {
	return &assetService{
		assetRepo:        assetRepo,
		categoryRepo:     categoryRepo,
		locationRepo:     locationRepo,
		depreciationRepo: depreciationRepo,
		files:            files,
		deriveBookValue:  bookValueMode == BookValueSchedule,
	}
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if !s.deriveBookValue {
		return asset, nil
	}

	schedule, err := s.depreciationRepo.FindScheduleByAssetID(ctx, assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return asset, nil
		}
		return nil, fmt.Errorf("failed to load depreciation schedule: %w", err)
	}
	s.applyDerived(ctx, asset, *schedule)
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, params dto.ListAssetsParams) ([]domain.Asset, error) {
	filter := portsrepo.AssetFilter{
		Status:     domain.AssetStatus(params.Status),
		CategoryID: params.CategoryID,
		LocationID: params.LocationID,
	}
	assets, err := s.assetRepo.FindAssets(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	if !s.deriveBookValue || len(assets) == 0 {
		return assets, nil
	}

	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.AssetID
	}
	schedules, err := s.depreciationRepo.FindSchedulesByAssetIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load depreciation schedules: %w", err)
	}
	for i := range assets {
		if schedule, ok := schedules[assets[i].AssetID]; ok {
			s.applyDerived(ctx, &assets[i], schedule)
		}
	}
	return assets, nil
}

// applyDerived replaces the stored book value with the one derived today.
// A schedule that cannot be computed leaves the stored value in place.
func (s *assetService) applyDerived(ctx context.Context, asset *domain.Asset, schedule domain.DepreciationSchedule) {
	result, err := depreciation.Compute(*asset, schedule, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Cannot derive book value", slog.String("asset_id", asset.AssetID))
		return
	}
	asset.CurrentBookValue = result.DerivedBookValue
}

func (s *assetService) ListAssetCategories(ctx context.Context) ([]domain.AssetCategory, error) {
	categories, err := s.categoryRepo.FindAssetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset categories: %w", err)
	}
	if categories == nil {
		categories = []domain.AssetCategory{}
	}
	return categories, nil
}

func (s *assetService) ListAssetLocations(ctx context.Context) ([]domain.AssetLocation, error) {
	locations, err := s.locationRepo.FindAssetLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset locations: %w", err)
	}
	if locations == nil {
		locations = []domain.AssetLocation{}
	}
	return locations, nil
}

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.Asset, error) {
	asset := domain.Asset{
		AssetID:          uuid.NewString(),
		Name:             strings.TrimSpace(req.Name),
		AssetTag:         strings.TrimSpace(req.AssetTag),
		CategoryID:       req.CategoryID,
		LocationID:       req.LocationID,
		VendorID:         req.VendorID,
		PurchaseDate:     req.PurchaseDate,
		PurchaseCost:     req.PurchaseCost,
		CurrentBookValue: req.PurchaseCost,
		Currency:         currency.Normalize(req.Currency),
		Status:           req.Status,
		Condition:        req.Condition,
		SerialNumber:     req.SerialNumber,
		Notes:            req.Notes,
		AuditFields:      domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if req.CurrentBookValue != nil {
		asset.CurrentBookValue = *req.CurrentBookValue
	}
	if asset.Status == "" {
		asset.Status = domain.AssetActive
	}
	if asset.Condition == "" {
		asset.Condition = domain.ConditionGood
	}
	if err := validateAsset(asset); err != nil {
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("name", asset.Name))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	s.LogInfo(ctx, "Asset created", slog.String("asset_id", asset.AssetID))
	return &asset, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, requestingUserID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset for update: %w", err)
	}

	if req.Name != nil {
		asset.Name = strings.TrimSpace(*req.Name)
	}
	if req.AssetTag != nil {
		asset.AssetTag = strings.TrimSpace(*req.AssetTag)
	}
	if req.CategoryID != nil {
		asset.CategoryID = emptyToNil(*req.CategoryID)
	}
	if req.LocationID != nil {
		asset.LocationID = emptyToNil(*req.LocationID)
	}
	if req.VendorID != nil {
		asset.VendorID = emptyToNil(*req.VendorID)
	}
	if req.PurchaseDate != nil {
		asset.PurchaseDate = req.PurchaseDate
	}
	if req.PurchaseCost != nil {
		asset.PurchaseCost = *req.PurchaseCost
	}
	if req.CurrentBookValue != nil {
		asset.CurrentBookValue = *req.CurrentBookValue
	}
	if req.Currency != nil {
		asset.Currency = currency.Normalize(*req.Currency)
	}
	if req.Status != nil {
		asset.Status = *req.Status
	}
	if req.Condition != nil {
		asset.Condition = *req.Condition
	}
	if req.SerialNumber != nil {
		asset.SerialNumber = *req.SerialNumber
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
	}
	if err := validateAsset(*asset); err != nil {
		return nil, err
	}

	asset.Touch(requestingUserID, s.Now())
	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to update asset", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return asset, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID string, requestingUserID string) error {
	keys, err := s.assetRepo.DeleteAsset(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	removeStoredFiles(ctx, &s.BaseService, s.files, keys)
	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID), slog.String("deleted_by", requestingUserID))
	return nil
}

func (s *assetService) CreateAssetCategory(ctx context.Context, req dto.CreateAssetCategoryRequest, creatorUserID string) (*domain.AssetCategory, error) {
	category := domain.AssetCategory{
		AssetCategoryID: uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		AuditFields:     domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if category.Name == "" {
		return nil, apperrors.NewValidationError("asset category name is required")
	}
	if err := s.categoryRepo.SaveAssetCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create asset category: %w", err)
	}
	return &category, nil
}

func (s *assetService) CreateAssetLocation(ctx context.Context, req dto.CreateAssetLocationRequest, creatorUserID string) (*domain.AssetLocation, error) {
	location := domain.AssetLocation{
		AssetLocationID: uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Address:         req.Address,
		Description:     req.Description,
		AuditFields:     domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if location.Name == "" {
		return nil, apperrors.NewValidationError("asset location name is required")
	}
	if err := s.locationRepo.SaveAssetLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create asset location: %w", err)
	}
	return &location, nil
}

func validateAsset(a domain.Asset) error {
	switch {
	case a.Name == "":
		return apperrors.NewValidationError("asset name is required")
	case len(a.Currency) != 3:
		return apperrors.NewValidationError(fmt.Sprintf("invalid currency %q", a.Currency))
	case a.PurchaseCost.IsNegative():
		return apperrors.NewValidationError("purchase cost must not be negative")
	case a.CurrentBookValue.IsNegative():
		return apperrors.NewValidationError("book value must not be negative")
	}
	switch a.Status {
	case domain.AssetActive, domain.AssetInRepair, domain.AssetRetired, domain.AssetDisposed:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown asset status %q", a.Status))
	}
	switch a.Condition {
	case domain.ConditionNew, domain.ConditionGood, domain.ConditionFair, domain.ConditionPoor:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown asset condition %q", a.Condition))
	}
	return nil
}
