package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils/depreciation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type depreciationService struct {
	BaseService
	assetRepo        portsrepo.AssetRepositoryFacade
	depreciationRepo portsrepo.DepreciationRepositoryFacade
	validate         *validator.Validate
}

// NewDepreciationService creates the depreciation service.
func NewDepreciationService(assetRepo portsrepo.AssetRepositoryFacade, depreciationRepo portsrepo.DepreciationRepositoryFacade) portssvc.DepreciationSvcFacade {
	return &depreciationService{
		assetRepo:        assetRepo,
		depreciationRepo: depreciationRepo,
		validate:         validator.New(),
	}
}

func (s *depreciationService) CreateSchedule(ctx context.Context, assetID string, req dto.CreateDepreciationRequest, creatorUserID string) (*dto.DepreciationResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset for depreciation: %w", err)
	}

	schedule := domain.DepreciationSchedule{
		DepreciationID:  uuid.NewString(),
		AssetID:         asset.AssetID,
		Method:          req.Method,
		UsefulLifeYears: req.UsefulLifeYears,
		SalvageValue:    req.SalvageValue,
		StartDate:       req.StartDate,
		AuditFields:     domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if err := depreciation.Validate(*asset, schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.depreciationRepo.SaveSchedule(ctx, schedule); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: asset already has a depreciation schedule", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save depreciation schedule", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to create depreciation schedule: %w", err)
	}
	s.LogInfo(ctx, "Depreciation schedule created", slog.String("asset_id", assetID), slog.String("method", string(schedule.Method)))
	return s.build(*asset, schedule, s.Now())
}

func (s *depreciationService) GetDepreciation(ctx context.Context, assetID string, asOf time.Time) (*dto.DepreciationResponse, error) {
	asset, schedule, err := s.load(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = s.Now()
	}
	return s.build(*asset, *schedule, asOf)
}

func (s *depreciationService) SyncBookValue(ctx context.Context, assetID string, asOf time.Time, requestingUserID string) (*domain.Asset, error) {
	asset, schedule, err := s.load(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = s.Now()
	}
	result, err := depreciation.Compute(*asset, *schedule, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.assetRepo.UpdateBookValue(ctx, assetID, result.DerivedBookValue, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to sync book value", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to sync book value: %w", err)
	}
	asset.CurrentBookValue = result.DerivedBookValue
	asset.Touch(requestingUserID, s.Now())
	s.LogInfo(ctx, "Book value synced", slog.String("asset_id", assetID), slog.String("book_value", result.DerivedBookValue.StringFixed(2)))
	return asset, nil
}

func (s *depreciationService) load(ctx context.Context, assetID string) (*domain.Asset, *domain.DepreciationSchedule, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find asset: %w", err)
	}
	schedule, err := s.depreciationRepo.FindScheduleByAssetID(ctx, assetID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find depreciation schedule: %w", err)
	}
	return asset, schedule, nil
}

func (s *depreciationService) build(asset domain.Asset, schedule domain.DepreciationSchedule, asOf time.Time) (*dto.DepreciationResponse, error) {
	result, err := depreciation.Compute(asset, schedule, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	table, err := depreciation.Schedule(asset, schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &dto.DepreciationResponse{Schedule: schedule, Result: result, Table: table}, nil
}
