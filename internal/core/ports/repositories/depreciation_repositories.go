package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// DepreciationReader defines read operations for depreciation schedules
type DepreciationReader interface {
	// FindScheduleByAssetID returns apperrors.ErrNotFound when the asset has no schedule.
	FindScheduleByAssetID(ctx context.Context, assetID string) (*domain.DepreciationSchedule, error)

	// FindSchedulesByAssetIDs returns the schedules keyed by asset ID. Assets without one are absent.
	FindSchedulesByAssetIDs(ctx context.Context, assetIDs []string) (map[string]domain.DepreciationSchedule, error)
}

// DepreciationWriter defines write operations for depreciation schedules
type DepreciationWriter interface {
	// SaveSchedule returns apperrors.ErrDuplicate when the asset already has a schedule.
	SaveSchedule(ctx context.Context, schedule domain.DepreciationSchedule) error
}

// DepreciationRepositoryFacade combines all depreciation-related repository interfaces
type DepreciationRepositoryFacade interface {
	DepreciationReader
	DepreciationWriter
}
