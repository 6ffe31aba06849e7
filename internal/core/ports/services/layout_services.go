package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// LayoutSvcFacade stores page-builder layouts.
type LayoutSvcFacade interface {
	CreateLayout(ctx context.Context, req dto.CreateLayoutRequest, creatorUserID string) (*domain.PageLayout, error)
	GetLayout(ctx context.Context, layoutID string) (*domain.PageLayout, error)
	ListLayouts(ctx context.Context, pageKey string) ([]domain.PageLayout, error)
	UpdateLayout(ctx context.Context, layoutID string, req dto.UpdateLayoutRequest, requestingUserID string) (*domain.PageLayout, error)
	DeleteLayout(ctx context.Context, layoutID string, requestingUserID string) error
}

// SettingsSvcFacade reads and writes settings sections.
type SettingsSvcFacade interface {
	// GetSettings returns an empty object for a section that was never saved.
	GetSettings(ctx context.Context, section domain.SettingsSection) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, section domain.SettingsSection, req dto.UpdateSettingsRequest, requestingUserID string) (*domain.Settings, error)
}
