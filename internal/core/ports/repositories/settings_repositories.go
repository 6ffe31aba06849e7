package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// SettingsRepositoryFacade reads and writes settings sections.
type SettingsRepositoryFacade interface {
	// FindSettings returns apperrors.ErrNotFound for a section that was never saved.
	FindSettings(ctx context.Context, section domain.SettingsSection) (*domain.Settings, error)

	// UpsertSettings replaces the stored values of a section.
	UpsertSettings(ctx context.Context, settings domain.Settings) error
}
