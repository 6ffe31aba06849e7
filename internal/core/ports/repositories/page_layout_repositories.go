package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// PageLayoutReader defines read operations for page layouts
type PageLayoutReader interface {
	FindLayoutByID(ctx context.Context, layoutID string) (*domain.PageLayout, error)

	// FindLayouts lists layouts, optionally restricted to one page key.
	FindLayouts(ctx context.Context, pageKey string) ([]domain.PageLayout, error)
}

// PageLayoutWriter defines write operations for page layouts
type PageLayoutWriter interface {
	SaveLayout(ctx context.Context, layout domain.PageLayout) error
	UpdateLayout(ctx context.Context, layout domain.PageLayout) error
	DeleteLayout(ctx context.Context, layoutID string) error
}

// PageLayoutRepositoryFacade combines all layout-related repository interfaces
type PageLayoutRepositoryFacade interface {
	PageLayoutReader
	PageLayoutWriter
}
