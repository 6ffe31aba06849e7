package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// VendorReader defines read operations for vendors
type VendorReader interface {
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	FindVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendors
type VendorWriter interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error

	// DeleteVendor detaches the vendor from services and assets and returns the
	// storage keys of its removed attachment rows.
	DeleteVendor(ctx context.Context, vendorID string) ([]string, error)
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}

// CategoryReader defines read operations for service categories
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines write operations for service categories
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
