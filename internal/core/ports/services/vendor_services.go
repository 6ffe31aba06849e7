package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// VendorSvcFacade manages vendors.
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, requestingUserID string) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string, requestingUserID string) error
}

// CategorySvcFacade manages service categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error
}
