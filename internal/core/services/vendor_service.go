package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/google/uuid"
)

type vendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepositoryFacade
	files      portsrepo.FileStore
}

// NewVendorService creates the vendor service.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade, files portsrepo.FileStore) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo, files: files}
}

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	vendor := domain.Vendor{
		VendorID:      uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		ContactPerson: req.ContactPerson,
		Email:         strings.TrimSpace(req.Email),
		Phone:         req.Phone,
		Website:       req.Website,
		Address:       req.Address,
		Notes:         req.Notes,
		IsActive:      true,
		AuditFields:   domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}
	if vendor.Name == "" {
		return nil, apperrors.NewValidationError("vendor name is required")
	}
	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "Failed to save vendor", slog.String("name", vendor.Name))
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return &vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) ListVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.FindVendors(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors")
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	if vendors == nil {
		vendors = []domain.Vendor{}
	}
	return vendors, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, requestingUserID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor for update: %w", err)
	}
	if req.Name != nil {
		vendor.Name = strings.TrimSpace(*req.Name)
		if vendor.Name == "" {
			return nil, apperrors.NewValidationError("vendor name is required")
		}
	}
	if req.ContactPerson != nil {
		vendor.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		vendor.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Website != nil {
		vendor.Website = *req.Website
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.Notes != nil {
		vendor.Notes = *req.Notes
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	vendor.Touch(requestingUserID, s.Now())
	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		s.LogError(ctx, err, "Failed to update vendor", slog.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string, requestingUserID string) error {
	keys, err := s.vendorRepo.DeleteVendor(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	removeStoredFiles(ctx, &s.BaseService, s.files, keys)
	s.LogInfo(ctx, "Vendor deleted", slog.String("vendor_id", vendorID), slog.String("deleted_by", requestingUserID))
	return nil
}

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the service category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Color:       req.Color,
		AuditFields: domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if category.Name == "" {
		return nil, apperrors.NewValidationError("category name is required")
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category for update: %w", err)
	}
	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if category.Name == "" {
		return nil, apperrors.NewValidationError("category name is required")
	}

	category.Touch(requestingUserID, s.Now())
	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID), slog.String("deleted_by", requestingUserID))
	return nil
}
