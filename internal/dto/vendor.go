package dto

import "github.com/SscSPs/backoffice_app/internal/core/domain"

// CreateVendorRequest defines the data needed to create a vendor.
type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Website       string `json:"website" binding:"omitempty,url"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	IsActive      *bool  `json:"isActive"` // defaults to true
}

// UpdateVendorRequest defines the fields that can be changed on a vendor.
type UpdateVendorRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Website       *string `json:"website" binding:"omitempty,url"`
	Address       *string `json:"address"`
	Notes         *string `json:"notes"`
	IsActive      *bool   `json:"isActive"`
}

// ListVendorsParams defines query parameters for listing vendors.
type ListVendorsParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

// ListVendorsResponse wraps a list of vendors.
type ListVendorsResponse struct {
	Vendors []domain.Vendor `json:"vendors"`
}

// CreateCategoryRequest defines a service category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the fields that can be changed on a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
}

// ListCategoriesResponse wraps a list of categories.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}
