package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest defines the data needed to track a new subscription.
type CreateServiceRequest struct {
	ServiceName       string               `json:"serviceName" binding:"required"`
	Provider          string               `json:"provider"`
	VendorID          *string              `json:"vendorID" binding:"omitempty,uuid"`
	CategoryID        *string              `json:"categoryID" binding:"omitempty,uuid"`
	Amount            decimal.Decimal      `json:"amount"`
	Currency          string               `json:"currency" binding:"required,len=3"`
	BillingCycle      domain.BillingCycle  `json:"billingCycle" binding:"required"`
	CustomCycleDays   *int                 `json:"customCycleDays" binding:"omitempty,min=1"`
	StartDate         *time.Time           `json:"startDate"`
	NextRenewalDate   *time.Time           `json:"nextRenewalDate"`
	NextRenewalAmount *decimal.Decimal     `json:"nextRenewalAmount"`
	Status            domain.ServiceStatus `json:"status"`
	AutoRenew         bool                 `json:"autoRenew"`
	Notes             string               `json:"notes"`
}

// UpdateServiceRequest defines the fields that can be changed on a subscription.
type UpdateServiceRequest struct {
	ServiceName       *string               `json:"serviceName" binding:"omitempty,min=1"`
	Provider          *string               `json:"provider"`
	VendorID          *string               `json:"vendorID" binding:"omitempty,uuid"`
	CategoryID        *string               `json:"categoryID" binding:"omitempty,uuid"`
	Amount            *decimal.Decimal      `json:"amount"`
	Currency          *string               `json:"currency" binding:"omitempty,len=3"`
	BillingCycle      *domain.BillingCycle  `json:"billingCycle"`
	CustomCycleDays   *int                  `json:"customCycleDays" binding:"omitempty,min=1"`
	StartDate         *time.Time            `json:"startDate"`
	NextRenewalDate   *time.Time            `json:"nextRenewalDate"`
	NextRenewalAmount *decimal.Decimal      `json:"nextRenewalAmount"`
	Status            *domain.ServiceStatus `json:"status"`
	AutoRenew         *bool                 `json:"autoRenew"`
	Notes             *string               `json:"notes"`
}

// ListServicesParams defines query parameters for listing services.
type ListServicesParams struct {
	Status     string `form:"status"`
	VendorID   string `form:"vendorID"`
	CategoryID string `form:"categoryID"`
	Search     string `form:"q"`
}

// ListServicesResponse wraps a list of services.
type ListServicesResponse struct {
	Services []domain.Service `json:"services"`
}
