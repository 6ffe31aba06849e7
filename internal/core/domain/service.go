package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingCycle is the recurrence unit governing how often a subscription renews.
type BillingCycle string

const (
	Monthly    BillingCycle = "Monthly"
	Quarterly  BillingCycle = "Quarterly"
	SemiAnnual BillingCycle = "Semi-Annual"
	Annual     BillingCycle = "Annual"
	CustomDays BillingCycle = "Custom_days"
)

// IsValid reports whether c is one of the known billing cycles.
func (c BillingCycle) IsValid() bool {
	switch c {
	case Monthly, Quarterly, SemiAnnual, Annual, CustomDays:
		return true
	}
	return false
}

// ServiceStatus is the lifecycle state of a subscription.
type ServiceStatus string

const (
	ServiceActive    ServiceStatus = "Active"
	ServicePaused    ServiceStatus = "Paused"
	ServiceCancelled ServiceStatus = "Cancelled"
	ServiceExpired   ServiceStatus = "Expired"
)

// IsValid reports whether s is one of the known statuses.
func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceActive, ServicePaused, ServiceCancelled, ServiceExpired:
		return true
	}
	return false
}

// Service is a tracked subscription or recurring service.
type Service struct {
	ServiceID         string           `json:"serviceID"`
	ServiceName       string           `json:"serviceName"`
	Provider          string           `json:"provider"`
	VendorID          *string          `json:"vendorID,omitempty"`
	CategoryID        *string          `json:"categoryID,omitempty"`
	Amount            decimal.Decimal  `json:"amount"`
	Currency          string           `json:"currency"`
	BillingCycle      BillingCycle     `json:"billingCycle"`
	CustomCycleDays   *int             `json:"customCycleDays,omitempty"` // required iff BillingCycle == CustomDays
	StartDate         *time.Time       `json:"startDate,omitempty"`
	NextRenewalDate   *time.Time       `json:"nextRenewalDate,omitempty"`
	NextRenewalAmount *decimal.Decimal `json:"nextRenewalAmount,omitempty"` // overrides Amount when set
	Status            ServiceStatus    `json:"status"`
	AutoRenew         bool             `json:"autoRenew"`
	Notes             string           `json:"notes"`
	AuditFields
}

// RenewalAmount is the amount charged at the next renewal.
func (s Service) RenewalAmount() decimal.Decimal {
	if s.NextRenewalAmount != nil {
		return *s.NextRenewalAmount
	}
	return s.Amount
}

// IsActive reports whether the service is currently billing.
func (s Service) IsActive() bool {
	return s.Status == ServiceActive
}
