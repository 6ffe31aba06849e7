package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a row of the services table.
type Service struct {
	ServiceID         string           `db:"service_id"`
	ServiceName       string           `db:"service_name"`
	Provider          string           `db:"provider"`
	VendorID          *string          `db:"vendor_id"`
	CategoryID        *string          `db:"category_id"`
	Amount            decimal.Decimal  `db:"amount"`
	Currency          string           `db:"currency"`
	BillingCycle      string           `db:"billing_cycle"`
	CustomCycleDays   *int32           `db:"custom_cycle_days"`
	StartDate         *time.Time       `db:"start_date"`
	NextRenewalDate   *time.Time       `db:"next_renewal_date"`
	NextRenewalAmount *decimal.Decimal `db:"next_renewal_amount"`
	Status            string           `db:"status"`
	AutoRenew         bool             `db:"auto_renew"`
	Notes             string           `db:"notes"`
	AuditFields
}

// Payment is a row of the payments table.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	ServiceID     string          `db:"service_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	PaymentDate   time.Time       `db:"payment_date"`
	PaymentMethod string          `db:"payment_method"`
	Reference     string          `db:"reference"`
	Status        string          `db:"status"`
	Notes         string          `db:"notes"`
	AuditFields
}
