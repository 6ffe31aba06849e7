package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines a payment made against a service.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal      `json:"amount"`
	Currency      string               `json:"currency" binding:"omitempty,len=3"` // defaults to the service currency
	PaymentDate   time.Time            `json:"paymentDate" binding:"required"`
	PaymentMethod string               `json:"paymentMethod"`
	Reference     string               `json:"reference"`
	Status        domain.PaymentStatus `json:"status"`
	Notes         string               `json:"notes"`

	// AdvanceRenewal moves the service's next renewal date forward by one billing cycle.
	AdvanceRenewal bool `json:"advanceRenewal"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	ServiceID string     `form:"serviceID"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int        `form:"limit,default=20" binding:"min=1,max=500"`
	NextToken *string    `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []domain.Payment `json:"payments"`
	NextToken *string          `json:"nextToken,omitempty"`
}
