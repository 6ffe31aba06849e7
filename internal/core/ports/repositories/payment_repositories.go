package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// PaymentFilter narrows a payment listing.
// Limit <= 0 returns every matching payment without a next token.
type PaymentFilter struct {
	ServiceID string
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}

// PaymentReader defines read operations for payments
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPayments lists payments newest first and returns the token of the next page, if any.
	FindPayments(ctx context.Context, filter PaymentFilter) ([]domain.Payment, *string, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
