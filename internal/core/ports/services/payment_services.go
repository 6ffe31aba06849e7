package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// PaymentSvcFacade records and lists payments.
type PaymentSvcFacade interface {
	// RecordPayment stores a payment for serviceID and optionally advances its renewal date.
	RecordPayment(ctx context.Context, serviceID string, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, error)

	// ListPayments returns one page of payments.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}
