package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/SscSPs/backoffice_app/internal/utils/renewal"
	"github.com/google/uuid"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	serviceRepo portsrepo.ServiceRepositoryFacade
}

// NewPaymentService creates the payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, serviceRepo portsrepo.ServiceRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, serviceRepo: serviceRepo}
}

func (s *paymentService) RecordPayment(ctx context.Context, serviceID string, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, error) {
	svc, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find service for payment: %w", err)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be greater than zero")
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		ServiceID:     svc.ServiceID,
		Amount:        req.Amount,
		Currency:      currency.Normalize(req.Currency),
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Status:        req.Status,
		Notes:         req.Notes,
		AuditFields:   domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if payment.Currency == "" {
		payment.Currency = svc.Currency
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentPaid
	}
	if !payment.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown payment status %q", req.Status))
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if req.AdvanceRenewal {
		s.advanceRenewal(ctx, svc, creatorUserID)
	}
	return &payment, nil
}

// advanceRenewal moves the service's next renewal date by one cycle. The payment
// is already stored, so a failure here is logged and not returned.
func (s *paymentService) advanceRenewal(ctx context.Context, svc *domain.Service, userID string) {
	if svc.NextRenewalDate == nil {
		s.LogInfo(ctx, "Service has no renewal date to advance", slog.String("service_id", svc.ServiceID))
		return
	}
	next, ok := renewal.Advance(*svc.NextRenewalDate, svc.BillingCycle, svc.CustomCycleDays)
	if !ok {
		s.LogInfo(ctx, "Billing cycle cannot advance", slog.String("service_id", svc.ServiceID), slog.String("billing_cycle", string(svc.BillingCycle)))
		return
	}
	svc.NextRenewalDate = &next
	svc.Touch(userID, s.Now())
	if err := s.serviceRepo.UpdateService(ctx, *svc); err != nil {
		s.LogError(ctx, err, "Failed to advance renewal date", slog.String("service_id", svc.ServiceID))
	}
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		return nil, apperrors.NewValidationError("to must not be before from")
	}
	payments, nextToken, err := s.paymentRepo.FindPayments(ctx, portsrepo.PaymentFilter{
		ServiceID: params.ServiceID,
		From:      params.From,
		To:        params.To,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return &dto.ListPaymentsResponse{Payments: payments, NextToken: nextToken}, nil
}
