package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/SscSPs/backoffice_app/internal/utils/renewal"
	"github.com/google/uuid"
)

type subscriptionService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepositoryFacade
	files       portsrepo.FileStore
}

// NewSubscriptionService creates the service that tracks subscriptions.
// files may be nil, in which case attachment objects of deleted services are left in place.
func NewSubscriptionService(serviceRepo portsrepo.ServiceRepositoryFacade, files portsrepo.FileStore) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{serviceRepo: serviceRepo, files: files}
}

func (s *subscriptionService) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	svc, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

func (s *subscriptionService) ListServices(ctx context.Context, params dto.ListServicesParams) ([]domain.Service, error) {
	filter := portsrepo.ServiceFilter{
		Status:     domain.ServiceStatus(params.Status),
		VendorID:   params.VendorID,
		CategoryID: params.CategoryID,
		Search:     strings.TrimSpace(params.Search),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown status %q", params.Status))
	}
	services, err := s.serviceRepo.FindServices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list services")
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, nil
}

func (s *subscriptionService) CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error) {
	svc := domain.Service{
		ServiceID:         uuid.NewString(),
		ServiceName:       strings.TrimSpace(req.ServiceName),
		Provider:          strings.TrimSpace(req.Provider),
		VendorID:          req.VendorID,
		CategoryID:        req.CategoryID,
		Amount:            req.Amount,
		Currency:          currency.Normalize(req.Currency),
		BillingCycle:      req.BillingCycle,
		CustomCycleDays:   req.CustomCycleDays,
		StartDate:         req.StartDate,
		NextRenewalDate:   req.NextRenewalDate,
		NextRenewalAmount: req.NextRenewalAmount,
		Status:            req.Status,
		AutoRenew:         req.AutoRenew,
		Notes:             req.Notes,
		AuditFields:       domain.NewAuditFields(creatorUserID, s.Now()),
	}
	if svc.Status == "" {
		svc.Status = domain.ServiceActive
	}
	if err := s.prepare(&svc); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.SaveService(ctx, svc); err != nil {
		s.LogError(ctx, err, "Failed to save service", slog.String("service_name", svc.ServiceName))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	s.LogInfo(ctx, "Service created", slog.String("service_id", svc.ServiceID))
	return &svc, nil
}

func (s *subscriptionService) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, requestingUserID string) (*domain.Service, error) {
	svc, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find service for update: %w", err)
	}

	if req.ServiceName != nil {
		svc.ServiceName = strings.TrimSpace(*req.ServiceName)
	}
	if req.Provider != nil {
		svc.Provider = strings.TrimSpace(*req.Provider)
	}
	if req.VendorID != nil {
		svc.VendorID = emptyToNil(*req.VendorID)
	}
	if req.CategoryID != nil {
		svc.CategoryID = emptyToNil(*req.CategoryID)
	}
	if req.Amount != nil {
		svc.Amount = *req.Amount
	}
	if req.Currency != nil {
		svc.Currency = currency.Normalize(*req.Currency)
	}
	if req.BillingCycle != nil {
		svc.BillingCycle = *req.BillingCycle
	}
	if req.CustomCycleDays != nil {
		svc.CustomCycleDays = req.CustomCycleDays
	}
	if req.StartDate != nil {
		svc.StartDate = req.StartDate
	}
	if req.NextRenewalDate != nil {
		svc.NextRenewalDate = req.NextRenewalDate
	}
	if req.NextRenewalAmount != nil {
		svc.NextRenewalAmount = req.NextRenewalAmount
	}
	if req.Status != nil {
		svc.Status = *req.Status
	}
	if req.AutoRenew != nil {
		svc.AutoRenew = *req.AutoRenew
	}
	if req.Notes != nil {
		svc.Notes = *req.Notes
	}
	if err := s.prepare(svc); err != nil {
		return nil, err
	}

	svc.Touch(requestingUserID, s.Now())
	if err := s.serviceRepo.UpdateService(ctx, *svc); err != nil {
		s.LogError(ctx, err, "Failed to update service", slog.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

func (s *subscriptionService) DeleteService(ctx context.Context, serviceID string, requestingUserID string) error {
	keys, err := s.serviceRepo.DeleteService(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	removeStoredFiles(ctx, &s.BaseService, s.files, keys)
	s.LogInfo(ctx, "Service deleted", slog.String("service_id", serviceID), slog.String("deleted_by", requestingUserID))
	return nil
}

// prepare validates svc and fills the renewal date from the start date when it is missing.
func (s *subscriptionService) prepare(svc *domain.Service) error {
	if svc.ServiceName == "" {
		return apperrors.NewValidationError("service name is required")
	}
	if len(svc.Currency) != 3 {
		return apperrors.NewValidationError(fmt.Sprintf("invalid currency %q", svc.Currency))
	}
	if svc.Amount.IsNegative() {
		return apperrors.NewValidationError("amount must not be negative")
	}
	if svc.NextRenewalAmount != nil && svc.NextRenewalAmount.IsNegative() {
		return apperrors.NewValidationError("next renewal amount must not be negative")
	}
	if !svc.BillingCycle.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown billing cycle %q", svc.BillingCycle))
	}
	if !svc.Status.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown status %q", svc.Status))
	}
	if svc.BillingCycle == domain.CustomDays {
		if svc.CustomCycleDays == nil || *svc.CustomCycleDays <= 0 {
			return apperrors.NewValidationError("custom cycle days must be positive for Custom_days billing")
		}
	} else {
		svc.CustomCycleDays = nil
	}

	if svc.NextRenewalDate == nil && svc.StartDate != nil {
		if next, ok := renewal.FirstOnOrAfter(*svc.StartDate, svc.BillingCycle, svc.CustomCycleDays, s.today()); ok {
			svc.NextRenewalDate = &next
		}
	}
	return nil
}

// today is the current calendar date as midnight UTC, matching stored renewal dates.
func (s *subscriptionService) today() time.Time {
	return renewal.Day(s.Now())
}

func emptyToNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
