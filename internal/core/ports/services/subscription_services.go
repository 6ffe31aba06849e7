package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// SubscriptionReaderSvc defines read operations for tracked services
type SubscriptionReaderSvc interface {
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context, params dto.ListServicesParams) ([]domain.Service, error)
}

// SubscriptionWriterSvc defines write operations for tracked services
type SubscriptionWriterSvc interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error)
	UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, requestingUserID string) (*domain.Service, error)
	DeleteService(ctx context.Context, serviceID string, requestingUserID string) error
}

// SubscriptionSvcFacade combines all subscription service interfaces
type SubscriptionSvcFacade interface {
	SubscriptionReaderSvc
	SubscriptionWriterSvc
}
