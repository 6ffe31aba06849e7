package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ServiceFilter narrows a service listing. Zero values mean no filter.
type ServiceFilter struct {
	Status     domain.ServiceStatus
	VendorID   string
	CategoryID string
	Search     string // matched against name and provider, case-insensitive
}

// ServiceReader defines read operations for subscriptions
type ServiceReader interface {
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)

	// FindServiceByName matches service_name case-insensitively.
	FindServiceByName(ctx context.Context, name string) (*domain.Service, error)

	FindServices(ctx context.Context, filter ServiceFilter) ([]domain.Service, error)
}

// ServiceWriter defines write operations for subscriptions
type ServiceWriter interface {
	SaveService(ctx context.Context, service domain.Service) error
	UpdateService(ctx context.Context, service domain.Service) error
}

// ServiceLifecycleManager removes services together with their payments and attachments.
type ServiceLifecycleManager interface {
	// DeleteService returns the storage keys of the attachment rows removed with the service.
	DeleteService(ctx context.Context, serviceID string) ([]string, error)
}

// ServiceRepositoryFacade combines all service-related repository interfaces
type ServiceRepositoryFacade interface {
	ServiceReader
	ServiceWriter
	ServiceLifecycleManager
}
