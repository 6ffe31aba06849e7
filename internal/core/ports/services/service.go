package services

import (
	"github.com/SscSPs/backoffice_app/internal/core/modules"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Auth         AuthSvcFacade
	Subscription SubscriptionSvcFacade
	Payment      PaymentSvcFacade
	Vendor       VendorSvcFacade
	Category     CategorySvcFacade
	Asset        AssetSvcFacade
	Depreciation DepreciationSvcFacade
	Import       ImportSvc
	Export       ExportSvc
	Dashboard    DashboardSvc
	Attachment   AttachmentSvcFacade
	Layout       LayoutSvcFacade
	Settings     SettingsSvcFacade

	// Modules is shared with the middleware that gates module routes.
	Modules *modules.Registry
	// Rates is loaded once at start-up and never refreshed.
	Rates *currency.RateTable
}
