package services

import (
	"github.com/SscSPs/backoffice_app/internal/core/modules"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// notifier may be nil; the renewal digest then reports that no channel is configured.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	registry *modules.Registry,
	rates *currency.RateTable,
	store portsrepo.FileStore,
	notifier portsrepo.Notifier,
) *portssvc.ServiceContainer {
	policy, err := currency.ParsePolicy(cfg.UnknownCurrencyPolicy)
	if err != nil {
		policy = currency.SkipUnknown
	}
	if rates == nil {
		rates = currency.Default()
	}

	container := &portssvc.ServiceContainer{Modules: registry, Rates: rates}

	container.User = NewUserService(repos.UserRepo)
	tokens := NewTokenService(cfg, container.User)
	container.Auth = NewAuthService(container.User, tokens, NewGoogleAuthService(cfg))

	container.Subscription = NewSubscriptionService(repos.ServiceRepo, store)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.ServiceRepo)
	container.Vendor = NewVendorService(repos.VendorRepo, store)
	container.Category = NewCategoryService(repos.CategoryRepo)

	// Export reads assets through the asset service, so it is created first.
	container.Asset = NewAssetService(repos.AssetRepo, repos.AssetCategoryRepo, repos.AssetLocationRepo, repos.DepreciationRepo, store, cfg.BookValueMode)
	container.Depreciation = NewDepreciationService(repos.AssetRepo, repos.DepreciationRepo)

	container.Import = NewImportService(repos.ServiceRepo, repos.PaymentRepo, repos.VendorRepo)
	container.Export = NewExportService(repos, container.Asset, rates, policy)
	container.Dashboard = NewDashboardService(repos.ServiceRepo, repos.PaymentRepo, rates, policy, notifier)
	container.Attachment = NewAttachmentService(repos, store, cfg.AttachmentMaxBytes)
	container.Layout = NewLayoutService(repos.PageLayoutRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.AuthSvcFacade         = (*authService)(nil)
	_ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)
	_ portssvc.AssetSvcFacade        = (*assetService)(nil)
	_ portssvc.ImportSvc             = (*importService)(nil)
)
