package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo          UserRepositoryFacade
	ServiceRepo       ServiceRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	VendorRepo        VendorRepositoryFacade
	CategoryRepo      CategoryRepositoryFacade
	AssetRepo         AssetRepositoryFacade
	AssetCategoryRepo AssetCategoryRepositoryFacade
	AssetLocationRepo AssetLocationRepositoryFacade
	DepreciationRepo  DepreciationRepositoryFacade
	PageLayoutRepo    PageLayoutRepositoryFacade
	AttachmentRepo    AttachmentRepositoryFacade
	SettingsRepo      SettingsRepositoryFacade
	ExchangeRateRepo  ExchangeRateReader
}
