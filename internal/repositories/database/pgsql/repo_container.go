package pgsql

import (
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		ServiceRepo:       newPgxServiceRepository(dbPool),
		PaymentRepo:       newPgxPaymentRepository(dbPool),
		VendorRepo:        newPgxVendorRepository(dbPool),
		CategoryRepo:      newPgxCategoryRepository(dbPool),
		AssetRepo:         newPgxAssetRepository(dbPool),
		AssetCategoryRepo: newPgxAssetCategoryRepository(dbPool),
		AssetLocationRepo: newPgxAssetLocationRepository(dbPool),
		DepreciationRepo:  newPgxDepreciationRepository(dbPool),
		PageLayoutRepo:    newPgxPageLayoutRepository(dbPool),
		AttachmentRepo:    newPgxAttachmentRepository(dbPool),
		SettingsRepo:      newPgxSettingsRepository(dbPool),
		ExchangeRateRepo:  newPgxExchangeRateRepository(dbPool),
	}
}
