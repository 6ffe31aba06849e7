package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, name, asset_tag, category_id, location_id, vendor_id, purchase_date,
	purchase_cost, current_book_value, currency, status, condition, serial_number, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID, &m.Name, &m.AssetTag, &m.CategoryID, &m.LocationID, &m.VendorID, &m.PurchaseDate,
		&m.PurchaseCost, &m.CurrentBookValue, &m.Currency, &m.Status, &m.Condition, &m.SerialNumber, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO assets (`+assetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`,
		m.AssetID, m.Name, m.AssetTag, m.CategoryID, m.LocationID, m.VendorID, m.PurchaseDate,
		m.PurchaseCost, m.CurrentBookValue, m.Currency, m.Status, m.Condition, m.SerialNumber, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save asset")
}

func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE assets
		SET name = $1, asset_tag = $2, category_id = $3, location_id = $4, vendor_id = $5, purchase_date = $6,
			purchase_cost = $7, current_book_value = $8, currency = $9, status = $10, condition = $11,
			serial_number = $12, notes = $13, last_updated_at = $14, last_updated_by = $15
		WHERE asset_id = $16;`,
		m.Name, m.AssetTag, m.CategoryID, m.LocationID, m.VendorID, m.PurchaseDate,
		m.PurchaseCost, m.CurrentBookValue, m.Currency, m.Status, m.Condition,
		m.SerialNumber, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy, m.AssetID,
	)
	if err != nil {
		return translateError(err, "update asset")
	}
	return expectOne(cmdTag, "asset")
}

func (r *PgxAssetRepository) UpdateBookValue(ctx context.Context, assetID string, bookValue decimal.Decimal, updatedBy string) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE assets
		SET current_book_value = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE asset_id = $3;`,
		bookValue, updatedBy, assetID,
	)
	if err != nil {
		return translateError(err, "update book value")
	}
	return expectOne(cmdTag, "asset")
}

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	m, err := scanAsset(r.Pool.QueryRow(ctx, `SELECT `+assetColumns+` FROM assets WHERE asset_id = $1;`, assetID))
	if err != nil {
		return nil, translateError(err, "find asset")
	}
	asset := mapping.ToDomainAsset(m)
	return &asset, nil
}

func (r *PgxAssetRepository) FindAssets(ctx context.Context, filter portsrepo.AssetFilter) ([]domain.Asset, error) {
	var conditions []string
	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = "+bind(string(filter.Status)))
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = "+bind(filter.CategoryID))
	}
	if filter.LocationID != "" {
		conditions = append(conditions, "location_id = "+bind(filter.LocationID))
	}

	query := `SELECT ` + assetColumns + ` FROM assets`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	rows, err := r.Pool.Query(ctx, query+" ORDER BY name ASC;", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, mapping.ToDomainAsset(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", rows.Err())
	}
	return assets, nil
}

// DeleteAsset removes the asset with its depreciation schedule and attachment rows.
func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	keys, err := deleteAttachmentRows(ctx, tx, string(domain.AttachmentAsset), assetID)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM asset_depreciation WHERE asset_id = $1;`, assetID); err != nil {
		return nil, fmt.Errorf("failed to delete depreciation schedule: %w", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return nil, translateError(err, "delete asset")
	}
	if err := expectOne(cmdTag, "asset"); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return keys, nil
}

// PgxAssetCategoryRepository stores asset categories.
type PgxAssetCategoryRepository struct {
	BaseRepository
}

func newPgxAssetCategoryRepository(pool *pgxpool.Pool) portsrepo.AssetCategoryRepositoryFacade {
	return &PgxAssetCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxAssetCategoryRepository) SaveAssetCategory(ctx context.Context, category domain.AssetCategory) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO asset_categories (asset_category_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		category.AssetCategoryID, category.Name, category.Description,
		category.CreatedAt, category.CreatedBy, category.LastUpdatedAt, category.LastUpdatedBy,
	)
	return translateError(err, "save asset category")
}

func (r *PgxAssetCategoryRepository) FindAssetCategories(ctx context.Context) ([]domain.AssetCategory, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT asset_category_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM asset_categories
		ORDER BY name ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset categories: %w", err)
	}
	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AssetCategory, error) {
		var m models.AssetCategory
		err := row.Scan(&m.AssetCategoryID, &m.Name, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset category rows: %w", err)
	}
	categories := make([]domain.AssetCategory, len(modelCategories))
	for i, m := range modelCategories {
		categories[i] = mapping.ToDomainAssetCategory(m)
	}
	return categories, nil
}

// PgxAssetLocationRepository stores asset locations.
type PgxAssetLocationRepository struct {
	BaseRepository
}

func newPgxAssetLocationRepository(pool *pgxpool.Pool) portsrepo.AssetLocationRepositoryFacade {
	return &PgxAssetLocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxAssetLocationRepository) SaveAssetLocation(ctx context.Context, location domain.AssetLocation) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO asset_locations (asset_location_id, name, address, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		location.AssetLocationID, location.Name, location.Address, location.Description,
		location.CreatedAt, location.CreatedBy, location.LastUpdatedAt, location.LastUpdatedBy,
	)
	return translateError(err, "save asset location")
}

func (r *PgxAssetLocationRepository) FindAssetLocations(ctx context.Context) ([]domain.AssetLocation, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT asset_location_id, name, address, description, created_at, created_by, last_updated_at, last_updated_by
		FROM asset_locations
		ORDER BY name ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset locations: %w", err)
	}
	modelLocations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AssetLocation, error) {
		var m models.AssetLocation
		err := row.Scan(&m.AssetLocationID, &m.Name, &m.Address, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset location rows: %w", err)
	}
	locations := make([]domain.AssetLocation, len(modelLocations))
	for i, m := range modelLocations {
		locations[i] = mapping.ToDomainAssetLocation(m)
	}
	return locations, nil
}
