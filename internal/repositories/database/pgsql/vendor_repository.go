package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorColumns = `vendor_id, name, contact_person, email, phone, website, address, notes, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanVendor(row pgx.Row) (models.Vendor, error) {
	var m models.Vendor
	err := row.Scan(
		&m.VendorID, &m.Name, &m.ContactPerson, &m.Email, &m.Phone, &m.Website, &m.Address, &m.Notes, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO vendors (`+vendorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.VendorID, m.Name, m.ContactPerson, m.Email, m.Phone, m.Website, m.Address, m.Notes, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save vendor")
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE vendors
		SET name = $1, contact_person = $2, email = $3, phone = $4, website = $5, address = $6,
			notes = $7, is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE vendor_id = $11;`,
		m.Name, m.ContactPerson, m.Email, m.Phone, m.Website, m.Address,
		m.Notes, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.VendorID,
	)
	if err != nil {
		return translateError(err, "update vendor")
	}
	return expectOne(cmdTag, "vendor")
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	m, err := scanVendor(r.Pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE vendor_id = $1;`, vendorID))
	if err != nil {
		return nil, translateError(err, "find vendor")
	}
	vendor := mapping.ToDomainVendor(m)
	return &vendor, nil
}

func (r *PgxVendorRepository) FindVendors(ctx context.Context, activeOnly bool) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	if activeOnly {
		query += ` WHERE is_active`
	}
	rows, err := r.Pool.Query(ctx, query+` ORDER BY name ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		m, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		vendors = append(vendors, mapping.ToDomainVendor(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", rows.Err())
	}
	return vendors, nil
}

// DeleteVendor clears the vendor from services and assets before removing it.
func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `UPDATE services SET vendor_id = NULL WHERE vendor_id = $1;`, vendorID); err != nil {
		return nil, fmt.Errorf("failed to detach vendor from services: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE assets SET vendor_id = NULL WHERE vendor_id = $1;`, vendorID); err != nil {
		return nil, fmt.Errorf("failed to detach vendor from assets: %w", err)
	}
	keys, err := deleteAttachmentRows(ctx, tx, string(domain.AttachmentVendor), vendorID)
	if err != nil {
		return nil, err
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		return nil, translateError(err, "delete vendor")
	}
	if err := expectOne(cmdTag, "vendor"); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return keys, nil
}

// PgxCategoryRepository stores service categories.
type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, description, color, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(&m.CategoryID, &m.Name, &m.Description, &m.Color, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO service_categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.CategoryID, m.Name, m.Description, m.Color, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save category")
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE service_categories
		SET name = $1, description = $2, color = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $6;`,
		m.Name, m.Description, m.Color, m.LastUpdatedAt, m.LastUpdatedBy, m.CategoryID,
	)
	if err != nil {
		return translateError(err, "update category")
	}
	return expectOne(cmdTag, "category")
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	// services.category_id is ON DELETE SET NULL
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM service_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return translateError(err, "delete category")
	}
	return expectOne(cmdTag, "category")
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	m, err := scanCategory(r.Pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM service_categories WHERE category_id = $1;`, categoryID))
	if err != nil {
		return nil, translateError(err, "find category")
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM service_categories ORDER BY name ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}
