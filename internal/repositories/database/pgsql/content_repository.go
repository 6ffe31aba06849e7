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

// PgxPageLayoutRepository stores page-builder layouts.
type PgxPageLayoutRepository struct {
	BaseRepository
}

func newPgxPageLayoutRepository(pool *pgxpool.Pool) portsrepo.PageLayoutRepositoryFacade {
	return &PgxPageLayoutRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PageLayoutRepositoryFacade = (*PgxPageLayoutRepository)(nil)

const layoutColumns = `layout_id, name, page_key, components, is_published,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLayout(row pgx.Row) (models.PageLayout, error) {
	var m models.PageLayout
	err := row.Scan(
		&m.LayoutID, &m.Name, &m.PageKey, &m.Components, &m.IsPublished,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPageLayoutRepository) SaveLayout(ctx context.Context, layout domain.PageLayout) error {
	m := mapping.ToModelPageLayout(layout)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO page_layouts (`+layoutColumns+`)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8, $9);`,
		m.LayoutID, m.Name, m.PageKey, string(m.Components), m.IsPublished,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save layout")
}

func (r *PgxPageLayoutRepository) UpdateLayout(ctx context.Context, layout domain.PageLayout) error {
	m := mapping.ToModelPageLayout(layout)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE page_layouts
		SET name = $1, page_key = $2, components = $3::jsonb, is_published = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE layout_id = $7;`,
		m.Name, m.PageKey, string(m.Components), m.IsPublished, m.LastUpdatedAt, m.LastUpdatedBy, m.LayoutID,
	)
	if err != nil {
		return translateError(err, "update layout")
	}
	return expectOne(cmdTag, "layout")
}

func (r *PgxPageLayoutRepository) DeleteLayout(ctx context.Context, layoutID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM page_layouts WHERE layout_id = $1;`, layoutID)
	if err != nil {
		return translateError(err, "delete layout")
	}
	return expectOne(cmdTag, "layout")
}

func (r *PgxPageLayoutRepository) FindLayoutByID(ctx context.Context, layoutID string) (*domain.PageLayout, error) {
	m, err := scanLayout(r.Pool.QueryRow(ctx, `SELECT `+layoutColumns+` FROM page_layouts WHERE layout_id = $1;`, layoutID))
	if err != nil {
		return nil, translateError(err, "find layout")
	}
	layout := mapping.ToDomainPageLayout(m)
	return &layout, nil
}

func (r *PgxPageLayoutRepository) FindLayouts(ctx context.Context, pageKey string) ([]domain.PageLayout, error) {
	query := `SELECT ` + layoutColumns + ` FROM page_layouts`
	var args []any
	if pageKey != "" {
		query += ` WHERE page_key = $1`
		args = append(args, pageKey)
	}
	rows, err := r.Pool.Query(ctx, query+` ORDER BY last_updated_at DESC;`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query layouts: %w", err)
	}
	defer rows.Close()

	layouts := []domain.PageLayout{}
	for rows.Next() {
		m, err := scanLayout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan layout row: %w", err)
		}
		layouts = append(layouts, mapping.ToDomainPageLayout(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating layout rows: %w", rows.Err())
	}
	return layouts, nil
}

// PgxSettingsRepository stores one JSON document per settings section.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxSettingsRepository) FindSettings(ctx context.Context, section domain.SettingsSection) (*domain.Settings, error) {
	var m models.Settings
	err := r.Pool.QueryRow(ctx, `
		SELECT section, section_values, created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE section = $1;`, string(section),
	).Scan(&m.Section, &m.Values, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		return nil, translateError(err, "find settings")
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

func (r *PgxSettingsRepository) UpsertSettings(ctx context.Context, settings domain.Settings) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO settings (section, section_values, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2::jsonb, $3, $4, $5, $6)
		ON CONFLICT (section) DO UPDATE SET
			section_values = EXCLUDED.section_values,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`,
		string(settings.Section), string(settings.Values),
		settings.CreatedAt, settings.CreatedBy, settings.LastUpdatedAt, settings.LastUpdatedBy,
	)
	return translateError(err, "save settings")
}

// PgxAttachmentRepository stores attachment metadata.
type PgxAttachmentRepository struct {
	BaseRepository
}

func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepositoryFacade {
	return &PgxAttachmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttachmentRepositoryFacade = (*PgxAttachmentRepository)(nil)

const attachmentColumns = `attachment_id, entity_type, entity_id, file_name, content_type, size_bytes, storage_key,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAttachment(row pgx.Row) (models.Attachment, error) {
	var m models.Attachment
	err := row.Scan(
		&m.AttachmentID, &m.EntityType, &m.EntityID, &m.FileName, &m.ContentType, &m.SizeBytes, &m.StorageKey,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	m := mapping.ToModelAttachment(attachment)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO attachments (`+attachmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		m.AttachmentID, m.EntityType, m.EntityID, m.FileName, m.ContentType, m.SizeBytes, m.StorageKey,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save attachment")
}

func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	m, err := scanAttachment(r.Pool.QueryRow(ctx, `SELECT `+attachmentColumns+` FROM attachments WHERE attachment_id = $1;`, attachmentID))
	if err != nil {
		return nil, translateError(err, "find attachment")
	}
	attachment := mapping.ToDomainAttachment(m)
	return &attachment, nil
}

func (r *PgxAttachmentRepository) FindAttachments(ctx context.Context, entityType domain.AttachmentEntity, entityID string) ([]domain.Attachment, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+attachmentColumns+`
		FROM attachments
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC;`, string(entityType), entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments: %w", err)
	}
	defer rows.Close()

	attachments := []domain.Attachment{}
	for rows.Next() {
		m, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attachment row: %w", err)
		}
		attachments = append(attachments, mapping.ToDomainAttachment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", rows.Err())
	}
	return attachments, nil
}

func (r *PgxAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM attachments WHERE attachment_id = $1;`, attachmentID)
	if err != nil {
		return translateError(err, "delete attachment")
	}
	return expectOne(cmdTag, "attachment")
}
