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
)

// PgxServiceRepository stores subscriptions in the services table.
type PgxServiceRepository struct {
	BaseRepository
}

func newPgxServiceRepository(pool *pgxpool.Pool) portsrepo.ServiceRepositoryFacade {
	return &PgxServiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ServiceRepositoryFacade = (*PgxServiceRepository)(nil)

const serviceColumns = `service_id, service_name, provider, vendor_id, category_id, amount, currency,
	billing_cycle, custom_cycle_days, start_date, next_renewal_date, next_renewal_amount,
	status, auto_renew, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanService(row pgx.Row) (models.Service, error) {
	var m models.Service
	err := row.Scan(
		&m.ServiceID, &m.ServiceName, &m.Provider, &m.VendorID, &m.CategoryID, &m.Amount, &m.Currency,
		&m.BillingCycle, &m.CustomCycleDays, &m.StartDate, &m.NextRenewalDate, &m.NextRenewalAmount,
		&m.Status, &m.AutoRenew, &m.Notes, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	m := mapping.ToModelService(service)
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ServiceID, m.ServiceName, m.Provider, m.VendorID, m.CategoryID, m.Amount, m.Currency,
		m.BillingCycle, m.CustomCycleDays, m.StartDate, m.NextRenewalDate, m.NextRenewalAmount,
		m.Status, m.AutoRenew, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save service")
}

func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	m := mapping.ToModelService(service)
	query := `
		UPDATE services
		SET service_name = $1, provider = $2, vendor_id = $3, category_id = $4, amount = $5, currency = $6,
			billing_cycle = $7, custom_cycle_days = $8, start_date = $9, next_renewal_date = $10,
			next_renewal_amount = $11, status = $12, auto_renew = $13, notes = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE service_id = $17;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ServiceName, m.Provider, m.VendorID, m.CategoryID, m.Amount, m.Currency,
		m.BillingCycle, m.CustomCycleDays, m.StartDate, m.NextRenewalDate,
		m.NextRenewalAmount, m.Status, m.AutoRenew, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.ServiceID,
	)
	if err != nil {
		return translateError(err, "update service")
	}
	return expectOne(cmdTag, "service")
}

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	m, err := scanService(r.Pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE service_id = $1;`, serviceID))
	if err != nil {
		return nil, translateError(err, "find service")
	}
	service := mapping.ToDomainService(m)
	return &service, nil
}

func (r *PgxServiceRepository) FindServiceByName(ctx context.Context, name string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + `
		FROM services
		WHERE LOWER(service_name) = LOWER($1)
		ORDER BY created_at
		LIMIT 1;`
	m, err := scanService(r.Pool.QueryRow(ctx, query, strings.TrimSpace(name)))
	if err != nil {
		return nil, translateError(err, "find service by name")
	}
	service := mapping.ToDomainService(m)
	return &service, nil
}

func (r *PgxServiceRepository) FindServices(ctx context.Context, filter portsrepo.ServiceFilter) ([]domain.Service, error) {
	var conditions []string
	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = "+bind(string(filter.Status)))
	}
	if filter.VendorID != "" {
		conditions = append(conditions, "vendor_id = "+bind(filter.VendorID))
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = "+bind(filter.CategoryID))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		p := bind("%" + s + "%")
		conditions = append(conditions, "(service_name ILIKE "+p+" OR provider ILIKE "+p+")")
	}

	query := `SELECT ` + serviceColumns + ` FROM services`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY next_renewal_date ASC NULLS LAST, service_name ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		m, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, mapping.ToDomainService(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", rows.Err())
	}
	return services, nil
}

// DeleteService removes the service, its payments and the attachment rows of both.
func (r *PgxServiceRepository) DeleteService(ctx context.Context, serviceID string) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT payment_id FROM payments WHERE service_id = $1;`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments of service: %w", err)
	}
	paymentIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment ids: %w", err)
	}

	keys, err := deleteAttachmentRows(ctx, tx, string(domain.AttachmentPayment), paymentIDs...)
	if err != nil {
		return nil, err
	}
	serviceKeys, err := deleteAttachmentRows(ctx, tx, string(domain.AttachmentService), serviceID)
	if err != nil {
		return nil, err
	}
	keys = append(keys, serviceKeys...)

	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE service_id = $1;`, serviceID); err != nil {
		return nil, fmt.Errorf("failed to delete payments of service: %w", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM services WHERE service_id = $1;`, serviceID)
	if err != nil {
		return nil, translateError(err, "delete service")
	}
	if err := expectOne(cmdTag, "service"); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return keys, nil
}
