package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/SscSPs/backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, service_id, amount, currency, payment_date, payment_method, reference,
	status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID, &m.ServiceID, &m.Amount, &m.Currency, &m.PaymentDate, &m.PaymentMethod, &m.Reference,
		&m.Status, &m.Notes, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.ServiceID, m.Amount, m.Currency, m.PaymentDate, m.PaymentMethod, m.Reference,
		m.Status, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save payment")
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	m, err := scanPayment(r.Pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1;`, paymentID))
	if err != nil {
		return nil, translateError(err, "find payment")
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// FindPayments lists payments newest first using keyset pagination on
// (payment_date, created_at).
func (r *PgxPaymentRepository) FindPayments(ctx context.Context, filter portsrepo.PaymentFilter) ([]domain.Payment, *string, error) {
	var conditions []string
	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.ServiceID != "" {
		conditions = append(conditions, "service_id = "+bind(filter.ServiceID))
	}
	if filter.From != nil {
		conditions = append(conditions, "payment_date >= "+bind(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "payment_date <= "+bind(*filter.To))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*filter.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor condition index friendly.
		conditions = append(conditions, "(payment_date, created_at) < ("+bind(lastDate)+", "+bind(lastCreatedAt)+")")
	}

	query := `SELECT ` + paymentColumns + ` FROM payments`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY payment_date DESC, created_at DESC"
	if filter.Limit > 0 {
		// Fetch one extra row to know whether another page exists.
		query += " LIMIT " + bind(filter.Limit+1)
	}

	rows, err := r.Pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var modelPayments []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if filter.Limit > 0 && len(modelPayments) > filter.Limit {
		last := modelPayments[filter.Limit-1]
		token := pagination.EncodeToken(last.PaymentDate, last.CreatedAt)
		nextTokenVal = &token
		modelPayments = modelPayments[:filter.Limit]
	}

	payments := make([]domain.Payment, len(modelPayments))
	for i, m := range modelPayments {
		payments[i] = mapping.ToDomainPayment(m)
	}
	return payments, nextTokenVal, nil
}
