package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository reads the configured exchange rates.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateReader {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

// FindLatestRatesFromUSD returns the most recent USD to X rate for every target currency.
func (r *PgxExchangeRateRepository) FindLatestRatesFromUSD(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT DISTINCT ON (to_currency_code)
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = 'USD'
		ORDER BY to_currency_code, date_effective DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var m models.ExchangeRate
		if err := rows.Scan(
			&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode, &m.Rate, &m.DateEffective,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate row: %w", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating exchange rate rows: %w", rows.Err())
	}
	return rates, nil
}
