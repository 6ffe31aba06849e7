package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/shopspring/decimal"
)

// LoadRateTable builds the rate table from the built-in defaults overlaid with
// the stored USD rates. It is called once at start-up.
func LoadRateTable(ctx context.Context, repo portsrepo.ExchangeRateReader) (*currency.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if repo == nil {
		return currency.Default(), nil
	}
	rows, err := repo.FindLatestRatesFromUSD(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	overrides := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		if currency.Normalize(r.FromCurrencyCode) != domain.USD || !r.Rate.IsPositive() {
			logger.Warn("Ignoring exchange rate", slog.String("from", r.FromCurrencyCode), slog.String("to", r.ToCurrencyCode))
			continue
		}
		overrides[currency.Normalize(r.ToCurrencyCode)] = r.Rate
	}
	table, err := currency.Default().WithOverrides(overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate table: %w", err)
	}
	logger.Info("Exchange rates loaded", slog.Int("overrides", len(overrides)), slog.Int("currencies", len(table.Codes())))
	return table, nil
}
