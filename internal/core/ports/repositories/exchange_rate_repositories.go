package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// ExchangeRateReader reads configured exchange rates.
type ExchangeRateReader interface {
	// FindLatestRatesFromUSD returns the most recent USD to X rate for every target currency.
	FindLatestRatesFromUSD(ctx context.Context) ([]domain.ExchangeRate, error)
}
