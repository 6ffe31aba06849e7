package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRateTable_OverridesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExchangeRateReader)
	repo.On("FindLatestRatesFromUSD", ctx).Return([]domain.ExchangeRate{
		{FromCurrencyCode: "USD", ToCurrencyCode: "inr", Rate: dec("90")},
		{FromCurrencyCode: "EUR", ToCurrencyCode: "GBP", Rate: dec("0.9")},
		{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: dec("0")},
	}, nil).Once()

	table, err := services.LoadRateTable(ctx, repo)

	require.NoError(t, err)
	rate, ok := table.Lookup("INR")
	require.True(t, ok)
	assert.True(t, rate.Equal(dec("90")))
	eur, ok := table.Lookup("EUR")
	require.True(t, ok)
	assert.True(t, eur.IsPositive())
}

func TestLoadRateTable_RepoError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExchangeRateReader)
	repo.On("FindLatestRatesFromUSD", ctx).Return(nil, assert.AnError).Once()

	_, err := services.LoadRateTable(ctx, repo)

	assert.ErrorIs(t, err, assert.AnError)
}
