package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/utils/importing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportDay = time.Date(2025, time.March, 9, 15, 4, 0, 0, time.UTC)

func TestCSVFilename(t *testing.T) {
	assert.Equal(t, "services-export-2025-03-09.csv", CSVFilename("services", exportDay))
	assert.Equal(t, "home-layout-2025-03-09.json", LayoutFilename("home", exportDay))
}

func TestServices_ReimportsCleanly(t *testing.T) {
	renewal := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	days := 45
	services := []domain.Service{
		{ServiceName: "Slack, Pro", Provider: "Slack", Amount: decimal.RequireFromString("8.75"), Currency: "USD",
			BillingCycle: domain.Monthly, NextRenewalDate: &renewal, Status: domain.ServiceActive},
		{ServiceName: "Backups", Provider: "Wasabi", Amount: decimal.NewFromInt(30), Currency: "EUR",
			BillingCycle: domain.CustomDays, CustomCycleDays: &days, Status: domain.ServicePaused},
	}

	file, err := Services(services, exportDay)
	require.NoError(t, err)
	assert.Equal(t, "services-export-2025-03-09.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)

	ds, err := importing.ParseCSV(bytes.NewReader(file.Data))
	require.NoError(t, err)
	require.Len(t, ds.Rows, 2)

	rt, rows, err := importing.Classify(ds, file.Name)
	require.NoError(t, err)
	assert.Equal(t, importing.Services, rt)

	svc, err := importing.MapServiceRow(1, rows[0])
	require.NoError(t, err)
	assert.Equal(t, "Slack, Pro", svc.ServiceName)
	require.NotNil(t, svc.NextRenewalDate)
	assert.True(t, renewal.Equal(*svc.NextRenewalDate))

	svc, err = importing.MapServiceRow(2, rows[1])
	require.NoError(t, err)
	require.NotNil(t, svc.CustomCycleDays)
	assert.Equal(t, 45, *svc.CustomCycleDays)
}

func TestPayments(t *testing.T) {
	payments := []domain.Payment{{ServiceID: "svc-1", Amount: decimal.NewFromInt(12), Currency: "USD",
		PaymentDate: exportDay, Status: domain.PaymentPaid}}

	file, err := Payments(payments, map[string]string{"svc-1": "GitHub"}, exportDay)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"GitHub", "12", "USD", "2025-03-09", "", "", "Paid", ""}, records[1])
}

func TestVendorsAndAssets(t *testing.T) {
	file, err := Vendors([]domain.Vendor{{Name: "Acme", Email: "ops@acme.io", IsActive: true}}, exportDay)
	require.NoError(t, err)
	assert.Equal(t, "vendors-export-2025-03-09.csv", file.Name)
	assert.Contains(t, string(file.Data), "Acme,,ops@acme.io,,,,true,")

	file, err = Assets([]domain.Asset{{Name: "Laptop", PurchaseCost: decimal.RequireFromString("1499.5"),
		CurrentBookValue: decimal.NewFromInt(1000), Currency: "JPY", Status: domain.AssetActive, Condition: domain.ConditionGood}}, exportDay)
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), "Laptop,,,,1500,1000,JPY,Active,Good,")
}

func TestLayout(t *testing.T) {
	file, err := Layout(domain.PageLayout{Name: "Home", PageKey: "home", Components: json.RawMessage(`[{"type":"hero"}]`)}, exportDay)
	require.NoError(t, err)
	assert.Equal(t, "application/json", file.ContentType)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(file.Data, &doc))
	assert.Equal(t, "home", doc["pageKey"])
	assert.Len(t, doc["components"], 1)

	file, err = Layout(domain.PageLayout{Name: "Blank", PageKey: "blank"}, exportDay)
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), `"components": []`)
}

func TestAssetRegisterPDF(t *testing.T) {
	entries := []RegisterEntry{
		{Asset: domain.Asset{Name: "A very long asset name that should be truncated in the register", AssetTag: "LAP-01",
			PurchaseCost: decimal.NewFromInt(1200), CurrentBookValue: decimal.NewFromInt(900), Currency: "USD", Status: domain.AssetActive},
			CategoryName: "Laptops", LocationName: "HQ"},
	}
	totals := domain.AggregateResult{Totals: []domain.CurrencyTotal{{Currency: "USD", Amount: decimal.NewFromInt(900)}}, ConvertedToUSD: decimal.NewFromInt(900)}

	file, err := AssetRegisterPDF("Acme", entries, totals, exportDay)
	require.NoError(t, err)
	assert.Equal(t, "asset-register-2025-03-09.pdf", file.Name)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
