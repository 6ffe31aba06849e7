package importing

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := "service_name,provider,amount\n" +
		"\"Slack\",\"Slack Inc\",\"8.75\"\n" +
		"\n" +
		"Broken,row\n" +
		"Zoom,Zoom Video,15\n"

	ds, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"service_name", "provider", "amount"}, ds.Columns)
	require.Len(t, ds.Rows, 2, "rows with a mismatched field count are dropped")
	assert.Equal(t, "Slack", ds.Rows[0]["service_name"])
	assert.Equal(t, "8.75", ds.Rows[0]["amount"])
	assert.Equal(t, "Zoom Video", ds.Rows[1]["provider"])
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = ParseCSV(strings.NewReader("name,email\n"))
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestParseJSON(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		ds, err := ParseJSON([]byte(`[{"name":"Acme","email":"ops@acme.io"},{"name":"Globex","active":false,"rating":4.5}]`))
		require.NoError(t, err)
		require.Len(t, ds.Rows, 2)
		assert.Equal(t, "false", ds.Rows[1]["active"])
		assert.Equal(t, "4.5", ds.Rows[1]["rating"])
		assert.Equal(t, []string{"email", "name", "active", "rating"}, ds.Columns)
	})

	t.Run("single object", func(t *testing.T) {
		ds, err := ParseJSON([]byte(`{"service_name":"GitHub","provider":"GitHub","amount":21}`))
		require.NoError(t, err)
		require.Len(t, ds.Rows, 1)
		assert.Equal(t, "21", ds.Rows[0]["amount"])
		assert.False(t, ds.IsSystemExport())
	})

	t.Run("system export", func(t *testing.T) {
		ds, err := ParseJSON([]byte(`{"services":[],"vendors":[{"name":"Acme"}],"exported_at":"2025-01-01"}`))
		require.NoError(t, err)
		assert.True(t, ds.IsSystemExport())
		assert.Len(t, ds.Export[Vendors], 1)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"name":`))
		assert.Error(t, err)
		_, err = ParseJSON([]byte(`"just a string"`))
		assert.Error(t, err)
		_, err = ParseJSON([]byte(`[1,2]`))
		assert.Error(t, err)
	})
}

func TestParse_PicksParser(t *testing.T) {
	ds, err := Parse("upload.bin", []byte(` [{"name":"Acme"}]`))
	require.NoError(t, err)
	assert.Len(t, ds.Rows, 1)

	ds, err = Parse("vendors.CSV", []byte("name\nAcme\n"))
	require.NoError(t, err)
	assert.Len(t, ds.Rows, 1)
}

func TestClassify_SystemExport(t *testing.T) {
	ds, err := ParseJSON([]byte(`{"services":[],"payments":[],"vendors":[{"name":"Acme"}]}`))
	require.NoError(t, err)

	rt, rows, err := Classify(ds, "backup.json")
	require.NoError(t, err)
	assert.Equal(t, Vendors, rt)
	assert.Len(t, rows, 1)
}

func TestClassify_SystemExportPrefersFilenameHint(t *testing.T) {
	ds, err := ParseJSON([]byte(`{"services":[{"service_name":"Slack","provider":"Slack"}],"vendors":[{"name":"Acme"}]}`))
	require.NoError(t, err)

	rt, _, err := Classify(ds, "vendor-backup.json")
	require.NoError(t, err)
	assert.Equal(t, Vendors, rt)

	rt, _, err = Classify(ds, "backup.json")
	require.NoError(t, err)
	assert.Equal(t, Services, rt, "services win when no hint is given")
}

func TestClassify_SystemExportEmpty(t *testing.T) {
	ds, err := ParseJSON([]byte(`{"services":[],"payments":[]}`))
	require.NoError(t, err)
	_, _, err = Classify(ds, "x.json")
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestClassify_ByFilenameThenColumns(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		columns  []string
		want     RecordType
	}{
		{name: "filename payment", filename: "Payments_2025.csv", columns: []string{"name", "provider"}, want: Payments},
		{name: "filename vendor", filename: "my-vendors.csv", columns: []string{"foo"}, want: Vendors},
		{name: "service columns", filename: "data.csv", columns: []string{"Title", "Provider", "Renewal Date"}, want: Services},
		{name: "payment columns", filename: "data.csv", columns: []string{"invoice_no", "amount"}, want: Payments},
		{name: "bare amount column", filename: "data.csv", columns: []string{"Amount", "Date"}, want: Payments},
		{name: "supplier column", filename: "data.csv", columns: []string{"supplier", "city"}, want: Vendors},
		{name: "name with contact info", filename: "data.csv", columns: []string{"Name", "Email"}, want: Vendors},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &Dataset{Columns: tt.columns, Rows: []Row{{}}}
			rt, _, err := Classify(ds, tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rt)
		})
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	ds := &Dataset{Columns: []string{"colour", "size"}, Rows: []Row{{"colour": "red", "size": "L"}}}
	_, _, err := Classify(ds, "data.csv")

	var unrecognized *UnrecognizedError
	require.True(t, errors.As(err, &unrecognized))
	assert.Contains(t, err.Error(), "Available columns: colour, size")
}

func TestMapServiceRow(t *testing.T) {
	row := Row{
		"Name":              "Notion",
		"Company":           "Notion Labs",
		"Cost":              "$1,200.50",
		"currency":          "eur",
		"Billing Cycle":     "yearly",
		"next_renewal_date": "2025-11-01",
		"Status":            "paused",
		"auto_renew":        "yes",
	}

	svc, err := MapServiceRow(1, row)
	require.NoError(t, err)
	assert.Equal(t, "Notion", svc.ServiceName)
	assert.Equal(t, "Notion Labs", svc.Provider)
	assert.Equal(t, "1200.5", svc.Amount.String())
	assert.Equal(t, "EUR", svc.Currency)
	assert.Equal(t, domain.Annual, svc.BillingCycle)
	require.NotNil(t, svc.NextRenewalDate)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), *svc.NextRenewalDate)
	assert.Equal(t, domain.ServicePaused, svc.Status)
	assert.True(t, svc.AutoRenew)
}

func TestMapServiceRow_Defaults(t *testing.T) {
	svc, err := MapServiceRow(1, Row{"service_name": "Figma", "provider": "Figma"})
	require.NoError(t, err)
	assert.Equal(t, domain.Monthly, svc.BillingCycle)
	assert.Equal(t, domain.ServiceActive, svc.Status)
	assert.Equal(t, domain.USD, svc.Currency)
	assert.True(t, svc.Amount.IsZero())
}

func TestMapServiceRow_Failures(t *testing.T) {
	tests := []struct {
		name    string
		row     Row
		message string
	}{
		{name: "no name", row: Row{"provider": "AWS", "amount": "10"}, message: "Row 3: missing service_name. Available columns: amount, provider"},
		{name: "no provider", row: Row{"title": "S3"}, message: "Row 3: missing provider"},
		{name: "custom without days", row: Row{"service_name": "x", "provider": "y", "billing_cycle": "Custom_days"}, message: "custom_cycle_days is required"},
		{name: "bad cycle", row: Row{"service_name": "x", "provider": "y", "cycle": "hourly"}, message: "unknown billing_cycle"},
		{name: "bad date", row: Row{"service_name": "x", "provider": "y", "renewal_date": "soon"}, message: "invalid date"},
		{name: "bad currency", row: Row{"service_name": "x", "provider": "y", "currency": "dollars"}, message: "invalid value"},
		{name: "bad amount", row: Row{"service_name": "x", "provider": "y", "amount": "ten"}, message: "invalid amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapServiceRow(3, tt.row)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestMapPaymentRow(t *testing.T) {
	resolve := func(name string) (string, bool) {
		if name == "Slack" {
			return "svc-slack", true
		}
		return "", false
	}
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	p, err := MapPaymentRow(1, Row{"service": "Slack", "amount": "8.75", "date": "2025-05-02", "invoice": "INV-1", "status": "pending"}, resolve, now)
	require.NoError(t, err)
	assert.Equal(t, "svc-slack", p.ServiceID)
	assert.Equal(t, "8.75", p.Amount.String())
	assert.Equal(t, "INV-1", p.Reference)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Equal(t, 2, p.PaymentDate.Day())

	p, err = MapPaymentRow(1, Row{"service_name": "Slack", "amount": "1"}, resolve, now)
	require.NoError(t, err)
	assert.Equal(t, now, p.PaymentDate)
	assert.Equal(t, domain.PaymentPaid, p.Status)

	_, err = MapPaymentRow(2, Row{"service_name": "Zoom", "amount": "1"}, resolve, now)
	assert.ErrorContains(t, err, `Row 2: no service named "Zoom"`)

	_, err = MapPaymentRow(2, Row{"service_name": "Slack"}, resolve, now)
	assert.ErrorContains(t, err, "missing amount")
}

func TestMapVendorRow(t *testing.T) {
	v, err := MapVendorRow(1, Row{"Vendor Name": "Acme", "Email": "ops@acme.io", "Phone": "+1 555", "active": "no"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", v.Name)
	assert.Equal(t, "ops@acme.io", v.Email)
	assert.False(t, v.IsActive)

	_, err = MapVendorRow(4, Row{"Email": "not-an-email", "name": "Acme"})
	assert.ErrorContains(t, err, "Row 4: invalid value")

	_, err = MapVendorRow(5, Row{"city": "Paris"})
	assert.ErrorContains(t, err, "Row 5: missing name. Available columns: city")
}

func TestParseBillingCycle(t *testing.T) {
	for in, want := range map[string]domain.BillingCycle{
		"Monthly":     domain.Monthly,
		"QUARTERLY":   domain.Quarterly,
		"Semi-Annual": domain.SemiAnnual,
		"half_yearly": domain.SemiAnnual,
		"Annual":      domain.Annual,
		"Custom_days": domain.CustomDays,
	} {
		got, ok := ParseBillingCycle(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseBillingCycle("weekly")
	assert.False(t, ok)
}
