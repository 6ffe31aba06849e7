// Package export renders records as downloadable CSV, JSON and PDF files.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/utils"
)

const dateLayout = "2006-01-02"

// File is a rendered export ready to be sent to the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// CSVFilename follows the "{entity}-export-{yyyy-MM-dd}.csv" pattern.
func CSVFilename(entity string, now time.Time) string {
	return fmt.Sprintf("%s-export-%s.csv", entity, now.Format(dateLayout))
}

// LayoutFilename follows the "{pageKey}-layout-{yyyy-MM-dd}.json" pattern.
func LayoutFilename(pageKey string, now time.Time) string {
	return fmt.Sprintf("%s-layout-%s.json", pageKey, now.Format(dateLayout))
}

func writeCSV(entity string, now time.Time, header []string, rows [][]string) (*File, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}
	return &File{Name: CSVFilename(entity, now), ContentType: "text/csv", Data: buf.Bytes()}, nil
}

// Services renders services using the same column names the importer understands.
func Services(services []domain.Service, now time.Time) (*File, error) {
	header := []string{"service_name", "provider", "amount", "currency", "billing_cycle", "custom_cycle_days",
		"start_date", "next_renewal_date", "next_renewal_amount", "status", "auto_renew", "notes"}
	rows := make([][]string, 0, len(services))
	for _, s := range services {
		customDays := ""
		if s.CustomCycleDays != nil {
			customDays = strconv.Itoa(*s.CustomCycleDays)
		}
		renewalAmount := ""
		if s.NextRenewalAmount != nil {
			renewalAmount = s.NextRenewalAmount.String()
		}
		rows = append(rows, []string{
			s.ServiceName, s.Provider, s.Amount.String(), s.Currency, string(s.BillingCycle), customDays,
			formatDate(s.StartDate), formatDate(s.NextRenewalDate), renewalAmount, string(s.Status),
			strconv.FormatBool(s.AutoRenew), s.Notes,
		})
	}
	return writeCSV("services", now, header, rows)
}

// Payments renders payments with the service name resolved through names.
func Payments(payments []domain.Payment, names map[string]string, now time.Time) (*File, error) {
	header := []string{"service_name", "amount", "currency", "payment_date", "payment_method", "reference", "status", "notes"}
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			names[p.ServiceID], p.Amount.String(), p.Currency, p.PaymentDate.Format(dateLayout),
			p.PaymentMethod, p.Reference, string(p.Status), p.Notes,
		})
	}
	return writeCSV("payments", now, header, rows)
}

// Vendors renders vendors.
func Vendors(vendors []domain.Vendor, now time.Time) (*File, error) {
	header := []string{"name", "contact_person", "email", "phone", "website", "address", "is_active", "notes"}
	rows := make([][]string, 0, len(vendors))
	for _, v := range vendors {
		rows = append(rows, []string{v.Name, v.ContactPerson, v.Email, v.Phone, v.Website, v.Address, strconv.FormatBool(v.IsActive), v.Notes})
	}
	return writeCSV("vendors", now, header, rows)
}

// Assets renders assets with amounts formatted to their currency precision.
func Assets(assets []domain.Asset, now time.Time) (*File, error) {
	header := []string{"name", "asset_tag", "serial_number", "purchase_date", "purchase_cost", "current_book_value", "currency", "status", "condition", "notes"}
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{
			a.Name, a.AssetTag, a.SerialNumber, formatDate(a.PurchaseDate),
			utils.FormatMoney(a.PurchaseCost, a.Currency), utils.FormatMoney(a.CurrentBookValue, a.Currency),
			a.Currency, string(a.Status), string(a.Condition), a.Notes,
		})
	}
	return writeCSV("assets", now, header, rows)
}

type layoutDocument struct {
	Name        string          `json:"name"`
	PageKey     string          `json:"pageKey"`
	Components  json.RawMessage `json:"components"`
	IsPublished bool            `json:"isPublished"`
	ExportedAt  time.Time       `json:"exportedAt"`
}

// Layout renders a page layout as an indented JSON document.
func Layout(l domain.PageLayout, now time.Time) (*File, error) {
	components := l.Components
	if len(components) == 0 {
		components = json.RawMessage("[]")
	}
	data, err := json.MarshalIndent(layoutDocument{
		Name:        l.Name,
		PageKey:     l.PageKey,
		Components:  components,
		IsPublished: l.IsPublished,
		ExportedAt:  now.UTC(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode layout: %w", err)
	}
	return &File{Name: LayoutFilename(l.PageKey, now), ContentType: "application/json", Data: data}, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
