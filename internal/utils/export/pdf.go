package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/utils"
	"github.com/phpdave11/gofpdf"
)

// RegisterEntry is one line of the asset register.
type RegisterEntry struct {
	Asset        domain.Asset
	CategoryName string
	LocationName string
}

// AssetRegisterPDF renders the asset register as an A4 landscape PDF.
func AssetRegisterPDF(company string, entries []RegisterEntry, totals domain.AggregateResult, now time.Time) (*File, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Asset Register", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	title := "Asset Register"
	if company != "" {
		title = company + " - " + title
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s   Assets: %d", now.Format("2006-01-02 15:04"), len(entries)))
	pdf.Ln(10)

	widths := []float64{60, 30, 40, 40, 32, 32, 20, 23}
	headers := []string{"Name", "Tag", "Category", "Location", "Cost", "Book Value", "Currency", "Status"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range entries {
		a := e.Asset
		cells := []string{
			truncate(a.Name, 40), a.AssetTag, truncate(e.CategoryName, 24), truncate(e.LocationName, 24),
			utils.FormatMoney(a.PurchaseCost, a.Currency), utils.FormatMoney(a.CurrentBookValue, a.Currency),
			a.Currency, string(a.Status),
		}
		for i, c := range cells {
			align := "L"
			if i == 4 || i == 5 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Book value by currency")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	for _, t := range totals.Totals {
		pdf.Cell(0, 6, fmt.Sprintf("%s  %s", t.Currency, utils.FormatMoney(t.Amount, t.Currency)))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Total (USD): %s", utils.FormatMoney(totals.ConvertedToUSD, domain.USD)))
	pdf.Ln(5)
	if len(totals.Unconverted) > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Not converted: %v", totals.Unconverted))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render asset register: %w", err)
	}
	return &File{
		Name:        fmt.Sprintf("asset-register-%s.pdf", now.Format(dateLayout)),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
