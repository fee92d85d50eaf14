package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fekuna/omnipos-console/internal/report/dto"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Money formats an amount for display.
type Money func(decimal.Decimal) string

// SummaryPDF renders the report page as a one-page A4 document.
func SummaryPDF(s *dto.Summary, title string, money Money) ([]byte, error) {
	if money == nil {
		money = func(d decimal.Decimal) string { return d.StringFixed(2) }
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	section := func(name string) {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(name), "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
	}
	row := func(label, value string) {
		pdf.CellFormat(90, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(value), "", 1, "R", false, 0, "")
	}

	section("Overview")
	row("Total revenue", money(s.TotalRevenue))
	row("Total orders", strconv.Itoa(s.TotalOrders))
	row("Average order", money(s.AvgOrder))
	row("Products in stock", strconv.Itoa(s.InStock))
	row("Products out of stock", strconv.Itoa(s.OutOfStock))

	section("Revenue trend")
	for _, p := range s.RevenueSeries {
		row(p.Date, money(p.Value))
	}

	section("Order status")
	for _, c := range s.Status.Counts {
		row(string(c.Status), fmt.Sprintf("%d (%d%%)", c.Count, c.Count*100/s.Status.Total))
	}

	section("Top products")
	if len(s.TopProducts) == 0 {
		row("No sales data yet.", "")
	}
	for _, p := range s.TopProducts {
		row(p.Name, money(p.Revenue))
	}

	section("Recent orders")
	if len(s.RecentOrders) == 0 {
		row("No recent orders.", "")
	}
	for _, o := range s.RecentOrders {
		row(fmt.Sprintf("%s  %s  %s", o.ID, o.Date, o.CustomerName), money(o.TotalPrice))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
