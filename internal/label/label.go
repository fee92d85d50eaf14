// Package label renders printable product labels: one QR code per product with
// its name, id and price underneath.
package label

import (
	"bytes"
	"fmt"

	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Config is the sheet layout in millimetres on A4 portrait.
type Config struct {
	Cols       int
	Rows       int
	MarginTop  float64
	MarginLeft float64
	GapX       float64
	GapY       float64
	// Prefix is prepended to the product id in the QR payload.
	Prefix string
}

func DefaultConfig() Config {
	return Config{
		Cols:       3,
		Rows:       8,
		MarginTop:  10,
		MarginLeft: 8,
		GapX:       3,
		GapY:       2,
		Prefix:     "OMNIPOS/",
	}
}

// Payload is the text encoded in a product's QR code.
func Payload(prefix string, p model.Product) string {
	return prefix + p.ID
}

// GeneratePDF lays the products out left to right, top to bottom, starting a
// new page when the sheet is full.
func GeneratePDF(products []model.Product, cfg Config, formatPrice func(model.Product) string) ([]byte, error) {
	if cfg.Cols < 1 || cfg.Rows < 1 {
		return nil, fmt.Errorf("invalid label grid %dx%d", cfg.Cols, cfg.Rows)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no products to print")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Arial", "B", 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := 210.0, 297.0
	availW := pageWidth - cfg.MarginLeft*2
	availH := pageHeight - cfg.MarginTop*2
	labelW := (availW - float64(cfg.Cols-1)*cfg.GapX) / float64(cfg.Cols)
	labelH := (availH - float64(cfg.Rows-1)*cfg.GapY) / float64(cfg.Rows)
	perPage := cfg.Cols * cfg.Rows

	for i, p := range products {
		if i%perPage == 0 {
			pdf.AddPage()
		}
		slot := i % perPage
		x := cfg.MarginLeft + float64(slot%cfg.Cols)*(labelW+cfg.GapX)
		y := cfg.MarginTop + float64(slot/cfg.Cols)*(labelH+cfg.GapY)

		png, err := qrcode.Encode(Payload(cfg.Prefix, p), qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("encode qr for product %s: %w", p.ID, err)
		}

		imgName := fmt.Sprintf("qr_%d", i)
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))

		qrSize := labelH * 0.6
		if qrSize > labelW {
			qrSize = labelW * 0.9
		}
		pdf.ImageOptions(imgName, x+(labelW-qrSize)/2, y+1, qrSize, qrSize, false, opts, 0, "")

		pdf.SetXY(x, y+qrSize+1)
		pdf.SetFontSize(7)
		pdf.CellFormat(labelW, 3.5, tr(p.Name), "", 2, "C", false, 0, "")
		pdf.SetFontSize(6)
		pdf.CellFormat(labelW, 3, tr(p.ID), "", 2, "C", false, 0, "")
		if formatPrice != nil {
			pdf.CellFormat(labelW, 3, tr(formatPrice(p)), "", 0, "C", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render labels: %w", err)
	}
	return buf.Bytes(), nil
}
