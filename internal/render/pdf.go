package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/godilite/ride-insights/internal/service"
	"github.com/phpdave11/gofpdf"
)

const (
	pdfMargin    = 15.0
	pdfPageWidth = 210.0
	pdfRowHeight = 7.0
)

// The core PDF fonts are cp1252; symbols outside it are spelled out.
var pdfSymbols = strings.NewReplacer("₹", "Rs.")

// PDF renders panel as a one-page A4 report and returns it with a suggested filename.
func PDF(panel service.Panel) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(panel.Title, false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfSymbols.Replace(s)) }

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, text(panel.Title))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	switch {
	case panel.Status != service.StatusOK:
		pdf.MultiCell(0, 6, text(panel.Notice), "", "", false)
	case panel.Home != nil:
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 8, text(panel.Home.Heading))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, text(panel.Home.Summary), "", "", false)
		pdf.Ln(3)
		for _, f := range panel.Home.Features {
			pdf.Cell(0, 6, text("- "+f))
			pdf.Ln(6)
		}
		pdf.Ln(3)
		pdf.Cell(0, 6, text(panel.Home.LinkText+": "+panel.Home.LinkURL))
	default:
		if panel.Message != nil {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 7, text(panel.Message.Text), "", "", false)
			pdf.Ln(3)
			pdf.SetFont("Helvetica", "", 12)
		}
		for _, m := range panel.Metrics {
			pdf.Cell(0, 7, text(fmt.Sprintf("%s: %s", m.Label, m.Display)))
			pdf.Ln(7)
		}
		if panel.Table != nil {
			pdfTable(pdf, text, panel.Table)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), panel.Slug + ".pdf", nil
}

func pdfTable(pdf *gofpdf.Fpdf, text func(string) string, table *service.Table) {
	if len(table.Columns) == 0 {
		return
	}
	width := (pdfPageWidth - 2*pdfMargin) / float64(len(table.Columns))
	fontSize := 10.0
	if len(table.Columns) > 6 {
		fontSize = 5
	}

	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range table.Columns {
		pdf.CellFormat(width, pdfRowHeight, text(c), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", fontSize)
	for _, row := range table.Rows {
		for _, v := range row {
			pdf.CellFormat(width, pdfRowHeight, text(service.FormatValue(v)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
