// Package export renders a configuration and its bill of materials to
// handoff formats: a quotation PDF, an Excel workbook, and a top-view
// DXF floor plan.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/modernheim/dressroom/internal/bom"
	"github.com/modernheim/dressroom/internal/model"
)

// Quotation page layout (A4 portrait, mm).
const (
	quoteMarginLeft  = 20.0
	quoteMarginRight = 20.0
	quoteMarginTop   = 20.0
	quotePageWidth   = 210.0
	quoteRowHeight   = 7.0
	quoteQRSize      = 28.0

	colItemW = 95.0
	colQtyW  = 20.0
	colUnitW = 27.5
	colAmtW  = 27.5
)

// ExportQuotation writes the priced estimate as an A4 PDF. The footer
// carries a QR code encoding the configuration JSON so a printed quote
// can be scanned back into a working configuration.
func ExportQuotation(path string, cfg model.GlobalConfig, b bom.BOM) error {
	if len(b.Lines) == 0 {
		return fmt.Errorf("nothing to quote: configuration has no parts")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(quoteMarginLeft, quoteMarginTop)
	pdf.CellFormat(0, 8, "Modern Heim - Estimate", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.SetX(quoteMarginLeft)
	sub := fmt.Sprintf("Frame: %s  |  Shelf: %s  |  Modules: %d",
		cfg.FrameColor.Label(), cfg.ShelfColor.Label(), len(cfg.Bays))
	pdf.CellFormat(0, 6, sub, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetX(quoteMarginLeft)
	pdf.CellFormat(colItemW, quoteRowHeight, "Item", "B", 0, "L", true, 0, "")
	pdf.CellFormat(colQtyW, quoteRowHeight, "Qty", "B", 0, "C", true, 0, "")
	pdf.CellFormat(colUnitW, quoteRowHeight, "Unit", "B", 0, "R", true, 0, "")
	pdf.CellFormat(colAmtW, quoteRowHeight, "Amount", "B", 1, "R", true, 0, "")

	// Rows
	pdf.SetFont("Helvetica", "", 9)
	for _, li := range b.Lines {
		pdf.SetX(quoteMarginLeft)
		pdf.CellFormat(colItemW, quoteRowHeight, li.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(colQtyW, quoteRowHeight, fmt.Sprintf("%d", li.Quantity), "B", 0, "C", false, 0, "")
		pdf.CellFormat(colUnitW, quoteRowHeight, formatKRW(li.UnitPrice), "B", 0, "R", false, 0, "")
		pdf.CellFormat(colAmtW, quoteRowHeight, formatKRW(li.Amount()), "B", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	totalsX := quoteMarginLeft + colItemW

	writeTotal := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.SetX(totalsX)
		pdf.CellFormat(colQtyW+colUnitW, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(colAmtW, 6, value, "", 1, "R", false, 0, "")
	}

	writeTotal("Subtotal", formatKRW(b.Subtotal), false)
	writeTotal("VAT (10%)", formatKRW(int(b.VAT)), false)
	writeTotal("Shipping (10%)", formatKRW(int(b.Shipping)), false)
	writeTotal("Total", formatKRW(int(b.Total)), true)

	if err := drawConfigQR(pdf, cfg); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// drawConfigQR places a QR code with the configuration JSON in the
// bottom-left corner of the current page.
func drawConfigQR(pdf *fpdf.Fpdf, cfg model.GlobalConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	const imgName = "config_qr"
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	_, pageH := pdf.GetPageSize()
	qrY := pageH - quoteQRSize - 12
	pdf.ImageOptions(imgName, quoteMarginLeft, qrY, quoteQRSize, quoteQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(quoteMarginLeft, qrY+quoteQRSize)
	pdf.CellFormat(quoteQRSize, 3.5, "Scan to reload configuration", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

// formatKRW renders an amount with the currency suffix quotes carry.
func formatKRW(v int) string {
	return bom.FormatKRW(v) + " KRW"
}
