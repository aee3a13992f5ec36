package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/modernheim/dressroom/internal/bom"
	"github.com/modernheim/dressroom/internal/model"
)

// ExportWorkbook writes the bill of materials as an .xlsx workbook with
// one row per aggregated line item followed by a totals block.
func ExportWorkbook(path string, cfg model.GlobalConfig, b bom.BOM) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "BOM"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Item", "Category", "Width", "Qty", "Unit Price", "Amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, li := range b.Lines {
		values := []any{li.Name, string(li.Category), li.NominalWidth, li.Quantity, li.UnitPrice, li.Amount()}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	row++ // blank separator row
	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal", float64(b.Subtotal)},
		{"VAT (10%)", b.VAT},
		{"Shipping (10%)", b.Shipping},
		{"Total", b.Total},
	}
	for _, t := range totals {
		labelCell, err := excelize.CoordinatesToCellName(5, row)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(6, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, labelCell, t.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCell, t.value); err != nil {
			return err
		}
		row++
	}

	infoCell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return err
	}
	info := fmt.Sprintf("Frame: %s / Shelf: %s / Modules: %d",
		cfg.FrameColor.Label(), cfg.ShelfColor.Label(), len(cfg.Bays))
	if err := f.SetCellValue(sheet, infoCell, info); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
