package export

import (
	"bytes"
	"fmt"

	"freight_pricing/internal/domain/pricing"

	"github.com/xuri/excelize/v2"
)

const curveSheet = "Curve"

// CurveWorkbook renders a price-curve preview as an .xlsx workbook: one row per
// sampled weight plus a summary block with the breakpoints and FTL reference.
func CurveWorkbook(mode string, preview pricing.CurvePreview) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(curveSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Weight (kg)", "Total (EUR)", "Per kg (EUR)"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(curveSheet, cell, header)
	}

	for row, p := range preview.Points {
		data := []interface{}{p.WeightKg, p.TotalEUR, p.PerKgEUR}
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(curveSheet, cell, value)
		}
	}

	summary := [][2]interface{}{
		{"Mode", mode},
		{"Start (kg)", preview.StartKg},
		{"End (kg)", preview.EndKg},
		{"p1", preview.P1},
		{"p2", preview.P2},
		{"p3", preview.P3},
		{"FTL reference (EUR)", preview.FTLReferenceEUR},
	}
	for row, kv := range summary {
		f.SetCellValue(curveSheet, fmt.Sprintf("E%d", row+1), kv[0])
		f.SetCellValue(curveSheet, fmt.Sprintf("F%d", row+1), kv[1])
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(curveSheet, "A1", "C1", style)
	f.SetCellStyle(curveSheet, "E1", fmt.Sprintf("E%d", len(summary)), style)

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
