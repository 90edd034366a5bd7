package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

const excelSheet = "Ödemeler"

// Excel encodes payments as an XLSX workbook with a single sheet, the
// same columns as the CSV export, and a trailing total row.
func Excel(payments []domain.Payment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, fmt.Errorf("report.Excel: %w", err)
	}
	// NewFile always creates "Sheet1"; drop it so ours is the only sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("report.Excel: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range csvHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(excelSheet, cell, header); err != nil {
			return nil, fmt.Errorf("report.Excel: %w", err)
		}
	}

	row := 2
	for _, p := range payments {
		cells := []any{
			p.CreatedAt.Format("2006-01-02"),
			hourLabel(p.Hour),
			p.User,
			p.Amount,
			string(p.Type),
			p.Location,
		}
		for i, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(excelSheet, cell, v); err != nil {
				return nil, fmt.Errorf("report.Excel: %w", err)
			}
		}
		row++
	}

	totalLabelCell, _ := excelize.CoordinatesToCellName(3, row)
	totalValueCell, _ := excelize.CoordinatesToCellName(4, row)
	if err := f.SetCellValue(excelSheet, totalLabelCell, "Toplam"); err != nil {
		return nil, fmt.Errorf("report.Excel: %w", err)
	}
	if err := f.SetCellValue(excelSheet, totalValueCell, totalOf(payments)); err != nil {
		return nil, fmt.Errorf("report.Excel: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("report.Excel: %w", err)
	}
	return buf.Bytes(), nil
}
