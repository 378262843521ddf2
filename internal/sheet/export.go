package sheet

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"fixtureconv/internal"
)

const (
	SheetName = "Tapahtumat"
	MimeXLSX  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var columnWidths = []float64{40, 45, 20, 18, 30, 20, 20, 18, 18}

func WriteXLSX(events []internal.NormalizedEvent) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, h := range internal.OutputColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(SheetName, cell, h); err != nil {
			return nil, err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, columnWidths[i]); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(internal.OutputColumns), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return nil, err
	}

	for i, event := range events {
		r := i + 2
		for col, value := range event.Values() {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			if err := f.SetCellStr(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func SaveXLSX(events []internal.NormalizedEvent, outputPath string) error {
	blob, err := WriteXLSX(events)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, blob, 0o644)
}
