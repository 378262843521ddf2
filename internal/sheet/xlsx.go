package sheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"fixtureconv/internal"
)

// ReadXLSX reads the first worksheet. Cells stored as numbers keep their raw
// value next to the displayed text, so a day.month date typed as 11.10 is not
// mistaken for 11.1.
func ReadXLSX(name string, data []byte) ([]internal.SourceRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	sheet := sheets[0]

	display, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	table := make([][]internal.Cell, len(display))
	for r, values := range display {
		cells := make([]internal.Cell, len(values))
		for c, text := range values {
			cells[c] = internal.Cell{Text: text}
			rawValue := pick(raw, r, c)
			if rawValue == "" {
				continue
			}
			if num, ok := numericCell(f, sheet, r, c, rawValue); ok {
				cells[c].Number = num
				cells[c].Numeric = true
			}
		}
		table[r] = cells
	}

	return tableToRows(name, table), nil
}

func numericCell(f *excelize.File, sheet string, r, c int, rawValue string) (float64, bool) {
	axis, err := excelize.CoordinatesToCellName(c+1, r+1)
	if err != nil {
		return 0, false
	}
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return 0, false
	}
	if typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber {
		return 0, false
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

func pick(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}
