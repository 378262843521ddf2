package sheet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"fixtureconv/internal"
	"fixtureconv/internal/util"
)

// ReadHTML reads an HTML-table export. The first table whose header row names
// at least one required column wins; otherwise the first table with data.
func ReadHTML(name string, data []byte) ([]internal.SourceRow, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("decode html: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var fallback [][]internal.Cell
	var chosen [][]internal.Cell
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		grid := [][]internal.Cell{}
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			values := []string{}
			tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				values = append(values, util.NormalizeSpaces(cell.Text()))
			})
			grid = append(grid, textCells(values))
		})
		if len(grid) < 2 {
			return true
		}
		if fallback == nil {
			fallback = grid
		}
		if hasRequiredHeader(grid) {
			chosen = grid
			return false
		}
		return true
	})

	if chosen == nil {
		chosen = fallback
	}
	if chosen == nil {
		return nil, fmt.Errorf("html has no table with data rows")
	}
	return tableToRows(name, chosen), nil
}

func hasRequiredHeader(grid [][]internal.Cell) bool {
	for _, cells := range grid {
		if blankRow(cells) {
			continue
		}
		for _, c := range cells {
			if slices.Contains(internal.RequiredColumns, util.NormalizeSpaces(c.Text)) {
				return true
			}
		}
		return false
	}
	return false
}
