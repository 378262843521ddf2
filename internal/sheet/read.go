// Package sheet reads schedule exports into source rows and writes the import
// spreadsheet.
package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"fixtureconv/internal"
	"fixtureconv/internal/util"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type File struct {
	Name string
	Data []byte
}

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
)

// Read decodes one uploaded file. The extension picks the reader; ".xls" and
// unknown extensions are sniffed because schedule platforms commonly serve
// HTML tables or xlsx archives under the ".xls" name.
func Read(name string, data []byte) ([]internal.SourceRow, error) {
	var (
		rows []internal.SourceRow
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm":
		rows, err = ReadXLSX(name, data)
	case ".csv", ".txt", ".tsv":
		rows, err = ReadCSV(name, data)
	case ".htm", ".html":
		rows, err = ReadHTML(name, data)
	case ".eml":
		rows, err = ReadEmail(name, data)
	default:
		rows, err = readSniffed(name, data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}

func readSniffed(name string, data []byte) ([]internal.SourceRow, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return ReadXLSX(name, data)
	case looksLikeHTML(data):
		return ReadHTML(name, data)
	case bytes.HasPrefix(data, oleMagic):
		return nil, fmt.Errorf("%w: legacy binary .xls, save the file as .xlsx", ErrUnsupportedFormat)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func looksLikeHTML(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	lower := bytes.ToLower(bytes.TrimSpace(bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))))
	return bytes.HasPrefix(lower, []byte("<")) &&
		(bytes.Contains(lower, []byte("<html")) || bytes.Contains(lower, []byte("<table")) || bytes.Contains(lower, []byte("<!doctype")))
}

// ReadAll reads files concurrently with at most workers readers and returns
// their rows concatenated in input order.
func ReadAll(ctx context.Context, files []File, workers int) ([]internal.SourceRow, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([][]internal.SourceRow, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := Read(file.Name, file.Data)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, rows := range results {
		total += len(rows)
	}
	out := make([]internal.SourceRow, 0, total)
	for _, rows := range results {
		out = append(out, rows...)
	}
	return out, nil
}

// tableToRows treats the first non-blank row as the header row and keys every
// following non-blank row by header text.
func tableToRows(name string, table [][]internal.Cell) []internal.SourceRow {
	headerIdx := -1
	for i, cells := range table {
		if !blankRow(cells) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	headers := make([]string, len(table[headerIdx]))
	for i, c := range table[headerIdx] {
		headers[i] = util.NormalizeSpaces(c.Text)
	}

	out := make([]internal.SourceRow, 0, len(table)-headerIdx-1)
	for i := headerIdx + 1; i < len(table); i++ {
		cells := table[i]
		if blankRow(cells) {
			continue
		}
		row := internal.SourceRow{File: name, Line: i + 1, Cells: make(map[string]internal.Cell, len(headers))}
		for j, h := range headers {
			if h == "" || j >= len(cells) {
				continue
			}
			if _, dup := row.Cells[h]; dup {
				continue
			}
			row.Cells[h] = cells[j]
		}
		out = append(out, row)
	}
	return out
}

func blankRow(cells []internal.Cell) bool {
	for _, c := range cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func textCells(values []string) []internal.Cell {
	out := make([]internal.Cell, len(values))
	for i, v := range values {
		out[i] = internal.TextCell(v)
	}
	return out
}
