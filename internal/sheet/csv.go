package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"fixtureconv/internal"
)

var delimiters = []rune{';', ',', '\t'}

// ReadCSV reads a delimited text export. Every cell is text.
func ReadCSV(name string, data []byte) ([]internal.SourceRow, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	table := make([][]internal.Cell, len(records))
	for i, rec := range records {
		table[i] = textCells(rec)
	}
	return tableToRows(name, table), nil
}

// decodeText returns data as UTF-8. A BOM selects UTF-8 or UTF-16; bytes that
// are not valid UTF-8 are read as ISO-8859-15, the usual legacy Finnish
// spreadsheet encoding.
func decodeText(data []byte) (string, error) {
	if hasBOM(data) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, _, err := transform.Bytes(charmap.ISO8859_15.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE})
}

func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	best, bestCount := ',', 0
	for _, d := range delimiters {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
