package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhillyerd/enmime"

	"fixtureconv/internal"
)

// ReadEmail reads a saved e-mail (.eml) and concatenates the rows of every
// spreadsheet attachment in attachment order.
func ReadEmail(name string, data []byte) ([]internal.SourceRow, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read email: %w", err)
	}

	parts := append([]*enmime.Part{}, env.Attachments...)
	parts = append(parts, env.Inlines...)

	var (
		out  []internal.SourceRow
		errs []error
		seen int
	)
	for _, att := range parts {
		filename := strings.TrimSpace(att.FileName)
		if !isSpreadsheetName(filename) {
			continue
		}
		seen++
		rows, err := Read(filename, att.Content)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for i := range rows {
			rows[i].File = name + "/" + filename
		}
		out = append(out, rows...)
	}

	if seen == 0 {
		return nil, fmt.Errorf("%w: email has no spreadsheet attachments", ErrUnsupportedFormat)
	}
	if len(out) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func isSpreadsheetName(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls", ".csv", ".htm", ".html":
		return true
	default:
		return false
	}
}
