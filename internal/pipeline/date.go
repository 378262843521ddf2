package pipeline

import (
	"strings"

	"fixtureconv/internal"
	"fixtureconv/internal/util"
)

// NormalizeDate turns a day/month cell ("14.12", "11.1", "26,1" or the number
// 14.12) into "DD.MM.". The year is appended later.
func NormalizeDate(raw internal.Cell) (string, error) {
	text := raw.Text
	if raw.Numeric {
		text = util.FormatFixed2(raw.Number)
	}
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")

	parts := strings.Split(text, ".")
	if len(parts) != 2 {
		return "", &DateFormatError{Raw: raw.Text}
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !util.IsDigits(p) || len(p) > 2 {
			return "", &DateFormatError{Raw: raw.Text}
		}
		if len(p) == 1 {
			p = "0" + p
		}
		parts[i] = p
	}
	return parts[0] + "." + parts[1] + ".", nil
}
