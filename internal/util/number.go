package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reThousands = regexp.MustCompile(`^[+-]?\d{1,3}(?:\s\d{3})+$`)

// FormatFixed2 renders a numeric cell the way the source export encodes
// day.month values: always two decimals, so 1.1 reads as "1.10".
func FormatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseIntOr parses a form or env value as a whole number. Decimal commas and
// a zero fractional part ("90,0") are accepted; anything else yields fallback.
func ParseIntOr(input string, fallback int) int {
	token := strings.TrimSpace(strings.ReplaceAll(input, "\u00A0", " "))
	if token == "" {
		return fallback
	}
	if reThousands.MatchString(token) {
		token = strings.ReplaceAll(token, " ", "")
	}
	if v, err := strconv.Atoi(token); err == nil {
		return v
	}
	token = strings.ReplaceAll(token, ",", ".")
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return fallback
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return fallback
	}
	return int(f)
}

func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
