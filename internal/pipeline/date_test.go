package pipeline

import (
	"errors"
	"regexp"
	"testing"

	"fixtureconv/internal"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name string
		in   internal.Cell
		want string
	}{
		{name: "dotted", in: internal.TextCell("14.12"), want: "14.12."},
		{name: "single digit month", in: internal.TextCell("11.1"), want: "11.01."},
		{name: "comma", in: internal.TextCell("26,1"), want: "26.01."},
		{name: "single digits", in: internal.TextCell("1.2"), want: "01.02."},
		{name: "padded text", in: internal.TextCell(" 3.4 "), want: "03.04."},
		{name: "numeric keeps day.month encoding", in: internal.NumberCell(14.12), want: "14.12."},
		{name: "numeric trailing zero month", in: internal.NumberCell(1.1), want: "01.10."},
	}

	shape := regexp.MustCompile(`^\d{2}\.\d{2}\.$`)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDate(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
			if !shape.MatchString(got) {
				t.Fatalf("bad shape %q", got)
			}
		})
	}
}

func TestNormalizeDateRejectsWrongSegmentCount(t *testing.T) {
	for _, in := range []string{"2025.12.14", "14", "", "14.12.", "a.b", "14.123"} {
		_, err := NormalizeDate(internal.TextCell(in))
		var dfe *DateFormatError
		if !errors.As(err, &dfe) {
			t.Fatalf("input %q: want DateFormatError, got %v", in, err)
		}
	}
}
