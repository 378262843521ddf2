package util

import "testing"

func TestParseIntOr(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{name: "plain", input: "120", want: 120},
		{name: "padded", input: "  45 ", want: 45},
		{name: "negative", input: "-15", want: -15},
		{name: "decimal comma zero fraction", input: "90,0", want: 90},
		{name: "decimal dot zero fraction", input: "90.00", want: 90},
		{name: "thousands space", input: "1 000", want: 1000},
		{name: "fraction falls back", input: "7.5", want: 75},
		{name: "text falls back", input: "abc", want: 75},
		{name: "empty falls back", input: "", want: 75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseIntOr(tc.input, 75); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestFormatFixed2(t *testing.T) {
	cases := map[float64]string{
		14.12: "14.12",
		1.1:   "1.10",
		26.1:  "26.10",
		7:     "7.00",
	}
	for in, want := range cases {
		if got := FormatFixed2(in); got != want {
			t.Fatalf("FormatFixed2(%v)=%q want %q", in, got, want)
		}
	}
}
