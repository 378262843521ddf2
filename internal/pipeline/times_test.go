package pipeline

import (
	"errors"
	"testing"
)

func TestCalculateEventTimes(t *testing.T) {
	cases := []struct {
		name                      string
		game                      string
		meeting, warmup, duration int
		start, end                string
	}{
		{name: "plain", game: "12:30", duration: 120, start: "12:30", end: "14:30"},
		{name: "space after colon", game: "12: 15", duration: 120, start: "12:15", end: "14:15"},
		{name: "space before colon", game: "9 :30", duration: 75, start: "09:30", end: "10:45"},
		{name: "meeting buffer", game: "12:30", meeting: 45, duration: 90, start: "11:45", end: "14:00"},
		{name: "negative warmup", game: "12:30", warmup: -30, duration: 90, start: "12:00", end: "14:00"},
		{name: "meeting and warmup compose", game: "18:00", meeting: 15, warmup: -15, duration: 60, start: "17:30", end: "19:00"},
		{name: "seconds suffix", game: "10:05:00", duration: 60, start: "10:05", end: "11:05"},
		{name: "wraps past midnight", game: "23:30", duration: 120, start: "23:30", end: "01:30"},
		{name: "wraps before midnight", game: "00:15", meeting: 30, duration: 60, start: "23:45", end: "01:15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateEventTimes(tc.game, tc.meeting, tc.warmup, tc.duration)
			if err != nil {
				t.Fatal(err)
			}
			if got.StartTime != tc.start || got.EndTime != tc.end {
				t.Fatalf("got %+v want start=%s end=%s", got, tc.start, tc.end)
			}
		})
	}
}

func TestCalculateEventTimesRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "klo 12", "12.30", "25:00", "12:75", "1230"} {
		_, err := CalculateEventTimes(in, 0, 0, 75)
		var tfe *TimeFormatError
		if !errors.As(err, &tfe) {
			t.Fatalf("input %q: want TimeFormatError, got %v", in, err)
		}
	}
}

func TestAdjustStartTime(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		want    string
	}{
		{in: "12:30", minutes: 0, want: "12:30"},
		{in: "12: 30", minutes: 0, want: "12:30"},
		{in: "12: 15", minutes: 15, want: "12:30"},
		{in: "12:15", minutes: -30, want: "11:45"},
		{in: "23:50", minutes: 20, want: "00:10"},
	}
	for _, tc := range cases {
		got, err := AdjustStartTime(tc.in, tc.minutes)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("AdjustStartTime(%q, %d)=%q want %q", tc.in, tc.minutes, got, tc.want)
		}
	}
}

func TestAdjustStartTimeInvalid(t *testing.T) {
	if _, err := AdjustStartTime("noon", 15); err == nil {
		t.Fatal("expected error")
	}
}
