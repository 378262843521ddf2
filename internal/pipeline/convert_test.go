package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"fixtureconv/internal"
	"fixtureconv/internal/config"
	"fixtureconv/internal/sheet"
)

func testConverter() *Converter {
	c := NewConverter(config.Config{
		DefaultGroupName:   "Tytöt 2014",
		DefaultDurationMin: 75,
		ReadWorkers:        2,
	})
	c.now = func() time.Time { return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func scheduleXLSX(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	rows := [][]any{
		{"Sarja", "Päivämäärä", "Aika", "Kenttä", "Kotijoukkue", "Vierasjoukkue"},
		{"11-vuotiaat tytöt I divisioona Eteläinen alue", 14.12, "12:30", "Puhu Areena", "Puhu Juniorit", "HNMKY/Stadi"},
		{"11-vuotiaat tytöt I divisioona Eteläinen alue", "11.1", "9: 30", "Leppävaaran liikuntahalli", "LePy", "HNMKY/Stadi"},
		{"11-vuotiaat tytöt III divisioona Eteläinen alue", "26,1", "12 :15", "Töölön kisahalli", "HNMKY/Stadi", "Beat Basket Black"},
		{"Harjoitusottelu", "", "", "", "", ""},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(name, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestConvertNoFiles(t *testing.T) {
	_, err := testConverter().Convert(context.Background(), nil, nil)
	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("want MissingFileError, got %v", err)
	}
}

func TestConvertXLSX(t *testing.T) {
	files := []sheet.File{{Name: "sarja.xlsx", Data: scheduleXLSX(t)}}
	values := map[string]string{
		KeyTargetYear:      "2025",
		KeyDurationMinutes: "120",
		KeyWarmupMinutes:   "-30",
		KeyMeetingMinutes:  "15",
	}

	res, err := testConverter().Convert(context.Background(), files, values)
	if err != nil {
		t.Fatal(err)
	}
	if res.Rows != 4 {
		t.Fatalf("rows=%d", res.Rows)
	}

	var starts []string
	for _, e := range res.Events {
		starts = append(starts, e.StartsAt+" "+e.EndsAt)
	}
	want := []string{
		"14.12.2025 11:45:00 14.12.2025 14:30:00",
		"11.01.2025 08:45:00 11.01.2025 11:30:00",
		"26.01.2025 11:30:00 26.01.2025 14:15:00",
	}
	if diff := cmp.Diff(want, starts); diff != "" {
		t.Fatalf("times mismatch (-want +got):\n%s", diff)
	}

	first := res.Events[0]
	if first.Title != "I div. Puhu Juniorit - HNMKY/Stadi" {
		t.Fatalf("title=%q", first.Title)
	}
	if first.Group != "Tytöt 2014" {
		t.Fatalf("group=%q", first.Group)
	}
	if first.Description != "Lämmittely: 12:00<br><b>Pelin alkamisaika:</b> 12:30" {
		t.Fatalf("description=%q", first.Description)
	}
}

func TestConvertDefaults(t *testing.T) {
	csv := []byte("Sarja;Päivämäärä;Aika;Kenttä;Kotijoukkue;Vierasjoukkue\nMiehet II divisioona;3.2;18:00;Halli;A;B\n")
	files := []sheet.File{{Name: "sarja.csv", Data: csv}}

	res, err := testConverter().Convert(context.Background(), files, map[string]string{KeyEventType: "Practice"})
	if err != nil {
		t.Fatal(err)
	}
	got := res.Events[0]
	if got.StartsAt != "03.02.2025 18:00:00" || got.EndsAt != "03.02.2025 19:15:00" {
		t.Fatalf("times %s - %s", got.StartsAt, got.EndsAt)
	}
	if got.EventType != string(internal.EventMatch) {
		t.Fatalf("event type=%q", got.EventType)
	}
	if got.Registration != string(internal.RegistrationSelectedPeople) {
		t.Fatalf("registration=%q", got.Registration)
	}
}

func TestConvertWrongLayout(t *testing.T) {
	csv := []byte("Nimi;Puhelin\nMatti;040\n")
	_, err := testConverter().Convert(context.Background(), []sheet.File{{Name: "x.csv", Data: csv}}, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestConvertToXLSX(t *testing.T) {
	files := []sheet.File{{Name: "sarja.xlsx", Data: scheduleXLSX(t)}}
	blob, res, err := testConverter().ConvertToXLSX(context.Background(), files, map[string]string{KeyTargetYear: "2025"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Events) != 3 {
		t.Fatalf("events=%d", len(res.Events))
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheet.SheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[2][0] != "I div. LePy - HNMKY/Stadi" {
		t.Fatalf("title=%q", rows[2][0])
	}
}
