package internal

import (
	"strconv"
	"strings"
)

// Source export headers. Matched exactly after trimming whitespace.
const (
	ColSeries = "Sarja"
	ColDate   = "Päivämäärä"
	ColTime   = "Aika"
	ColVenue  = "Kenttä"
	ColHome   = "Kotijoukkue"
	ColAway   = "Vierasjoukkue"
)

var RequiredColumns = []string{ColSeries, ColDate, ColTime, ColVenue, ColHome, ColAway}

// Target import headers, in output order.
const (
	LabelTitle        = "Nimi"
	LabelDescription  = "Kuvaus"
	LabelGroup        = "Ryhmä"
	LabelEventType    = "Tapahtuman tyyppi"
	LabelVenue        = "Paikka"
	LabelStartsAt     = "Alkaa"
	LabelEndsAt       = "Päättyy"
	LabelRegistration = "Ilmoittautuminen"
	LabelVisibility   = "Näkyvyys"
)

var OutputColumns = []string{
	LabelTitle, LabelDescription, LabelGroup, LabelEventType, LabelVenue,
	LabelStartsAt, LabelEndsAt, LabelRegistration, LabelVisibility,
}

const VisibleToGroup = "Näkyy ryhmälle"

type EventType string

const (
	EventMatch EventType = "Match"
	EventOther EventType = "Other"
)

type RegistrationPolicy string

const (
	RegistrationSelectedPeople RegistrationPolicy = "SelectedPeople"
	RegistrationGroupMembers   RegistrationPolicy = "GroupMembers"
	RegistrationClub           RegistrationPolicy = "Club"
)

// Cell is a spreadsheet value that was stored either as text or as a number.
type Cell struct {
	Text    string
	Number  float64
	Numeric bool
}

func TextCell(s string) Cell { return Cell{Text: s} }

func NumberCell(f float64) Cell {
	return Cell{Text: strconv.FormatFloat(f, 'f', -1, 64), Number: f, Numeric: true}
}

func (c Cell) IsEmpty() bool {
	return !c.Numeric && strings.TrimSpace(c.Text) == ""
}

func (c Cell) String() string {
	return strings.TrimSpace(c.Text)
}

type SourceRow struct {
	File  string
	Line  int
	Cells map[string]Cell
}

func (r SourceRow) Get(column string) Cell {
	return r.Cells[column]
}

type Settings struct {
	TargetYear      int
	DurationMinutes int
	WarmupMinutes   int
	MeetingMinutes  int
	GroupName       string
	EventType       EventType
	Registration    RegistrationPolicy
}

type NormalizedEvent struct {
	Title        string `json:"Nimi"`
	Description  string `json:"Kuvaus"`
	Group        string `json:"Ryhmä"`
	EventType    string `json:"Tapahtuman tyyppi"`
	Venue        string `json:"Paikka"`
	StartsAt     string `json:"Alkaa"`
	EndsAt       string `json:"Päättyy"`
	Registration string `json:"Ilmoittautuminen"`
	Visibility   string `json:"Näkyvyys"`
}

// Values returns the event fields in OutputColumns order.
func (e NormalizedEvent) Values() []string {
	return []string{
		e.Title, e.Description, e.Group, e.EventType, e.Venue,
		e.StartsAt, e.EndsAt, e.Registration, e.Visibility,
	}
}
