package pipeline

import (
	"fmt"
	"strings"

	"fixtureconv/internal"
)

// UserErrorPrefix is shown in front of unexpected failures returned to callers.
const UserErrorPrefix = "Tiedoston käsittely epäonnistui: "

type MissingFileError struct{}

func (e *MissingFileError) Error() string {
	return "Tiedostoa ei löytynyt. Valitse ladattava tiedosto."
}

type DateFormatError struct {
	Raw string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected day and month separated by '.' or ','", e.Raw)
}

type TimeFormatError struct {
	Raw string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time %q: expected H:MM", e.Raw)
}

// ValidationError means no row of the input survived the pipeline, which
// points to a file with the wrong column layout.
type ValidationError struct {
	Rows int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"Tiedostosta ei löytynyt yhtään kelvollista otteluriviä (%d riviä luettu). Tarkista, että tiedostossa on sarakkeet: %s",
		e.Rows, strings.Join(internal.RequiredColumns, ", "),
	)
}
