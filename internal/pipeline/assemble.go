package pipeline

import (
	"context"
	"strconv"

	"fixtureconv/internal"
	applog "fixtureconv/internal/log"
	"fixtureconv/internal/util"
)

// Assemble turns source rows into import events. Rows without a date or time
// are skipped silently, rows that fail to parse are logged and skipped. Only
// an empty result is an error.
func Assemble(ctx context.Context, rows []internal.SourceRow, s internal.Settings) ([]internal.NormalizedEvent, error) {
	logger := applog.WithComponentFromContext(ctx, "assembler")

	out := make([]internal.NormalizedEvent, 0, len(rows))
	for _, row := range rows {
		rawTime := row.Get(internal.ColTime)
		rawDate := row.Get(internal.ColDate)
		if rawTime.IsEmpty() || rawDate.IsEmpty() {
			logger.Debug().Str("file", row.File).Int("line", row.Line).Msg("row without date or time skipped")
			continue
		}

		event, err := assembleRow(row, s)
		if err != nil {
			logger.Warn().Err(err).
				Str("file", row.File).
				Int("line", row.Line).
				Str("date", rawDate.String()).
				Str("time", rawTime.String()).
				Str("home", row.Get(internal.ColHome).String()).
				Str("away", row.Get(internal.ColAway).String()).
				Msg("row skipped")
			continue
		}
		out = append(out, event)
	}

	if len(out) == 0 {
		return nil, &ValidationError{Rows: len(rows)}
	}
	logger.Info().Int("rows", len(rows)).Int("events", len(out)).Msg("rows assembled")
	return out, nil
}

func assembleRow(row internal.SourceRow, s internal.Settings) (internal.NormalizedEvent, error) {
	day, err := NormalizeDate(row.Get(internal.ColDate))
	if err != nil {
		return internal.NormalizedEvent{}, err
	}

	gameTime := row.Get(internal.ColTime).String()
	times, err := CalculateEventTimes(gameTime, s.MeetingMinutes, s.WarmupMinutes, s.DurationMinutes)
	if err != nil {
		return internal.NormalizedEvent{}, err
	}

	description, err := CreateDescription(gameTime, s.WarmupMinutes)
	if err != nil {
		return internal.NormalizedEvent{}, err
	}

	date := day + strconv.Itoa(s.TargetYear)
	return internal.NormalizedEvent{
		Title: FormatEventName(
			row.Get(internal.ColSeries).String(),
			row.Get(internal.ColHome).String(),
			row.Get(internal.ColAway).String(),
		),
		Description:  description,
		Group:        s.GroupName,
		EventType:    string(ValidEventType(string(s.EventType))),
		Venue:        util.NormalizeSpaces(row.Get(internal.ColVenue).Text),
		StartsAt:     date + " " + times.StartTime + ":00",
		EndsAt:       date + " " + times.EndTime + ":00",
		Registration: string(ValidRegistration(string(s.Registration))),
		Visibility:   internal.VisibleToGroup,
	}, nil
}
