package pipeline

import (
	"regexp"
	"strconv"
	"time"

	"fixtureconv/internal/util"
)

var reClock = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)

// anchorDay only gives minute arithmetic a calendar to wrap on. Results are
// clock times; crossing midnight does not carry into the date.
var anchorDay = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const clockLayout = "15:04"

type EventTimes struct {
	StartTime string
	EndTime   string
}

// CalculateEventTimes derives the event window from the game time:
// start = game - meeting + warmup, end = game + duration.
func CalculateEventTimes(gameTime string, meetingMinutes, warmupMinutes, durationMinutes int) (EventTimes, error) {
	game, err := parseClock(gameTime)
	if err != nil {
		return EventTimes{}, err
	}
	start := game.Add(time.Duration(warmupMinutes-meetingMinutes) * time.Minute)
	end := game.Add(time.Duration(durationMinutes) * time.Minute)
	return EventTimes{StartTime: start.Format(clockLayout), EndTime: end.Format(clockLayout)}, nil
}

// AdjustStartTime shifts t by minutes. A zero shift returns t with its
// whitespace removed and is not validated.
func AdjustStartTime(t string, minutes int) (string, error) {
	if minutes == 0 {
		return util.StripSpaces(t), nil
	}
	clock, err := parseClock(t)
	if err != nil {
		return "", err
	}
	return clock.Add(time.Duration(minutes) * time.Minute).Format(clockLayout), nil
}

func parseClock(raw string) (time.Time, error) {
	m := reClock.FindStringSubmatch(util.StripSpaces(raw))
	if m == nil {
		return time.Time{}, &TimeFormatError{Raw: raw}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, &TimeFormatError{Raw: raw}
	}
	return anchorDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}
