package pipeline

import (
	"regexp"
	"strings"

	"fixtureconv/internal/util"
)

// Only repeated-I numerals are recognised; "IV divisioona" yields no prefix.
var reDivision = regexp.MustCompile(`(?i)(?:^|\s)(I+)\s*divisioona`)

const (
	descriptionGameLabel   = "<b>Pelin alkamisaika:</b> "
	descriptionWarmupLabel = "Lämmittely: "
	descriptionLineBreak   = "<br>"
)

// FormatSeriesName extracts the division tag from a free-text series name:
// "11-vuotiaat tytöt I divisioona Eteläinen alue" -> "I div.".
func FormatSeriesName(series string) string {
	m := reDivision.FindStringSubmatch(series)
	if m == nil {
		return ""
	}
	return m[1] + " div."
}

func FormatEventName(series, homeTeam, awayTeam string) string {
	name := util.NormalizeSpaces(homeTeam) + " - " + util.NormalizeSpaces(awayTeam)
	if division := FormatSeriesName(series); division != "" {
		return division + " " + name
	}
	return name
}

func CreateDescription(originalTime string, warmupMinutes int) (string, error) {
	game := descriptionGameLabel + util.StripSpaces(originalTime)
	if warmupMinutes == 0 {
		return game, nil
	}
	warmup, err := AdjustStartTime(originalTime, warmupMinutes)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(descriptionWarmupLabel)
	b.WriteString(warmup)
	b.WriteString(descriptionLineBreak)
	b.WriteString(game)
	return b.String(), nil
}
