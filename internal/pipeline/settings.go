package pipeline

import (
	"slices"
	"strings"
	"time"

	"fixtureconv/internal"
	"fixtureconv/internal/util"
)

// Keys of a submitted settings bundle (form fields, CLI flags).
const (
	KeyTargetYear      = "targetYear"
	KeyDurationMinutes = "durationMinutes"
	KeyWarmupMinutes   = "warmupMinutes"
	KeyMeetingMinutes  = "meetingMinutes"
	KeyGroupName       = "groupName"
	KeyEventType       = "eventType"
	KeyRegistration    = "registrationPolicy"
)

var SettingKeys = []string{
	KeyTargetYear, KeyDurationMinutes, KeyWarmupMinutes, KeyMeetingMinutes,
	KeyGroupName, KeyEventType, KeyRegistration,
}

const (
	DefaultDurationMinutes = 75
	DefaultGroupName       = "Joukkue"
)

func DefaultSettings(now time.Time, groupName string, durationMinutes int) internal.Settings {
	if strings.TrimSpace(groupName) == "" {
		groupName = DefaultGroupName
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	return internal.Settings{
		TargetYear:      now.Year(),
		DurationMinutes: durationMinutes,
		GroupName:       groupName,
		EventType:       internal.EventMatch,
		Registration:    internal.RegistrationSelectedPeople,
	}
}

// ParseSettings overlays submitted values on defaults. Unknown enum values
// and unparsable numbers keep the default instead of failing the request.
func ParseSettings(values map[string]string, defaults internal.Settings) internal.Settings {
	s := defaults
	s.TargetYear = util.ParseIntOr(values[KeyTargetYear], defaults.TargetYear)
	s.DurationMinutes = util.ParseIntOr(values[KeyDurationMinutes], defaults.DurationMinutes)
	s.WarmupMinutes = util.ParseIntOr(values[KeyWarmupMinutes], defaults.WarmupMinutes)
	s.MeetingMinutes = util.ParseIntOr(values[KeyMeetingMinutes], defaults.MeetingMinutes)
	if group := util.NormalizeSpaces(values[KeyGroupName]); group != "" {
		s.GroupName = group
	}
	s.EventType = ValidEventType(values[KeyEventType])
	s.Registration = ValidRegistration(values[KeyRegistration])
	return s
}

func ValidEventType(v string) internal.EventType {
	t := internal.EventType(strings.TrimSpace(v))
	if slices.Contains(EventTypes, t) {
		return t
	}
	return internal.EventMatch
}

func ValidRegistration(v string) internal.RegistrationPolicy {
	p := internal.RegistrationPolicy(strings.TrimSpace(v))
	if slices.Contains(RegistrationPolicies, p) {
		return p
	}
	return internal.RegistrationSelectedPeople
}

var (
	EventTypes           = []internal.EventType{internal.EventMatch, internal.EventOther}
	RegistrationPolicies = []internal.RegistrationPolicy{
		internal.RegistrationSelectedPeople, internal.RegistrationGroupMembers, internal.RegistrationClub,
	}
)
