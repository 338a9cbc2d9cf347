package model

// DateFormat selects the field order used when interpreting ambiguous
// numeric dates like "3/4/2026".
type DateFormat string

const (
	DateFormatMDY DateFormat = "MDY" // month/day/year (default)
	DateFormatDMY DateFormat = "DMY" // day/month/year
	DateFormatYMD DateFormat = "YMD" // year-month-day
)

// Start-of-week values follow time.Weekday numbering.
const (
	StartOfWeekSunday = 0
	StartOfWeekMonday = 1
)

// UserSettings are the per-user display settings the parser is
// configured with before each parse. Read-only from the parser's side.
type UserSettings struct {
	Timezone    string     // IANA name, e.g. "America/New_York"
	DateFormat  DateFormat // numeric date field order
	StartOfWeek int        // 0=Sunday, 1=Monday
}

// DefaultUserSettings returns the settings applied when a user has not
// configured any.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Timezone:    "UTC",
		DateFormat:  DateFormatMDY,
		StartOfWeek: StartOfWeekSunday,
	}
}
