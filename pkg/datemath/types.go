package datemath

import (
	"fmt"
	"time"
)

// DateFormat selects the field order for ambiguous numeric dates.
type DateFormat string

const (
	FormatMDY DateFormat = "MDY"
	FormatDMY DateFormat = "DMY"
	FormatYMD DateFormat = "YMD"
)

// Config holds the per-user settings the extractor runs with. It is
// immutable once built; construct a fresh one per request instead of
// mutating a shared instance.
type Config struct {
	dateFormat  DateFormat
	location    *time.Location
	startOfWeek int
}

// NewConfig validates and builds an extractor configuration.
// Invalid input is a caller bug and fails here, never during extraction.
func NewConfig(format DateFormat, timezone string, startOfWeek int) (Config, error) {
	switch format {
	case FormatMDY, FormatDMY, FormatYMD:
	case "":
		format = FormatMDY
	default:
		return Config{}, fmt.Errorf("unsupported date format %q", format)
	}

	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	if startOfWeek != 0 && startOfWeek != 1 {
		return Config{}, fmt.Errorf("invalid start of week %d (must be 0 or 1)", startOfWeek)
	}

	return Config{dateFormat: format, location: loc, startOfWeek: startOfWeek}, nil
}

// DefaultConfig returns the fallback configuration: MDY, UTC, week
// starting on Sunday.
func DefaultConfig() Config {
	return Config{dateFormat: FormatMDY, location: time.UTC, startOfWeek: 0}
}

// DateFormat returns the configured numeric field order.
func (c Config) DateFormat() DateFormat { return c.dateFormat }

// Location returns the configured timezone.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// StartOfWeek returns the configured first day of the week
// (0=Sunday, 1=Monday).
func (c Config) StartOfWeek() int { return c.startOfWeek }

// Match is one recognized date/time expression. Start and End are byte
// offsets into the original input, half-open.
type Match struct {
	Time      time.Time // resolved instant, start of day plus time of day if present
	TimeOfDay string    // "HH:MM", empty when no time was attached
	Text      string    // exact substring consumed, including any "at ..." suffix
	Start     int
	End       int
}

// HasTime reports whether a time of day was attached to the date.
func (m Match) HasTime() bool { return m.TimeOfDay != "" }
