package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Extractor recognizes date/time expressions in free text and reports
// the exact span each one consumed. A single Extract call returns the
// earliest expression; ties at the same position go to the more
// specific pattern (ISO > named month > numeric > offset > weekday >
// relative keyword).
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor bound to the given configuration.
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Pattern families, one regex per recognized form.
var (
	relativeRe   = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday)\b`)
	offsetInRe   = regexp.MustCompile(`(?i)\bin\s+(a|\d+)\s+(days?|weeks?|months?)\b`)
	offsetNextRe = regexp.MustCompile(`(?i)\bnext\s+(week|month)\b`)
	weekdayRe    = regexp.MustCompile(`(?i)\b(?:(next|this)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|wed|thu|fri|sat|sun)\b`)

	monthNames = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`

	monthDayRe = regexp.MustCompile(`(?i)\b(` + monthNames + `)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	dayMonthRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)(?:,?\s+(\d{4}))?\b`)

	numericRe = regexp.MustCompile(`\b(\d{1,4})([/-])(\d{1,2})(?:([/-])(\d{1,4}))?\b`)
	isoRe     = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	timeSuffixRe = regexp.MustCompile(`(?i)^\s+at\s+(\d{1,2})(?::(\d{2}))?(am|pm)?\b`)
)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// candidate is an internal date match before the time suffix is applied.
type candidate struct {
	start, end int
	t          time.Time
}

// finder locates the leftmost valid match of one pattern family in
// text[from:], reporting absolute offsets.
type finder func(x *Extractor, text string, from int, anchor Anchor) (candidate, bool)

// Tie-break order: more specific families first.
var finders = []finder{
	(*Extractor).findISO,
	(*Extractor).findMonthDay,
	(*Extractor).findNumeric,
	(*Extractor).findOffset,
	(*Extractor).findWeekday,
	(*Extractor).findRelative,
}

// Extract returns the earliest date/time expression in text, or
// ok=false when none is present.
func (x *Extractor) Extract(text string, anchor Anchor) (Match, bool) {
	return x.extractFrom(text, 0, anchor)
}

// ExtractAll returns every date/time expression in text in order of
// appearance. Matches never overlap: the scan resumes past the end of
// each one.
func (x *Extractor) ExtractAll(text string, anchor Anchor) []Match {
	var all []Match
	from := 0
	for {
		m, ok := x.extractFrom(text, from, anchor)
		if !ok {
			return all
		}
		all = append(all, m)
		from = m.End
	}
}

func (x *Extractor) extractFrom(text string, from int, anchor Anchor) (Match, bool) {
	var best candidate
	found := false
	for _, f := range finders {
		c, ok := f(x, text, from, anchor)
		if !ok {
			continue
		}
		// Strict less keeps the earlier family on position ties.
		if !found || c.start < best.start {
			best = c
			found = true
		}
	}
	if !found {
		return Match{}, false
	}

	m := Match{Time: best.t, Start: best.start, End: best.end}
	x.attachTime(text, &m)
	m.Text = text[m.Start:m.End]
	return m, true
}

// attachTime extends the match with a trailing "at H[:MM][am|pm]"
// suffix when one immediately follows the date span.
func (x *Extractor) attachTime(text string, m *Match) {
	rest := text[m.End:]
	idx := timeSuffixRe.FindStringSubmatchIndex(rest)
	if idx == nil {
		return
	}

	group := func(n int) string {
		if idx[2*n] < 0 {
			return ""
		}
		return rest[idx[2*n]:idx[2*n+1]]
	}

	hour, _ := strconv.Atoi(group(1))
	minute := 0
	if group(2) != "" {
		minute, _ = strconv.Atoi(group(2))
	}
	meridiem := strings.ToLower(group(3))

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return
		}
	}
	if minute > 59 {
		return
	}

	loc := x.cfg.Location()
	d := m.Time.In(loc)
	m.Time = time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
	m.TimeOfDay = twoDigit(hour) + ":" + twoDigit(minute)
	m.End += idx[1]
}

func (x *Extractor) findRelative(text string, from int, anchor Anchor) (candidate, bool) {
	loc := relativeRe.FindStringIndex(text[from:])
	if loc == nil {
		return candidate{}, false
	}

	day := anchor.StartOfDay()
	switch strings.ToLower(text[from+loc[0] : from+loc[1]]) {
	case "tomorrow":
		day = day.AddDate(0, 0, 1)
	case "yesterday":
		day = day.AddDate(0, 0, -1)
	}
	return candidate{start: from + loc[0], end: from + loc[1], t: day}, true
}

func (x *Extractor) findOffset(text string, from int, anchor Anchor) (candidate, bool) {
	best := candidate{}
	found := false

	if idx := offsetInRe.FindStringSubmatchIndex(text[from:]); idx != nil {
		amountStr := strings.ToLower(text[from+idx[2] : from+idx[3]])
		unit := strings.ToLower(text[from+idx[4] : from+idx[5]])

		amount := 1
		if amountStr != "a" {
			amount, _ = strconv.Atoi(amountStr)
		}

		day := anchor.StartOfDay()
		switch {
		case strings.HasPrefix(unit, "day"):
			day = day.AddDate(0, 0, amount)
		case strings.HasPrefix(unit, "week"):
			day = day.AddDate(0, 0, amount*7)
		case strings.HasPrefix(unit, "month"):
			day = day.AddDate(0, amount, 0)
		}
		best = candidate{start: from + idx[0], end: from + idx[1], t: day}
		found = true
	}

	if idx := offsetNextRe.FindStringSubmatchIndex(text[from:]); idx != nil {
		if !found || from+idx[0] < best.start {
			unit := strings.ToLower(text[from+idx[2] : from+idx[3]])
			day := anchor.StartOfDay()
			if unit == "week" {
				day = day.AddDate(0, 0, 7)
			} else {
				day = day.AddDate(0, 1, 0)
			}
			best = candidate{start: from + idx[0], end: from + idx[1], t: day}
			found = true
		}
	}

	return best, found
}

func (x *Extractor) findWeekday(text string, from int, anchor Anchor) (candidate, bool) {
	idx := weekdayRe.FindStringSubmatchIndex(text[from:])
	if idx == nil {
		return candidate{}, false
	}

	prefix := ""
	if idx[2] >= 0 {
		prefix = strings.ToLower(text[from+idx[2] : from+idx[3]])
	}
	target := weekdays[strings.ToLower(text[from+idx[4]:from+idx[5]])]

	day := anchor.StartOfDay()
	delta := (int(target) - int(day.Weekday()) + 7) % 7
	if delta == 0 && prefix != "this" {
		// A bare or "next" weekday never resolves to today.
		delta = 7
	}

	return candidate{
		start: from + idx[0],
		end:   from + idx[1],
		t:     day.AddDate(0, 0, delta),
	}, true
}

func (x *Extractor) findMonthDay(text string, from int, anchor Anchor) (candidate, bool) {
	for from < len(text) {
		idx, monthStr, dayStr, yearStr := findNamedDate(text, from)
		if idx == nil {
			return candidate{}, false
		}

		month := months[strings.ToLower(monthStr)]
		day, _ := strconv.Atoi(dayStr)

		t, ok := x.resolveAbsolute(anchor, yearStr, int(month), day)
		if ok {
			return candidate{start: idx[0], end: idx[1], t: t}, true
		}
		from = idx[1]
	}
	return candidate{}, false
}

// findNamedDate locates the leftmost "Month D" or "D Month" expression
// at or after from, with absolute offsets.
func findNamedDate(text string, from int) (idx []int, month, day, year string) {
	md := monthDayRe.FindStringSubmatchIndex(text[from:])
	dm := dayMonthRe.FindStringSubmatchIndex(text[from:])

	pick := func(raw []int, monthGroup, dayGroup, yearGroup int) ([]int, string, string, string) {
		abs := []int{from + raw[0], from + raw[1]}
		y := ""
		if raw[2*yearGroup] >= 0 {
			y = text[from+raw[2*yearGroup] : from+raw[2*yearGroup+1]]
		}
		return abs,
			text[from+raw[2*monthGroup] : from+raw[2*monthGroup+1]],
			text[from+raw[2*dayGroup] : from+raw[2*dayGroup+1]],
			y
	}

	switch {
	case md == nil && dm == nil:
		return nil, "", "", ""
	case dm == nil || (md != nil && md[0] <= dm[0]):
		return pick(md, 1, 2, 3)
	default:
		return pick(dm, 2, 1, 3)
	}
}

func (x *Extractor) findNumeric(text string, from int, anchor Anchor) (candidate, bool) {
	for from < len(text) {
		idx := numericRe.FindStringSubmatchIndex(text[from:])
		if idx == nil {
			return candidate{}, false
		}

		group := func(n int) string {
			if idx[2*n] < 0 {
				return ""
			}
			return text[from+idx[2*n] : from+idx[2*n+1]]
		}

		t, ok := x.resolveNumeric(anchor, group(1), group(2), group(3), group(4), group(5))
		if ok {
			return candidate{start: from + idx[0], end: from + idx[1], t: t}, true
		}
		from += idx[1]
	}
	return candidate{}, false
}

// resolveNumeric interprets f1<sep1>f2[<sep2>f3] per the configured
// field order. Mixed separators are rejected.
func (x *Extractor) resolveNumeric(anchor Anchor, f1, sep1, f2, sep2, f3 string) (time.Time, bool) {
	if f3 != "" && sep1 != sep2 {
		return time.Time{}, false
	}

	a, _ := strconv.Atoi(f1)
	b, _ := strconv.Atoi(f2)

	var yearStr string
	var month, day int

	switch x.cfg.dateFormat {
	case FormatDMY:
		day, month = a, b
		yearStr = f3
	case FormatYMD:
		// Year-first requires all three fields.
		if f3 == "" || len(f1) != 4 {
			return time.Time{}, false
		}
		c, _ := strconv.Atoi(f3)
		return x.resolveAbsolute(anchor, f1, b, c)
	default: // MDY
		month, day = a, b
		yearStr = f3
	}
	if len(f1) > 2 {
		return time.Time{}, false
	}

	return x.resolveAbsolute(anchor, yearStr, month, day)
}

func (x *Extractor) findISO(text string, from int, anchor Anchor) (candidate, bool) {
	for from < len(text) {
		idx := isoRe.FindStringSubmatchIndex(text[from:])
		if idx == nil {
			return candidate{}, false
		}

		year := text[from+idx[2] : from+idx[3]]
		month, _ := strconv.Atoi(text[from+idx[4] : from+idx[5]])
		day, _ := strconv.Atoi(text[from+idx[6] : from+idx[7]])

		t, ok := x.resolveAbsolute(anchor, year, month, day)
		if ok {
			return candidate{start: from + idx[0], end: from + idx[1], t: t}, true
		}
		from += idx[1]
	}
	return candidate{}, false
}

// resolveAbsolute builds a concrete date. With no explicit year, a
// month/day on or before the anchor date rolls to next year; an
// explicit year is honored verbatim.
func (x *Extractor) resolveAbsolute(anchor Anchor, yearStr string, month, day int) (time.Time, bool) {
	loc := x.cfg.Location()
	today := anchor.StartOfDay()

	if yearStr != "" {
		year, _ := strconv.Atoi(yearStr)
		if len(yearStr) <= 2 {
			year += 2000
		}
		return makeDate(year, month, day, loc)
	}

	t, ok := makeDate(today.Year(), month, day, loc)
	if !ok {
		return time.Time{}, false
	}
	if !t.After(today) {
		return makeDate(today.Year()+1, month, day, loc)
	}
	return t, true
}

// makeDate validates via round trip: time.Date normalizes out-of-range
// values, so "Feb 31" comes back as a different month/day.
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
