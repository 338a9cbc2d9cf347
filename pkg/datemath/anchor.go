package datemath

import "time"

// Anchor supplies "now" for relative date math. All arithmetic is done
// against StartOfDay in the anchor's timezone.
type Anchor interface {
	Now() time.Time
	StartOfDay() time.Time
}

type systemAnchor struct {
	loc *time.Location
}

// NewSystemAnchor returns an Anchor backed by the wall clock, resolved
// in the given timezone.
func NewSystemAnchor(loc *time.Location) Anchor {
	if loc == nil {
		loc = time.UTC
	}
	return systemAnchor{loc: loc}
}

func (a systemAnchor) Now() time.Time {
	return time.Now().In(a.loc)
}

func (a systemAnchor) StartOfDay() time.Time {
	now := a.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)
}

type fixedAnchor struct {
	now time.Time
}

// NewFixedAnchor returns an Anchor pinned to the given instant. Used by
// tests to make relative dates deterministic.
func NewFixedAnchor(now time.Time) Anchor {
	return fixedAnchor{now: now}
}

func (a fixedAnchor) Now() time.Time {
	return a.now
}

func (a fixedAnchor) StartOfDay() time.Time {
	return time.Date(a.now.Year(), a.now.Month(), a.now.Day(), 0, 0, 0, 0, a.now.Location())
}
