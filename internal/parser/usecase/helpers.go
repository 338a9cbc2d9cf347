package usecase

import (
	"sort"
	"strings"
)

// span is a half-open [start, end) byte range into the raw input.
type span struct {
	start, end int
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// overlapsAny reports whether s overlaps any span already kept.
func overlapsAny(s span, kept []span) bool {
	for _, k := range kept {
		if s.overlaps(k) {
			return true
		}
	}
	return false
}

// removeSpans deletes the given ranges from text. Ranges are spliced in
// descending start order so earlier offsets stay valid, then runs of
// whitespace collapse to a single space.
func removeSpans(text string, spans []span) string {
	sorted := make([]span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start > sorted[j].start })

	for _, s := range sorted {
		text = text[:s.start] + text[s.end:]
	}
	return strings.Join(strings.Fields(text), " ")
}
