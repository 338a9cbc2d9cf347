package parser

import (
	"time"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
)

// ParseInput is the input for one quick-add parse call.
type ParseInput struct {
	RawText  string             // Free text typed by the user
	Settings model.UserSettings // Display settings applied before parsing
}

// DateTimeMatch is one recognized date/time expression.
type DateTimeMatch struct {
	Instant     time.Time // resolved due instant in the user's timezone
	TimeOfDay   string    // "HH:MM", empty when no time was attached
	MatchedText string
	StartPos    int // byte offset into the raw text, inclusive
	EndPos      int // byte offset into the raw text, exclusive
	HasTime     bool
}

// ProjectMatch is one recognized #project reference. Project is nil
// when the reference did not resolve; the span is still populated so
// the marker can be stripped from the title and highlighted as invalid.
type ProjectMatch struct {
	Project     *model.Project
	MatchedName string // reference without the leading "#"
	MatchedText string
	StartPos    int
	EndPos      int
	Found       bool
}

// TagMatch is one resolved @tag reference. Tags are find-or-create, so
// a TagMatch always carries a tag; WasCreated reports whether the
// lookup minted a new one.
type TagMatch struct {
	Tag         model.Tag
	MatchedText string
	StartPos    int
	EndPos      int
	WasCreated  bool
}

// PriorityMatch is one recognized pN marker. Value is the parsed
// number as written, never clamped; Valid reports whether it is in the
// accepted 0-4 range.
type PriorityMatch struct {
	Value       int
	MatchedText string
	StartPos    int
	EndPos      int
	Valid       bool
}

// HighlightKind identifies what a highlighted span was recognized as.
type HighlightKind string

const (
	HighlightDate     HighlightKind = "date"
	HighlightProject  HighlightKind = "project"
	HighlightTag      HighlightKind = "tag"
	HighlightPriority HighlightKind = "priority"
)

// Highlight is a UI-facing annotation of one recognized span.
type Highlight struct {
	Kind     HighlightKind
	Text     string
	StartPos int
	EndPos   int
	Value    any // semantic payload: date string, project path, tag name, priority int
	Valid    bool
}

// ParseResult is the structured outcome of one parse call.
type ParseResult struct {
	Title    string
	DueDate  *time.Time // nil when no date was recognized
	DueTime  string     // "HH:MM", empty when no time of day
	HasTime  bool
	Project  *model.Project
	Tags     []model.Tag // insertion order, de-duplicated
	Priority *int        // nil when absent or invalid
	// Highlights are sorted ascending by StartPos.
	Highlights []Highlight
	Warnings   []string
}

// HasMetadata reports whether any structured field was extracted.
func (r ParseResult) HasMetadata() bool {
	return r.DueDate != nil || r.Project != nil || len(r.Tags) > 0 || r.Priority != nil
}

// HasWarnings reports whether the parse surfaced any anomalies.
func (r ParseResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}
