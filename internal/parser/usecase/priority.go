package usecase

import (
	"regexp"
	"strconv"

	"github.com/Matt-PMCT/todo-me-sub007/internal/parser"
)

// priorityRe matches "p" plus digits with word boundaries on both
// sides, rejecting embedded forms like "help1", "p1a" or "ap1".
var priorityRe = regexp.MustCompile(`(?i)\bp(\d+)\b`)

// findPriorities returns every pN marker in text, in order. Values are
// parsed as written and never clamped; Valid flags the 0-4 range.
func findPriorities(text string) []parser.PriorityMatch {
	var matches []parser.PriorityMatch
	for _, idx := range priorityRe.FindAllStringSubmatchIndex(text, -1) {
		value, err := strconv.Atoi(text[idx[2]:idx[3]])
		matches = append(matches, parser.PriorityMatch{
			Value:       value,
			MatchedText: text[idx[0]:idx[1]],
			StartPos:    idx[0],
			EndPos:      idx[1],
			Valid:       err == nil && value >= priorityMin && value <= priorityMax,
		})
	}
	return matches
}
