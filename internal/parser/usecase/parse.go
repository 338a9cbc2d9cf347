package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser"
	"github.com/Matt-PMCT/todo-me-sub007/pkg/datemath"
)

// Parse decomposes raw text into a structured task. Extraction runs
// date → project → tags → priority; per-kind policy is leftmost-wins
// with a warning for dates, projects and priorities, and all-matches
// for tags. Later stages skip candidates overlapping an already kept
// span, so kept spans are always disjoint.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input parser.ParseInput) (parser.ParseResult, error) {
	raw := input.RawText
	if strings.TrimSpace(raw) == "" {
		return parser.ParseResult{}, nil
	}

	cfg, err := extractorConfig(input.Settings)
	if err != nil {
		uc.l.Warnf(ctx, "Parse: rejected settings for user=%s: %v", sc.UserID, err)
		return parser.ParseResult{}, err
	}

	uc.l.Debugf(ctx, "Parse: user=%s input_length=%d", sc.UserID, len(raw))

	var (
		res        parser.ParseResult
		kept       []span
		highlights []parser.Highlight
	)

	// Date: ExtractAll finds every candidate, the leftmost wins.
	anchor := uc.anchorFor(cfg.Location())
	dates := datemath.NewExtractor(cfg).ExtractAll(raw, anchor)
	if len(dates) > 0 {
		d := toDateTimeMatch(dates[0])
		instant := d.Instant
		res.DueDate = &instant
		res.DueTime = d.TimeOfDay
		res.HasTime = d.HasTime

		kept = append(kept, span{start: d.StartPos, end: d.EndPos})
		highlights = append(highlights, parser.Highlight{
			Kind:     parser.HighlightDate,
			Text:     d.MatchedText,
			StartPos: d.StartPos,
			EndPos:   d.EndPos,
			Value:    instant.Format(dueDateLayout),
			Valid:    true,
		})
		if len(dates) > 1 {
			res.Warnings = append(res.Warnings, warnMultipleDates)
		}
	}

	// Project: leftmost reference wins; only it hits the store.
	refs := dropOverlapping(findProjectRefs(raw), kept)
	if len(refs) > 0 {
		match, err := uc.resolveProject(ctx, sc, raw, refs[0])
		if err != nil {
			uc.l.Errorf(ctx, "Parse: project lookup %q: %v", raw[refs[0].start:refs[0].end], err)
			return parser.ParseResult{}, err
		}

		if len(refs) > 1 {
			res.Warnings = append(res.Warnings, warnMultipleProjects)
		}
		if match.Found {
			res.Project = match.Project
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf(warnProjectNotFoundFmt, match.MatchedName))
		}

		kept = append(kept, span{start: match.StartPos, end: match.EndPos})
		highlights = append(highlights, parser.Highlight{
			Kind:     parser.HighlightProject,
			Text:     match.MatchedText,
			StartPos: match.StartPos,
			EndPos:   match.EndPos,
			Value:    projectValue(match),
			Valid:    match.Found,
		})
	}

	// Tags: every distinct reference is kept, no ambiguity warning.
	// Duplicate occurrences still have their spans stripped from the
	// title even though only the first is resolved and highlighted.
	var tagRefs []tagRef
	var tagSpans []span
	for _, ref := range findTagRefs(raw) {
		if overlapsAny(ref.span, kept) {
			continue
		}
		tagRefs = append(tagRefs, ref)
		tagSpans = append(tagSpans, ref.span)
	}
	tags, err := uc.resolveTags(ctx, sc, tagRefs)
	if err != nil {
		uc.l.Errorf(ctx, "Parse: tag resolution: %v", err)
		return parser.ParseResult{}, err
	}
	kept = append(kept, tagSpans...)
	for _, tm := range tags {
		res.Tags = append(res.Tags, tm.Tag)
		highlights = append(highlights, parser.Highlight{
			Kind:     parser.HighlightTag,
			Text:     tm.MatchedText,
			StartPos: tm.StartPos,
			EndPos:   tm.EndPos,
			Value:    tm.Tag.Name,
			Valid:    true,
		})
	}

	// Priority: leftmost wins; out-of-range nulls the final value but
	// keeps the span and highlight.
	prios := dropPriorityOverlaps(findPriorities(raw), kept)
	if len(prios) > 0 {
		p := prios[0]
		if len(prios) > 1 {
			res.Warnings = append(res.Warnings, warnMultiplePriorities)
		}
		if p.Valid {
			value := p.Value
			res.Priority = &value
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf(warnInvalidPriorityFmt, p.Value))
		}

		kept = append(kept, span{start: p.StartPos, end: p.EndPos})
		highlights = append(highlights, parser.Highlight{
			Kind:     parser.HighlightPriority,
			Text:     p.MatchedText,
			StartPos: p.StartPos,
			EndPos:   p.EndPos,
			Value:    p.Value,
			Valid:    p.Valid,
		})
	}

	res.Title = removeSpans(raw, kept)

	sort.Slice(highlights, func(i, j int) bool { return highlights[i].StartPos < highlights[j].StartPos })
	res.Highlights = highlights

	return res, nil
}

// extractorConfig maps the user's display settings onto an extractor
// configuration. Invalid settings fail the call: they indicate a
// caller bug, not ambiguous user input.
func extractorConfig(s model.UserSettings) (datemath.Config, error) {
	cfg, err := datemath.NewConfig(datemath.DateFormat(s.DateFormat), s.Timezone, s.StartOfWeek)
	if err != nil {
		return datemath.Config{}, fmt.Errorf("%w: %v", parser.ErrInvalidSettings, err)
	}
	return cfg, nil
}

func toDateTimeMatch(m datemath.Match) parser.DateTimeMatch {
	return parser.DateTimeMatch{
		Instant:     m.Time,
		TimeOfDay:   m.TimeOfDay,
		MatchedText: m.Text,
		StartPos:    m.Start,
		EndPos:      m.End,
		HasTime:     m.HasTime(),
	}
}

func projectValue(m parser.ProjectMatch) any {
	if m.Found {
		return m.Project.FullPath
	}
	return m.MatchedName
}

func dropOverlapping(refs []span, kept []span) []span {
	var out []span
	for _, ref := range refs {
		if !overlapsAny(ref, kept) {
			out = append(out, ref)
		}
	}
	return out
}

func dropPriorityOverlaps(matches []parser.PriorityMatch, kept []span) []parser.PriorityMatch {
	var out []parser.PriorityMatch
	for _, m := range matches {
		if !overlapsAny(span{start: m.StartPos, end: m.EndPos}, kept) {
			out = append(out, m)
		}
	}
	return out
}
