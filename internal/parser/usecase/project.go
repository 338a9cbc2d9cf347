package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository"
)

// projectRe matches "#" followed by one or more path segments.
// Matching stops at the first character outside the segment alphabet.
var projectRe = regexp.MustCompile(`#[A-Za-z0-9_-]+(?:/[A-Za-z0-9_-]+)*`)

// findProjectRefs returns the span of every #reference in text, in
// order of appearance.
func findProjectRefs(text string) []span {
	var refs []span
	for _, loc := range projectRe.FindAllStringIndex(text, -1) {
		refs = append(refs, span{start: loc[0], end: loc[1]})
	}
	return refs
}

// resolveProject resolves one reference span against the project
// store. Single-segment names resolve by name, multi-segment by path;
// both case-insensitively, scoped to the owner. An unresolved
// reference is not an error: Found is false and the span stays
// populated so the marker can be stripped and highlighted as invalid.
func (uc *implUseCase) resolveProject(ctx context.Context, sc model.Scope, text string, ref span) (parser.ProjectMatch, error) {
	matchedText := text[ref.start:ref.end]
	name := matchedText[1:]

	var (
		project model.Project
		err     error
	)
	if strings.Contains(name, "/") {
		project, err = uc.repo.GetProjectByPath(ctx, repository.GetProjectByPathOptions{
			OwnerID: sc.UserID,
			Path:    name,
		})
	} else {
		project, err = uc.repo.GetProjectByName(ctx, repository.GetProjectByNameOptions{
			OwnerID: sc.UserID,
			Name:    name,
		})
	}
	if err != nil {
		return parser.ProjectMatch{}, err
	}

	match := parser.ProjectMatch{
		MatchedName: name,
		MatchedText: matchedText,
		StartPos:    ref.start,
		EndPos:      ref.end,
	}
	if !project.IsZero() {
		match.Project = &project
		match.Found = true
	}
	return match, nil
}
