package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository"
)

// tagRe matches a word-bounded "@name". The leading group keeps
// "user@host" from reading as a tag.
var tagRe = regexp.MustCompile(`(?:^|[^A-Za-z0-9_])(@([A-Za-z0-9_-]+))`)

// tagRef is one @name occurrence before resolution.
type tagRef struct {
	span
	name string
}

// findTagRefs returns every @name occurrence in text, in order.
func findTagRefs(text string) []tagRef {
	var refs []tagRef
	for _, idx := range tagRe.FindAllStringSubmatchIndex(text, -1) {
		refs = append(refs, tagRef{
			span: span{start: idx[2], end: idx[3]},
			name: text[idx[4]:idx[5]],
		})
	}
	return refs
}

// resolveTags resolves every tag reference via find-or-create.
// Duplicate names (case-insensitive) collapse to the first-occurring
// span; every occurrence span is still reported for title removal.
func (uc *implUseCase) resolveTags(ctx context.Context, sc model.Scope, refs []tagRef) ([]parser.TagMatch, error) {
	var matches []parser.TagMatch
	seen := make(map[string]bool)

	for _, ref := range refs {
		key := strings.ToLower(ref.name)
		if seen[key] {
			continue
		}
		seen[key] = true

		tag, created, err := uc.repo.FindOrCreateTag(ctx, repository.FindOrCreateTagOptions{
			OwnerID: sc.UserID,
			Name:    ref.name,
		})
		if err != nil {
			return nil, err
		}

		matches = append(matches, parser.TagMatch{
			Tag:         tag,
			MatchedText: "@" + ref.name,
			StartPos:    ref.start,
			EndPos:      ref.end,
			WasCreated:  created,
		})
	}
	return matches, nil
}
