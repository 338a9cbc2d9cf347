package usecase

import (
	"time"

	"github.com/Matt-PMCT/todo-me-sub007/internal/parser/repository"
	"github.com/Matt-PMCT/todo-me-sub007/pkg/datemath"
	"github.com/Matt-PMCT/todo-me-sub007/pkg/log"
)

// AnchorFactory builds the "now" anchor for a parse call, resolved in
// the user's timezone. Production wiring passes datemath.NewSystemAnchor;
// tests pass a fixed anchor.
type AnchorFactory func(loc *time.Location) datemath.Anchor

type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	anchorFor AnchorFactory
}

// New creates a new parser UseCase instance.
func New(l log.Logger, repo repository.Repository, anchorFor AnchorFactory) *implUseCase {
	if anchorFor == nil {
		anchorFor = datemath.NewSystemAnchor
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		anchorFor: anchorFor,
	}
}
