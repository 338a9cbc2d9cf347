package parser

import (
	"context"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
)

// UseCase defines the business logic interface for the parser domain.
type UseCase interface {
	// Parse decomposes free text into a structured task: title, due
	// date/time, project, tags and priority, with the span of every
	// recognized token. Ambiguity and invalid values surface as
	// warnings, never as errors; the only error conditions are invalid
	// user settings and repository failures.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseResult, error)
}
