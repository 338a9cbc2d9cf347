package model

// Scope carries the identity of the caller through use cases and
// repositories. Every lookup is scoped to Scope.UserID.
type Scope struct {
	UserID string
}
