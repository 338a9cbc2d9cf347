package repository

// GetProjectByNameOptions holds parameters for a single-segment
// project lookup.
type GetProjectByNameOptions struct {
	OwnerID string
	Name    string
}

// GetProjectByPathOptions holds parameters for a multi-segment project
// lookup. Path is slash-separated, e.g. "work/meetings", traversed
// parent to child with no depth limit.
type GetProjectByPathOptions struct {
	OwnerID string
	Path    string
}

// FindOrCreateTagOptions holds parameters for a tag lookup. Name keeps
// the user's casing; matching is case-insensitive.
type FindOrCreateTagOptions struct {
	OwnerID string
	Name    string
}

// CreateProjectOptions holds parameters for inserting a new project.
// The parser never creates projects; this exists for seeding and tests.
type CreateProjectOptions struct {
	OwnerID  string
	Name     string
	ParentID string
	Color    string
}
