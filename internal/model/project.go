package model

// Project represents a project a task can be filed under.
// Projects form a tree: ParentID is empty for root projects.
type Project struct {
	ID       string // UUID
	OwnerID  string // User that owns the project
	Name     string // Display name, unique among siblings (case-insensitive)
	ParentID string // Parent project UUID, empty for roots
	FullPath string // Slash-joined path from root, e.g. "work/meetings"
	Color    string // Hex color for UI display, e.g. "#ff7043"
}

// IsZero reports whether the project is the zero value (not found).
func (p Project) IsZero() bool {
	return p.ID == ""
}
