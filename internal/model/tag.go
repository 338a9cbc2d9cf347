package model

// Tag is a label attached to tasks. Tags are flat and owner-scoped;
// names are unique per owner (case-insensitive).
type Tag struct {
	ID      string // UUID
	OwnerID string // User that owns the tag
	Name    string // Display name as first typed by the user
	Color   string // Hex color for UI display
}
