package types

// CheatSheet entry types.
const (
	CheatSheetNote    = "note"
	CheatSheetSnippet = "snippet"
)

// CheatSheet is a reusable study note or code snippet.
type CheatSheet struct {
	// ID is the server-assigned identifier.
	ID string `json:"id" db:"id"`

	// Title is the display name of the entry.
	Title string `json:"title" db:"title"`

	// Type is "note" or "snippet". Snippets render in monospace;
	// the distinction otherwise only affects filtering.
	Type string `json:"type" db:"type"`

	// Content is the note or snippet body.
	Content string `json:"content" db:"content"`

	// Favourite marks the entry as pinned; toggleable on its own
	// without going through full edit validation.
	Favourite bool `json:"favourite" db:"favourite"`
}

// CheatSheetUpdate is a partial update to a CheatSheet. Nil fields are
// left unchanged.
type CheatSheetUpdate struct {
	Title     *string `json:"title,omitempty"`
	Type      *string `json:"type,omitempty"`
	Content   *string `json:"content,omitempty"`
	Favourite *bool   `json:"favourite,omitempty"`
}

// ValidCheatSheetType reports whether value is a known entry type.
func ValidCheatSheetType(value string) bool {
	return value == CheatSheetNote || value == CheatSheetSnippet
}
