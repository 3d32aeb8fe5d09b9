package types

import "time"

// Resume theme keys.
const (
	ThemeProfessional = "professional"
	ThemeModern       = "modern"
	ThemeMinimalist   = "minimalist"
)

// Resume is the per-user resume document backing the resume builder.
// Layout and styling live client-side; the server stores content plus
// the selected theme key and renders plain HTML on export.
type Resume struct {
	// UserID is the owning account. One resume per user.
	UserID string `json:"-" db:"user_id"`

	// FullName, Email and Phone are the contact header.
	FullName string `json:"fullName" db:"full_name"`
	Email    string `json:"email" db:"email"`
	Phone    string `json:"phone" db:"phone"`

	// Summary is the free-text introduction paragraph.
	Summary string `json:"summary" db:"summary"`

	// Experience and Education entries in display order.
	Experience []ResumeEntry `json:"experience" db:"experience"`
	Education  []ResumeEntry `json:"education" db:"education"`

	// Skills in display order.
	Skills []string `json:"skills" db:"skills"`

	// Theme is one of professional, modern, minimalist.
	Theme string `json:"theme" db:"theme"`

	// UpdatedAt is the timestamp of the most recent save.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ResumeEntry is one experience or education item.
type ResumeEntry struct {
	Title   string `json:"title"`
	Place   string `json:"place"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Details string `json:"details"`
}

// ValidTheme reports whether value is a known resume theme.
func ValidTheme(value string) bool {
	switch value {
	case ThemeProfessional, ThemeModern, ThemeMinimalist:
		return true
	}
	return false
}
