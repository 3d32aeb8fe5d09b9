package types

import "strings"

// Difficulty levels, ordered Easy < Medium < Hard.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Problem status values.
const (
	StatusSolved    = "Solved"
	StatusToDo      = "To Do"
	StatusReviewing = "Reviewing"
)

// DateLayout is the wire format for DateSolved.
const DateLayout = "2006-01-02"

// Problem represents a tracked LeetCode problem.
type Problem struct {
	// ID is the server-assigned identifier. Immutable once created.
	ID string `json:"id" db:"id"`

	// Number is the LeetCode problem number. Unique per owner; the
	// natural key used for duplicate-detection messaging.
	Number int `json:"number" db:"number"`

	// Title is the human-readable name of the problem.
	Title string `json:"title" db:"title"`

	// Link is the URL of the problem on leetcode.com.
	Link string `json:"link" db:"link"`

	// Difficulty is one of Easy, Medium, Hard.
	Difficulty string `json:"difficulty" db:"difficulty"`

	// Status is one of Solved, To Do, Reviewing.
	Status string `json:"status" db:"status"`

	// Tags are free-form labels in display order, no duplicates.
	// Never nil once the problem has been through the service layer.
	Tags []string `json:"tags" db:"tags"`

	// DateSolved is the calendar date the problem was solved,
	// formatted as YYYY-MM-DD. Empty when not yet solved.
	DateSolved string `json:"dateSolved,omitempty" db:"date_solved"`

	// Approaches are the recorded solution approaches in display order.
	// Never nil once the problem has been through the service layer.
	Approaches []Approach `json:"approaches" db:"approaches"`

	// Notes is free-form study text.
	Notes string `json:"notes" db:"notes"`
}

// Approach is one recorded solution approach for a problem.
type Approach struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Language    string `json:"language"`
}

// ProblemUpdate is a partial update to a Problem. Nil fields are left
// unchanged; the id is never updatable.
type ProblemUpdate struct {
	Number     *int        `json:"number,omitempty"`
	Title      *string     `json:"title,omitempty"`
	Link       *string     `json:"link,omitempty"`
	Difficulty *string     `json:"difficulty,omitempty"`
	Status     *string     `json:"status,omitempty"`
	Tags       *[]string   `json:"tags,omitempty"`
	DateSolved *string     `json:"dateSolved,omitempty"`
	Approaches *[]Approach `json:"approaches,omitempty"`
	Notes      *string     `json:"notes,omitempty"`
}

// ValidDifficulty reports whether value is a known difficulty.
func ValidDifficulty(value string) bool {
	switch value {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ValidStatus reports whether value is a known problem status.
func ValidStatus(value string) bool {
	switch value {
	case StatusSolved, StatusToDo, StatusReviewing:
		return true
	}
	return false
}

// DifficultyRank maps a difficulty to its severity order,
// Easy(1) < Medium(2) < Hard(3). Unknown values rank 0.
func DifficultyRank(value string) int {
	switch value {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	}
	return 0
}

// NormalizeTags trims tags and drops empties and duplicates while
// preserving first-occurrence order. Always returns a non-nil slice.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
