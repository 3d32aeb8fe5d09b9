package listview

import (
	"strings"

	"github.com/leettrack/leettrack/types"
)

// CheatSheetFilter holds the active cheatsheet predicates.
type CheatSheetFilter struct {
	// Search is matched case-insensitively against the title.
	Search string
	// Type is "note", "snippet", or All.
	Type string
	// FavouritesOnly hides entries not marked favourite.
	FavouritesOnly bool
}

// Match reports whether sheet passes every active predicate.
func (f CheatSheetFilter) Match(sheet types.CheatSheet) bool {
	if search := strings.TrimSpace(f.Search); search != "" {
		if !strings.Contains(strings.ToLower(sheet.Title), strings.ToLower(search)) {
			return false
		}
	}
	if active(f.Type) && sheet.Type != f.Type {
		return false
	}
	if f.FavouritesOnly && !sheet.Favourite {
		return false
	}
	return true
}

// FilterCheatSheets returns the sheets matching f, in input order.
func FilterCheatSheets(sheets []types.CheatSheet, f CheatSheetFilter) []types.CheatSheet {
	out := make([]types.CheatSheet, 0, len(sheets))
	for _, sheet := range sheets {
		if f.Match(sheet) {
			out = append(out, sheet)
		}
	}
	return out
}
