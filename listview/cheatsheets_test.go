package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leettrack/leettrack/types"
)

func sampleCheatSheets() []types.CheatSheet {
	return []types.CheatSheet{
		{ID: "1", Title: "Two Pointers Pattern", Type: types.CheatSheetNote},
		{ID: "2", Title: "Binary Search Template", Type: types.CheatSheetSnippet, Favourite: true},
		{ID: "3", Title: "Dynamic Programming Reminder", Type: types.CheatSheetNote},
	}
}

func ids(sheets []types.CheatSheet) []string {
	out := make([]string, len(sheets))
	for i, s := range sheets {
		out[i] = s.ID
	}
	return out
}

func TestFilterCheatSheets(t *testing.T) {
	sheets := sampleCheatSheets()

	tests := []struct {
		name   string
		filter CheatSheetFilter
		want   []string
	}{
		{"no filter", CheatSheetFilter{}, []string{"1", "2", "3"}},
		{"type all", CheatSheetFilter{Type: All}, []string{"1", "2", "3"}},
		{"search title case-insensitive", CheatSheetFilter{Search: "binary"}, []string{"2"}},
		{"type note", CheatSheetFilter{Type: types.CheatSheetNote}, []string{"1", "3"}},
		{"favourites only", CheatSheetFilter{FavouritesOnly: true}, []string{"2"}},
		{"search and type combine", CheatSheetFilter{Search: "pattern", Type: types.CheatSheetSnippet}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterCheatSheets(sheets, tt.filter)))
		})
	}
}
