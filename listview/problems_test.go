package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leettrack/leettrack/types"
)

// sampleProblems mirrors the seed collection used across the app:
// numbers [1,121,200,42,15,146] with difficulties
// [Easy,Easy,Medium,Hard,Medium,Medium].
func sampleProblems() []types.Problem {
	return []types.Problem{
		{ID: "1", Number: 1, Title: "Two Sum", Difficulty: types.DifficultyEasy,
			Status: types.StatusSolved, Tags: []string{"Array", "Hash Table"}, DateSolved: "2024-01-15"},
		{ID: "2", Number: 121, Title: "Best Time to Buy and Sell Stock", Difficulty: types.DifficultyEasy,
			Status: types.StatusSolved, Tags: []string{"Array", "Dynamic Programming"}, DateSolved: "2024-01-16"},
		{ID: "3", Number: 200, Title: "Number of Islands", Difficulty: types.DifficultyMedium,
			Status: types.StatusSolved, Tags: []string{"Array", "DFS", "BFS", "Matrix"}, DateSolved: "2024-01-17"},
		{ID: "4", Number: 42, Title: "Trapping Rain Water", Difficulty: types.DifficultyHard,
			Status: types.StatusReviewing, Tags: []string{"Array", "Two Pointers"}, DateSolved: "2024-01-18"},
		{ID: "5", Number: 15, Title: "3Sum", Difficulty: types.DifficultyMedium,
			Status: types.StatusToDo, Tags: []string{"Array", "Two Pointers", "Sorting"}},
		{ID: "6", Number: 146, Title: "LRU Cache", Difficulty: types.DifficultyMedium,
			Status: types.StatusToDo, Tags: []string{"Hash Table", "Linked List", "Design"}},
	}
}

func numbers(problems []types.Problem) []int {
	out := make([]int, len(problems))
	for i, p := range problems {
		out[i] = p.Number
	}
	return out
}

func TestFilterByDifficulty(t *testing.T) {
	got := FilterProblems(sampleProblems(), ProblemFilter{Difficulty: types.DifficultyEasy})
	assert.Equal(t, []int{1, 121}, numbers(got), "Easy filter keeps original relative order")
}

func TestFilterAllIsNoop(t *testing.T) {
	problems := sampleProblems()
	got := FilterProblems(problems, ProblemFilter{Difficulty: All, Status: All, Tag: All})
	assert.Equal(t, numbers(problems), numbers(got))
}

func TestFilterBySearch(t *testing.T) {
	problems := sampleProblems()

	tests := []struct {
		name   string
		search string
		want   []int
	}{
		{"title substring, case-insensitive", "lru", []int{146}},
		{"stringified number", "121", []int{121}},
		{"tag substring", "pointers", []int{42, 15}},
		{"no match", "zzz", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProblems(problems, ProblemFilter{Search: tt.search})
			assert.Equal(t, tt.want, numbers(got))
		})
	}
}

func TestFilterPredicatesCombine(t *testing.T) {
	got := FilterProblems(sampleProblems(), ProblemFilter{
		Search: "array", Difficulty: types.DifficultyMedium, Status: types.StatusToDo, Tag: "Sorting",
	})
	assert.Equal(t, []int{15}, numbers(got))
}

func TestFilteredIsSubsetAndSatisfiesPredicates(t *testing.T) {
	problems := sampleProblems()
	filter := ProblemFilter{Search: "a", Difficulty: types.DifficultyMedium}

	got := FilterProblems(problems, filter)
	byID := make(map[string]types.Problem)
	for _, p := range problems {
		byID[p.ID] = p
	}
	for _, p := range got {
		_, ok := byID[p.ID]
		require.True(t, ok, "visible item must come from the input collection")
		assert.True(t, filter.Match(p))
	}
	// No false negatives.
	for _, p := range problems {
		if filter.Match(p) {
			assert.Contains(t, numbers(got), p.Number)
		}
	}
}

func TestSortByNumber(t *testing.T) {
	got := SortProblems(sampleProblems(), ProblemSort{Key: SortByNumber})
	assert.Equal(t, []int{1, 15, 42, 121, 146, 200}, numbers(got))

	got = SortProblems(sampleProblems(), ProblemSort{Key: SortByNumber, Descending: true})
	assert.Equal(t, []int{200, 146, 121, 42, 15, 1}, numbers(got))
}

func TestSortByDifficultyIsStable(t *testing.T) {
	got := SortProblems(sampleProblems(), ProblemSort{Key: SortByDifficulty})
	// Easy, Easy, Medium, Medium, Medium, Hard with ties in input order.
	assert.Equal(t, []int{1, 121, 200, 15, 146, 42}, numbers(got))
}

func TestSortByTitle(t *testing.T) {
	got := SortProblems(sampleProblems(), ProblemSort{Key: SortByTitle})
	titles := make([]string, len(got))
	for i, p := range got {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{
		"3Sum",
		"Best Time to Buy and Sell Stock",
		"LRU Cache",
		"Number of Islands",
		"Trapping Rain Water",
		"Two Sum",
	}, titles)
}

func TestSortByDateMissingSortsLastBothDirections(t *testing.T) {
	problems := sampleProblems()

	asc := SortProblems(problems, ProblemSort{Key: SortByDate})
	assert.Equal(t, []int{1, 121, 200, 42, 15, 146}, numbers(asc))

	desc := SortProblems(problems, ProblemSort{Key: SortByDate, Descending: true})
	// Dated items invert; undated items stay at the end.
	assert.Equal(t, []int{42, 200, 121, 1, 15, 146}, numbers(desc))
}

func TestSortByDatePairwiseMissingRule(t *testing.T) {
	dated := types.Problem{ID: "a", Number: 1, DateSolved: "2024-03-01"}
	undated := types.Problem{ID: "b", Number: 2}

	for _, desc := range []bool{false, true} {
		got := SortProblems([]types.Problem{undated, dated}, ProblemSort{Key: SortByDate, Descending: desc})
		assert.Equal(t, []int{1, 2}, numbers(got), "descending=%v", desc)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	problems := sampleProblems()
	before := numbers(problems)
	_ = SortProblems(problems, ProblemSort{Key: SortByNumber})
	assert.Equal(t, before, numbers(problems))
}

func TestDeriveProblemView(t *testing.T) {
	visible, stats := DeriveProblemView(sampleProblems(),
		ProblemFilter{Difficulty: types.DifficultyMedium},
		ProblemSort{Key: SortByNumber})

	assert.Equal(t, []int{15, 146, 200}, numbers(visible))
	// Statistics cover the full collection, not the filtered view.
	assert.Equal(t, 6, stats.Total)
}

func TestTags(t *testing.T) {
	got := Tags(sampleProblems())
	assert.Equal(t, []string{
		"Array", "BFS", "DFS", "Design", "Dynamic Programming",
		"Hash Table", "Linked List", "Matrix", "Sorting", "Two Pointers",
	}, got)
}
