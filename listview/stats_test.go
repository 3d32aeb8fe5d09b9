package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leettrack/leettrack/types"
)

func TestStatisticsCounts(t *testing.T) {
	// 3 Solved, 1 Reviewing, 2 To Do.
	stats := Statistics(sampleProblems())

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.Solved)
	assert.Equal(t, 1, stats.Reviewing)
	assert.Equal(t, 2, stats.Todo)
	assert.Equal(t, 50, stats.SolvedPercentage)

	assert.Equal(t, 2, stats.Easy)
	assert.Equal(t, 3, stats.Medium)
	assert.Equal(t, 1, stats.Hard)
	assert.Equal(t, 2, stats.EasySolved)
	assert.Equal(t, 1, stats.MediumSolved)
	assert.Equal(t, 0, stats.HardSolved)
}

func TestStatisticsEmptyCollection(t *testing.T) {
	stats := Statistics(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.SolvedPercentage)
	assert.Empty(t, stats.RecentActivity)
}

func TestSolvedPercentageRounds(t *testing.T) {
	tests := []struct {
		solved, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13}, // 12.5 rounds half away from zero
		{7, 7, 100},
	}
	for _, tt := range tests {
		problems := make([]types.Problem, 0, tt.total)
		for i := 0; i < tt.total; i++ {
			status := types.StatusToDo
			if i < tt.solved {
				status = types.StatusSolved
			}
			problems = append(problems, types.Problem{
				ID: fmt.Sprintf("p%d", i), Number: i + 1, Status: status,
				Difficulty: types.DifficultyEasy,
			})
		}
		stats := Statistics(problems)
		assert.Equal(t, tt.want, stats.SolvedPercentage, "%d/%d", tt.solved, tt.total)
	}
}

func TestRecentActivity(t *testing.T) {
	problems := []types.Problem{
		{ID: "a", Number: 1, DateSolved: "2024-01-01"},
		{ID: "b", Number: 2},
		{ID: "c", Number: 3, DateSolved: "2024-02-01"},
		{ID: "d", Number: 4, DateSolved: "2024-01-20"},
		{ID: "e", Number: 5, DateSolved: "2024-03-01"},
		{ID: "f", Number: 6, DateSolved: "2024-01-10"},
		{ID: "g", Number: 7, DateSolved: "2024-02-15"},
		{ID: "h", Number: 8, DateSolved: "not-a-date"},
	}

	recent := Statistics(problems).RecentActivity

	assert.Len(t, recent, 5, "capped at five, undated and unparsable excluded")
	assert.Equal(t, []int{5, 7, 3, 4, 6}, numbers(recent), "descending by solve date")
}
