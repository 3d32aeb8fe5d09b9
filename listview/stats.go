package listview

import (
	"math"
	"sort"

	"github.com/leettrack/leettrack/types"
)

// recentActivityLimit caps the recent-activity list.
const recentActivityLimit = 5

// ProblemStatistics are the aggregate counts shown on the dashboard.
// Derived on demand, never stored.
type ProblemStatistics struct {
	Total     int
	Solved    int
	Reviewing int
	Todo      int

	Easy   int
	Medium int
	Hard   int

	EasySolved   int
	MediumSolved int
	HardSolved   int

	// SolvedPercentage is round(100*solved/total), 0 for an empty
	// collection.
	SolvedPercentage int

	// RecentActivity holds the 5 most recently solved problems,
	// descending by solve date, among problems that have a date.
	RecentActivity []types.Problem
}

// Statistics computes aggregate counts over the full collection.
func Statistics(problems []types.Problem) ProblemStatistics {
	stats := ProblemStatistics{Total: len(problems)}

	for _, problem := range problems {
		switch problem.Status {
		case types.StatusSolved:
			stats.Solved++
		case types.StatusReviewing:
			stats.Reviewing++
		case types.StatusToDo:
			stats.Todo++
		}

		solved := problem.Status == types.StatusSolved
		switch problem.Difficulty {
		case types.DifficultyEasy:
			stats.Easy++
			if solved {
				stats.EasySolved++
			}
		case types.DifficultyMedium:
			stats.Medium++
			if solved {
				stats.MediumSolved++
			}
		case types.DifficultyHard:
			stats.Hard++
			if solved {
				stats.HardSolved++
			}
		}
	}

	if stats.Total > 0 {
		stats.SolvedPercentage = int(math.Round(float64(stats.Solved) / float64(stats.Total) * 100))
	}

	stats.RecentActivity = recentActivity(problems)
	return stats
}

func recentActivity(problems []types.Problem) []types.Problem {
	dated := make([]types.Problem, 0, len(problems))
	for _, problem := range problems {
		if _, ok := solveTime(problem); ok {
			dated = append(dated, problem)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		a, _ := solveTime(dated[i])
		b, _ := solveTime(dated[j])
		return b.Before(a)
	})

	if len(dated) > recentActivityLimit {
		dated = dated[:recentActivityLimit]
	}
	return dated
}
