// Package listview derives the visible view of a resource collection:
// pure filtering, stable sorting and aggregate statistics. Nothing
// here touches the network or mutates its inputs.
package listview

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/leettrack/leettrack/types"
)

// All matches every value of a filter dimension.
const All = "all"

// ProblemFilter holds the active predicates. An item is visible iff it
// matches all of them. Empty string means the same as All.
type ProblemFilter struct {
	// Search is matched case-insensitively as a substring of the
	// title, the stringified number, or any tag.
	Search     string
	Difficulty string
	Status     string
	Tag        string
}

// Match reports whether problem passes every active predicate.
func (f ProblemFilter) Match(problem types.Problem) bool {
	if search := strings.TrimSpace(f.Search); search != "" {
		lower := strings.ToLower(search)
		matched := strings.Contains(strings.ToLower(problem.Title), lower) ||
			strings.Contains(strconv.Itoa(problem.Number), lower)
		if !matched {
			for _, tag := range problem.Tags {
				if strings.Contains(strings.ToLower(tag), lower) {
					matched = true
					break
				}
			}
		}
		if !matched {
			return false
		}
	}

	if active(f.Difficulty) && problem.Difficulty != f.Difficulty {
		return false
	}
	if active(f.Status) && problem.Status != f.Status {
		return false
	}
	if active(f.Tag) && !containsTag(problem.Tags, f.Tag) {
		return false
	}
	return true
}

// FilterProblems returns the problems matching f, in input order.
func FilterProblems(problems []types.Problem, f ProblemFilter) []types.Problem {
	out := make([]types.Problem, 0, len(problems))
	for _, problem := range problems {
		if f.Match(problem) {
			out = append(out, problem)
		}
	}
	return out
}

// SortKey selects the problem comparator.
type SortKey string

const (
	SortByNumber     SortKey = "number"
	SortByTitle      SortKey = "title"
	SortByDifficulty SortKey = "difficulty"
	SortByStatus     SortKey = "status"
	SortByDate       SortKey = "date"
)

// ProblemSort is a sort key plus direction.
type ProblemSort struct {
	Key        SortKey
	Descending bool
}

// SortProblems returns a stably sorted copy of problems. The direction
// flag inverts the comparator uniformly, with one exception: problems
// lacking a solve date always sort after those that have one, under
// both directions.
func SortProblems(problems []types.Problem, s ProblemSort) []types.Problem {
	out := make([]types.Problem, len(problems))
	copy(out, problems)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if s.Key == SortByDate {
			aTime, aHas := solveTime(a)
			bTime, bHas := solveTime(b)
			if aHas != bHas {
				// Missing dates sort last regardless of direction.
				return aHas
			}
			if !aHas {
				return false
			}
			if s.Descending {
				return bTime.Before(aTime)
			}
			return aTime.Before(bTime)
		}

		result := compareProblems(a, b, s.Key)
		if s.Descending {
			result = -result
		}
		return result < 0
	})
	return out
}

func compareProblems(a, b types.Problem, key SortKey) int {
	switch key {
	case SortByTitle:
		return compareTitles(a.Title, b.Title)
	case SortByDifficulty:
		return types.DifficultyRank(a.Difficulty) - types.DifficultyRank(b.Difficulty)
	case SortByStatus:
		return strings.Compare(a.Status, b.Status)
	default: // SortByNumber
		return a.Number - b.Number
	}
}

// compareTitles folds case before comparing so that ordering does not
// split on capitalization; equal folded titles fall back to a byte
// compare to keep the order total.
func compareTitles(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// solveTime parses the problem's solve date. Unparsable dates count as
// absent.
func solveTime(problem types.Problem) (time.Time, bool) {
	if problem.DateSolved == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(types.DateLayout, problem.DateSolved)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// DeriveProblemView filters and sorts the collection and computes
// statistics over the whole (unfiltered) collection.
func DeriveProblemView(problems []types.Problem, f ProblemFilter, s ProblemSort) ([]types.Problem, ProblemStatistics) {
	return SortProblems(FilterProblems(problems, f), s), Statistics(problems)
}

// Tags collects the distinct tags across problems, sorted, for filter
// dropdowns.
func Tags(problems []types.Problem) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, problem := range problems {
		for _, tag := range problem.Tags {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

func active(value string) bool {
	return value != "" && value != All
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
