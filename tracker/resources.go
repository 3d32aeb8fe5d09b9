package tracker

import (
	"github.com/leettrack/leettrack/client"
	"github.com/leettrack/leettrack/types"
)

// Problems is the tracker instantiation for the problems resource.
type Problems = Tracker[types.Problem, types.ProblemUpdate]

// CheatSheets is the tracker instantiation for the cheatsheets
// resource.
type CheatSheets = Tracker[types.CheatSheet, types.CheatSheetUpdate]

// ForProblems builds a problems tracker over the given client.
func ForProblems(pc *client.ProblemsClient) *Problems {
	return New(API[types.Problem, types.ProblemUpdate](pc), func(p types.Problem) string { return p.ID })
}

// ForCheatSheets builds a cheatsheets tracker over the given client.
func ForCheatSheets(cc *client.CheatSheetsClient) *CheatSheets {
	return New(API[types.CheatSheet, types.CheatSheetUpdate](cc), func(s types.CheatSheet) string { return s.ID })
}
