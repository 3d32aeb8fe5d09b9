/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leettrack/leettrack/listview"
	"github.com/leettrack/leettrack/tracker"
	"github.com/leettrack/leettrack/types"
)

var problemListFlags struct {
	search     string
	difficulty string
	status     string
	tag        string
	sortKey    string
	descending bool
}

var problemAddFlags struct {
	number     int
	title      string
	link       string
	difficulty string
	status     string
	tags       []string
	dateSolved string
	notes      string
}

// problemsCmd represents the problems command
var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "Manage tracked problems",
}

var problemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := newSession()
		if err != nil {
			return err
		}

		t := tracker.ForProblems(newClient(sessions).Problems())
		if err := t.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("failed to list problems: %w", err)
		}

		filter := listview.ProblemFilter{
			Search:     problemListFlags.search,
			Difficulty: problemListFlags.difficulty,
			Status:     problemListFlags.status,
			Tag:        problemListFlags.tag,
		}
		sort := listview.ProblemSort{
			Key:        listview.SortKey(problemListFlags.sortKey),
			Descending: problemListFlags.descending,
		}
		problems := listview.SortProblems(listview.FilterProblems(t.Items(), filter), sort)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tTitle\tDifficulty\tStatus\tSolved\tTags")
		fmt.Fprintln(w, "-\t-----\t----------\t------\t------\t----")
		for _, p := range problems {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				p.Number, p.Title, p.Difficulty, p.Status, p.DateSolved, strings.Join(p.Tags, ", "))
		}
		return w.Flush()
	},
}

var problemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Track a new problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := newSession()
		if err != nil {
			return err
		}

		t := tracker.ForProblems(newClient(sessions).Problems())
		created, err := t.Add(cmd.Context(), types.Problem{
			Number:     problemAddFlags.number,
			Title:      problemAddFlags.title,
			Link:       problemAddFlags.link,
			Difficulty: problemAddFlags.difficulty,
			Status:     problemAddFlags.status,
			Tags:       problemAddFlags.tags,
			DateSolved: problemAddFlags.dateSolved,
			Notes:      problemAddFlags.notes,
		})
		if err != nil {
			return fmt.Errorf("failed to add problem: %w", err)
		}

		fmt.Printf("Added problem %d. %s (%s)\n", created.Number, created.Title, created.ID)
		return nil
	},
}

var problemsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Stop tracking a problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := newSession()
		if err != nil {
			return err
		}

		t := tracker.ForProblems(newClient(sessions).Problems())
		removed, err := t.Remove(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to remove problem: %w", err)
		}
		if !removed {
			fmt.Println("Problem was already gone")
			return nil
		}
		fmt.Println("Removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(problemsCmd)
	problemsCmd.AddCommand(problemsListCmd)
	problemsCmd.AddCommand(problemsAddCmd)
	problemsCmd.AddCommand(problemsRemoveCmd)

	problemsListCmd.Flags().StringVar(&problemListFlags.search, "search", "", "match title, number or tags")
	problemsListCmd.Flags().StringVar(&problemListFlags.difficulty, "difficulty", listview.All, "Easy, Medium or Hard")
	problemsListCmd.Flags().StringVar(&problemListFlags.status, "status", listview.All, "Solved, Reviewing or To Do")
	problemsListCmd.Flags().StringVar(&problemListFlags.tag, "tag", listview.All, "filter by tag")
	problemsListCmd.Flags().StringVar(&problemListFlags.sortKey, "sort", string(listview.SortByNumber), "number, title, difficulty, status or date")
	problemsListCmd.Flags().BoolVar(&problemListFlags.descending, "desc", false, "sort descending")

	problemsAddCmd.Flags().IntVar(&problemAddFlags.number, "number", 0, "problem number")
	problemsAddCmd.Flags().StringVar(&problemAddFlags.title, "title", "", "problem title")
	problemsAddCmd.Flags().StringVar(&problemAddFlags.link, "link", "", "problem URL")
	problemsAddCmd.Flags().StringVar(&problemAddFlags.difficulty, "difficulty", types.DifficultyEasy, "Easy, Medium or Hard")
	problemsAddCmd.Flags().StringVar(&problemAddFlags.status, "status", types.StatusToDo, "Solved, Reviewing or To Do")
	problemsAddCmd.Flags().StringSliceVar(&problemAddFlags.tags, "tags", nil, "comma-separated tags")
	problemsAddCmd.Flags().StringVar(&problemAddFlags.dateSolved, "solved", "", "solve date (YYYY-MM-DD)")
	problemsAddCmd.Flags().StringVar(&problemAddFlags.notes, "notes", "", "free-form notes")
	problemsAddCmd.MarkFlagRequired("number")
	problemsAddCmd.MarkFlagRequired("title")
}
