/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leettrack/leettrack/listview"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show problem statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := newSession()
		if err != nil {
			return err
		}

		problems, err := newClient(sessions).Problems().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch problems: %w", err)
		}

		stats := listview.Statistics(problems)

		fmt.Println("Statistics")
		fmt.Println("----------")
		fmt.Printf("Total:     %d\n", stats.Total)
		fmt.Printf("Solved:    %d (%d%%)\n", stats.Solved, stats.SolvedPercentage)
		fmt.Printf("Reviewing: %d\n", stats.Reviewing)
		fmt.Printf("To Do:     %d\n", stats.Todo)
		fmt.Println()
		fmt.Printf("Easy:   %d/%d solved\n", stats.EasySolved, stats.Easy)
		fmt.Printf("Medium: %d/%d solved\n", stats.MediumSolved, stats.Medium)
		fmt.Printf("Hard:   %d/%d solved\n", stats.HardSolved, stats.Hard)

		if len(stats.RecentActivity) > 0 {
			fmt.Println()
			fmt.Println("Recent activity")
			for _, p := range stats.RecentActivity {
				fmt.Printf("  %s  %d. %s\n", p.DateSolved, p.Number, p.Title)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
