/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leettrack/leettrack/listview"
	"github.com/leettrack/leettrack/tracker"
)

var sheetListFlags struct {
	search     string
	sheetType  string
	favourites bool
}

// cheatsheetsCmd represents the cheatsheets command
var cheatsheetsCmd = &cobra.Command{
	Use:   "cheatsheets",
	Short: "Manage code cheat sheets",
}

var cheatsheetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cheat sheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := newSession()
		if err != nil {
			return err
		}

		t := tracker.ForCheatSheets(newClient(sessions).CheatSheets())
		if err := t.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("failed to list cheat sheets: %w", err)
		}

		filter := listview.CheatSheetFilter{
			Search:         sheetListFlags.search,
			Type:           sheetListFlags.sheetType,
			FavouritesOnly: sheetListFlags.favourites,
		}
		sheets := listview.FilterCheatSheets(t.Items(), filter)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTitle\tType\tFav")
		fmt.Fprintln(w, "--\t-----\t----\t---")
		for _, s := range sheets {
			fav := ""
			if s.Favourite {
				fav = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Title, s.Type, fav)
		}
		return w.Flush()
	},
}

var cheatsheetsFavCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Toggle a cheat sheet's favourite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := newSession()
		if err != nil {
			return err
		}

		sheets := newClient(sessions).CheatSheets()
		sheet, err := sheets.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch cheat sheet: %w", err)
		}
		if sheet == nil {
			return fmt.Errorf("cheat sheet %s not found", args[0])
		}

		updated, err := sheets.ToggleFavourite(cmd.Context(), *sheet)
		if err != nil {
			return fmt.Errorf("failed to update cheat sheet: %w", err)
		}

		if updated.Favourite {
			fmt.Printf("%s is now a favourite\n", updated.Title)
		} else {
			fmt.Printf("%s is no longer a favourite\n", updated.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cheatsheetsCmd)
	cheatsheetsCmd.AddCommand(cheatsheetsListCmd)
	cheatsheetsCmd.AddCommand(cheatsheetsFavCmd)

	cheatsheetsListCmd.Flags().StringVar(&sheetListFlags.search, "search", "", "match title")
	cheatsheetsListCmd.Flags().StringVar(&sheetListFlags.sheetType, "type", listview.All, "note or snippet")
	cheatsheetsListCmd.Flags().BoolVar(&sheetListFlags.favourites, "favourites", false, "favourites only")
}
