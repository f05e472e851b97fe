package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show recent edits",
	Long: `Show the most recent paint operations, newest first.
Without a name the edits of every level are shown.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of edits to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	var name string
	if len(args) > 0 {
		name = args[0]
	}

	store := openStore()
	defer store.Close()

	edits, err := store.RecentEdits(name, flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		os.Exit(1)
	}

	if len(edits) == 0 {
		fmt.Println("No edits recorded.")
		return
	}

	fmt.Println(theme.Header.Render("Recent edits:"))
	fmt.Println()

	for _, e := range edits {
		when := theme.Muted.Render(e.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("  %s  %-12s %-22s %-28s %d cells\n", when, e.Level, e.Brush, e.Shape, e.Cells)
	}
}
