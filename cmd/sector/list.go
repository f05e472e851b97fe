package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagListFiles bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored levels",
	Long: `Shows every level in the database, or with --files the level files
found in the level directory.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListFiles, "files", false, "List level files instead of stored levels")
}

func runList(cmd *cobra.Command, args []string) {
	if flagListFiles {
		listFiles()
		return
	}

	store := openStore()
	defer store.Close()

	levels, err := store.ListLevels()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error listing levels: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No levels stored.")
		fmt.Println()
		fmt.Println("Run 'sector new <name>' to create one.")
		return
	}

	fmt.Println(theme.Header.Render("Stored levels:"))
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "Name", "Size", "Updated")
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "----", "----", "-------")

	for _, l := range levels {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		updated := theme.Muted.Render(l.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, l.Name, size, updated)
	}
}

func listFiles() {
	names, err := newLoader().List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing level files: %v\n", err)
		os.Exit(1)
	}

	if len(names) == 0 {
		fmt.Printf("No level files in %s.\n", cfg.Levels.Dir)
		return
	}

	fmt.Println(theme.Header.Render("Level files in " + cfg.Levels.Dir + ":"))
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}
