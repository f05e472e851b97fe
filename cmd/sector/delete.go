package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored level",
	Long:  `Remove a level and its edit history from the database. Level files are left alone.`,
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	deleted, err := store.DeleteLevel(args[0])
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error deleting level: %v\n", err)
		os.Exit(1)
	}
	if !deleted {
		fmt.Printf("No level named %q.\n", args[0])
		return
	}

	logger.Info("level deleted", "name", args[0])
	fmt.Printf("Deleted %s\n", theme.Title.Render(args[0]))
}
