package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sector-shift/internal/grid"
	"github.com/vovakirdan/sector-shift/internal/maps"
)

var (
	flagNewSize  string
	flagNewForce bool
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a solid level",
	Long: `Create a level filled with walls and store it in the database.
Without a name the configured default level name is used.

Examples:
  sector new Level_01
  sector new arena --size 48x48
  sector new Level_01 --force`,
	Args: cobra.MaximumNArgs(1),
	Run:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagNewSize, "size", "", "Level size as WxH (default from config)")
	newCmd.Flags().BoolVar(&flagNewForce, "force", false, "Replace an existing level")
}

func runNew(cmd *cobra.Command, args []string) {
	name := levelArg(args)
	if err := maps.ValidateName(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	size := grid.Size{W: cfg.Levels.Width, H: cfg.Levels.Height}
	if flagNewSize != "" {
		var err error
		if size, err = parseSize(flagNewSize); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStore()
	defer store.Close()

	existing, err := store.LoadLevel(name)
	if err != nil {
		logger.Warn("existing level is unreadable", "name", name, "error", err)
	}
	if existing != nil && !flagNewForce {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: level %q already exists (use --force to replace it)\n", name)
		os.Exit(1)
	}

	level := maps.NewLevel(name, size)
	if err := store.SaveLevel(level); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error saving level: %v\n", err)
		os.Exit(1)
	}

	logger.Info("level created", "name", name, "size", size)
	fmt.Printf("Created %s (%v)\n", theme.Title.Render(name), size)
}
