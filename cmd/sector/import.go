package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sector-shift/internal/maps"
)

var flagImportAll bool

var importCmd = &cobra.Command{
	Use:   "import [file...]",
	Short: "Store levels from YAML files",
	Long: `Decode level files and store them in the database, replacing stored
levels of the same name. With --all every level file in the level
directory is imported and broken files are skipped.`,
	Run: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportAll, "all", false, "Import every file in the level directory")
}

func runImport(cmd *cobra.Command, args []string) {
	if !flagImportAll && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: give at least one file or --all")
		os.Exit(1)
	}

	loader := newLoader()

	var levels []*maps.Level
	if flagImportAll {
		all, err := loader.LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading level directory: %v\n", err)
			os.Exit(1)
		}
		levels = all
	}
	for _, path := range args {
		level, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		fmt.Println("Nothing to import.")
		return
	}

	store := openStore()
	defer store.Close()

	for _, level := range levels {
		if err := store.SaveLevel(level); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error storing %s: %v\n", level.Name, err)
			os.Exit(1)
		}
		logger.Debug("level imported", "name", level.Name, "size", level.Tiles.Size())
		fmt.Printf("Imported %s\n", theme.Title.Render(level.Name))
	}
}
