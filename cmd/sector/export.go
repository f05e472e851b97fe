package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sector-shift/internal/maps"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Write a level to a YAML file",
	Long: `Write a stored level to <levels dir>/<name>.yaml, or to the path given
with --out ("-" writes to stdout).`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	level := mustLoadLevel(store, levelArg(args))

	if flagExportOut == "" {
		loader := newLoader()
		if err := loader.Save(level); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error exporting level: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %s to %s\n", theme.Title.Render(level.Name), loader.Path(level.Name))
		return
	}

	data, err := maps.Encode(level)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error encoding level: %v\n", err)
		os.Exit(1)
	}

	if flagExportOut == "-" {
		os.Stdout.Write(data)
		return
	}

	if err := os.MkdirAll(filepath.Dir(flagExportOut), 0o755); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("level exported", "name", level.Name, "path", flagExportOut)
	fmt.Printf("Exported %s to %s\n", theme.Title.Render(level.Name), flagExportOut)
}
