// sector is a command line editor for grid-based levels.
//
// Usage:
//
//	sector new <name>        - Create a solid level
//	sector list              - List stored levels
//	sector show <name>       - Print a level
//	sector paint <name>      - Apply a brush over a shape
//	sector shape <kind>      - Preview a shape on an empty grid
//	sector export <name>     - Write a stored level to a YAML file
//	sector import <file>     - Store a level from a YAML file
//	sector history [name]    - Show recent edits
//	sector delete <name>     - Remove a stored level
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.sector/config.yaml, ./configs/sector.yaml)
//	--db <path>         - Database path (default: ~/.sector/sector.db)
//	--levels <dir>      - Level file directory (default: ./levels)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sector-shift/internal/config"
	"github.com/vovakirdan/sector-shift/internal/logging"
	"github.com/vovakirdan/sector-shift/internal/maps"
	"github.com/vovakirdan/sector-shift/internal/storage"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagLevelsDir  string
	flagLogLevel   string

	cfg    config.Config
	logger *log.Logger
	theme  Theme
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sector",
	Short: "Sector - edit grid levels from the terminal",
	Long: `Sector stores tile levels in a local database and edits them with
brushes applied over rectangles, circles and lines.

Available commands:
  new      - Create a solid level
  list     - Show stored levels
  show     - Print a level
  paint    - Apply a brush over a shape
  shape    - Preview a shape
  export   - Write a level to a YAML file
  import   - Store levels from YAML files
  history  - Show recent edits
  delete   - Remove a level

Examples:
  sector new Level_01 --size 24x16
  sector paint Level_01 --brush tile --arg floor --shape rect --from 1,1 --to 23,15
  sector show Level_01
  sector shape circle --from 6,6 --radius 5 --border`,
	PersistentPreRun: loadSettings,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to levels database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Level file directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(paintCmd)
	rootCmd.AddCommand(shapeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(deleteCmd)
}

// loadSettings resolves config, flag overrides, the logger and the theme
// before any subcommand runs.
func loadSettings(cmd *cobra.Command, args []string) {
	var err error
	cfg, err = config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, err = logging.New(cfg.Log.Level, os.Stderr, cfg.Log.Timestamps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme = NewTheme(colorEnabled(cfg.Output.Color, os.Stdout))
}

// openStore opens the configured database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening levels database: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("database opened", "path", cfg.Storage.DBPath)
	return store
}

// newLoader returns a loader for the configured level directory.
func newLoader() *maps.Loader {
	loader := maps.NewLoader(cfg.Levels.Dir, logger)
	loader.DefaultSize.W = cfg.Levels.Width
	loader.DefaultSize.H = cfg.Levels.Height
	return loader
}

// mustLoadLevel loads a stored level or exits with a hint.
func mustLoadLevel(store *storage.Store, name string) *maps.Level {
	level, err := store.LoadLevel(name)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}
	if level == nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'sector list' to see stored levels.")
		os.Exit(1)
	}
	return level
}

// levelArg returns the first argument or the configured default level.
func levelArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Levels.Default
}
