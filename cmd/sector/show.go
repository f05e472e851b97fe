package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sector-shift/internal/maps"
)

var flagShowPlain bool

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a level",
	Long: `Print a stored level with its player start and objects.

Legend:
  #  wall      .  floor     - |  doors
  @  start     E  enemy     i  item     X  exit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowPlain, "plain", false, "Print the plain text dump")
}

func runShow(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	level := mustLoadLevel(store, levelArg(args))

	if flagShowPlain {
		fmt.Print(maps.RenderASCII(level))
		return
	}

	if width := terminalWidth(80); level.Width() > width {
		logger.Warn("level is wider than the terminal", "width", level.Width(), "terminal", width)
	}

	fmt.Println(theme.Title.Render(level.Name) + theme.Muted.Render(fmt.Sprintf("  %v", level.Tiles.Size())))
	fmt.Println()
	fmt.Print(theme.RenderLevel(level, nil))
	fmt.Println()

	fmt.Printf("%s %v facing %s\n", theme.Header.Render("Start:"), level.Start.Position, level.Start.Facing.Name())

	positions := level.ObjectPositions()
	if len(positions) == 0 {
		fmt.Println(theme.Muted.Render("No objects."))
		return
	}

	fmt.Println(theme.Header.Render("Objects:"))
	for _, p := range positions {
		for _, o := range level.ObjectsAt(p) {
			fmt.Printf("  %-8v %s\n", p, o)
		}
	}
}
