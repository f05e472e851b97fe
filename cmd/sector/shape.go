package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sector-shift/internal/grid"
	"github.com/vovakirdan/sector-shift/internal/maps"
	"github.com/vovakirdan/sector-shift/internal/shapes"
)

var (
	flagShapeSize  string
	flagShapeKinds bool
	previewShape   shapeFlags
)

var shapeCmd = &cobra.Command{
	Use:   "shape [kind]",
	Short: "Preview a shape",
	Long: `Draw a shape on an empty floor grid and print how many cells it covers.

Examples:
  sector shape --kinds
  sector shape rect --from 1,1 --to 6,4
  sector shape circle --from 6,6 --radius 5 --border
  sector shape line --from 0,0 --to 11,4 --size 12x5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShape,
}

func init() {
	shapeCmd.Flags().StringVar(&flagShapeSize, "size", "16x16", "Preview grid size as WxH")
	shapeCmd.Flags().BoolVar(&flagShapeKinds, "kinds", false, "List the available shape kinds")
	previewShape.bind(shapeCmd)
}

func runShape(cmd *cobra.Command, args []string) {
	if flagShapeKinds || len(args) == 0 {
		printShapeKinds()
		return
	}

	s, spec, err := previewShape.build(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	size, err := parseSize(flagShapeSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preview := maps.NewLevel("preview", size)
	preview.Tiles = grid.NewFilled(size, maps.Floor)
	preview.Start.Position = grid.Point{X: -1, Y: -1}

	visible := visibleCells(preview, s)

	fmt.Println(theme.Title.Render(describeSpec(spec)))
	fmt.Println()
	fmt.Print(theme.RenderLevel(preview, s.Contains))
	fmt.Println()
	fmt.Printf("%d cells, %d visible\n", s.Count(), visible)
}

// visibleCells counts the cells of the preview covered by s. It walks the
// preview rather than the shape, so large shapes cost no more than small ones.
func visibleCells(preview *maps.Level, s shapes.Shape) int {
	n := 0
	for p := range preview.Tiles.Positions() {
		if s.Contains(p) {
			n++
		}
	}
	return n
}

func printShapeKinds() {
	fmt.Println(theme.Header.Render("Shape kinds:"))
	fmt.Println()
	for _, k := range shapes.Kinds() {
		border := ""
		if k.HasBorder {
			border = theme.Muted.Render(" (--border)")
		}
		fmt.Printf("  %-8s %s%s\n", k.Kind, k.Description, border)
	}
}
