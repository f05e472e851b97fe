package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/sector-shift/internal/grid"
	"github.com/vovakirdan/sector-shift/internal/maps"
)

// Theme holds the styles used for CLI output.
type Theme struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style

	Wall   lipgloss.Style
	Floor  lipgloss.Style
	Door   lipgloss.Style
	Player lipgloss.Style
	Enemy  lipgloss.Style
	Item   lipgloss.Style
	Exit   lipgloss.Style
	Mark   lipgloss.Style
}

// NewTheme creates the CLI theme. Without color every style renders
// plain text.
func NewTheme(color bool) Theme {
	r := lipgloss.NewRenderer(os.Stdout)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Theme{
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Header: r.NewStyle().Bold(true),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("245")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("9")),

		Wall:   r.NewStyle().Foreground(lipgloss.Color("245")),
		Floor:  r.NewStyle().Foreground(lipgloss.Color("238")),
		Door:   r.NewStyle().Foreground(lipgloss.Color("208")),
		Player: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Enemy:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Item:   r.NewStyle().Foreground(lipgloss.Color("14")),
		Exit:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Mark:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
	}
}

// colorEnabled resolves an "auto", "always" or "never" mode for w.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of stdout, or fallback when it is not
// a terminal.
func terminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}

// glyphStyle picks the style for a glyph produced by maps.CellGlyph.
func (t Theme) glyphStyle(r rune) lipgloss.Style {
	switch r {
	case maps.Wall.Glyph():
		return t.Wall
	case maps.Floor.Glyph():
		return t.Floor
	case maps.DoorHorizontal.Glyph(), maps.DoorVertical.Glyph():
		return t.Door
	case '@':
		return t.Player
	case maps.Enemy.Glyph():
		return t.Enemy
	case maps.Item.Glyph():
		return t.Item
	case maps.Exit.Glyph():
		return t.Exit
	default:
		return t.Mark
	}
}

// RenderLevel draws the tiles of a level, one line per row. Cells for
// which mark returns true are drawn as '*'.
func (t Theme) RenderLevel(l *maps.Level, mark func(grid.Point) bool) string {
	var sb strings.Builder
	for y, row := range l.Tiles.Rows() {
		for x, tile := range row {
			p := grid.Point{X: x, Y: y}
			r := maps.CellGlyph(l, p, tile)
			if mark != nil && mark(p) {
				r = '*'
			}
			sb.WriteString(t.glyphStyle(r).Render(string(r)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
