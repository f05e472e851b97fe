package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

// parsePoint parses "x,y".
func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return grid.Point{X: x, Y: y}, nil
}

// parseSize parses "WxH" with positive dimensions.
func parseSize(s string) (grid.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return grid.Size{}, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return grid.Size{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return grid.Size{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return grid.Size{}, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return grid.Size{W: w, H: h}, nil
}
