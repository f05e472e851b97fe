package main

import (
	"testing"

	"github.com/vovakirdan/sector-shift/internal/grid"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input    string
		expected grid.Point
		wantErr  bool
	}{
		{"3,4", grid.P(3, 4), false},
		{"-1, 7", grid.P(-1, 7), false},
		{"3", grid.Point{}, true},
		{"a,1", grid.Point{}, true},
		{"1,b", grid.Point{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parsePoint(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("parsePoint(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected grid.Size
		wantErr  bool
	}{
		{"24x16", grid.S(24, 16), false},
		{"8X8", grid.S(8, 8), false},
		{"0x4", grid.Size{}, true},
		{"24", grid.Size{}, true},
		{"ax4", grid.Size{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseSize(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("parseSize(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestColorEnabled(t *testing.T) {
	if !colorEnabled("always", nil) {
		t.Error("always should enable color")
	}
	if colorEnabled("never", nil) {
		t.Error("never should disable color")
	}
	if colorEnabled("auto", nil) {
		t.Error("auto without a terminal should disable color")
	}
}

func TestPlainThemeRendersGlyphs(t *testing.T) {
	th := NewTheme(false)
	if got := th.glyphStyle('#').Render("#"); got != "#" {
		t.Errorf("plain theme rendered %q", got)
	}
}
