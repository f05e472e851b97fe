package config

import (
	_ "embed"
)

//go:embed defaults/sector.yaml
var defaultSectorYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Levels: LevelsConfig{
			Dir:     "./levels",
			Default: "Level_01",
			Width:   32,
			Height:  32,
		},
		Storage: StorageConfig{
			DBPath: "~/.sector/sector.db",
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: false,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSectorYAML
}
