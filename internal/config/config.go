// Package config provides YAML-based configuration for the sector tools:
// where levels live, the database path, logging and output styling.
package config

// Config contains all configuration for the sector CLI.
type Config struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
}

// LevelsConfig defines where level files are kept and how new levels
// are sized.
type LevelsConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// StorageConfig defines the SQLite database location.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logger parameters.
type LogConfig struct {
	Level      string `yaml:"level"`
	Timestamps bool   `yaml:"timestamps"`
}

// OutputConfig controls terminal styling: "auto", "always" or "never".
type OutputConfig struct {
	Color string `yaml:"color"`
}
