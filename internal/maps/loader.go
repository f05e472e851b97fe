package maps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sector-shift/internal/grid"
	"github.com/vovakirdan/sector-shift/internal/logging"
)

// FileExt is the extension of level files written by Save.
const FileExt = ".yaml"

// Loader reads and writes level files in a directory, one file per level
// named after the level.
type Loader struct {
	Root string

	// DefaultSize is used by LoadOrDefault when no file exists.
	DefaultSize grid.Size

	logger *log.Logger
}

// NewLoader creates a loader for root. A nil logger discards output.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{
		Root:        root,
		DefaultSize: DefaultSize,
		logger:      logging.OrDiscard(logger),
	}
}

// Path returns the file path used for a level name.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.Root, name+FileExt)
}

// Save validates and writes a level, creating Root if needed.
func (l *Loader) Save(level *Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	data, err := Encode(level)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(l.Root, 0o755); err != nil {
		return fmt.Errorf("maps: create directory %s: %w", l.Root, err)
	}

	path := l.Path(level.Name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("maps: write %s: %w", path, err)
	}

	l.logger.Debug("level saved", "name", level.Name, "path", path)
	return nil
}

// LoadFile reads a single level file.
func (l *Loader) LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maps: read %s: %w", path, err)
	}

	level, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("maps: parse %s: %w", path, err)
	}
	return level, nil
}

// Load reads the level with the given name.
func (l *Loader) Load(name string) (*Level, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return l.LoadFile(l.Path(name))
}

// LoadOrDefault reads the named level, or returns a new solid level of
// DefaultSize when the file does not exist or cannot be parsed.
func (l *Loader) LoadOrDefault(name string) *Level {
	level, err := l.Load(name)
	if err == nil {
		return level
	}

	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("level not found, using default", "name", name)
	} else {
		l.logger.Warn("could not load level, using default", "name", name, "error", err)
	}
	return NewLevel(name, l.DefaultSize)
}

// LoadAll reads every level file under Root, sorted by name.
// Files that fail to parse are skipped with a warning. A missing Root
// holds no levels.
func (l *Loader) LoadAll() ([]*Level, error) {
	var levels []*Level

	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == l.Root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !isLevelFile(path) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			l.logger.Warn("skipping invalid level", "path", path, "error", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("maps: walk %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}

// List returns the names of all loadable levels in sorted order.
func (l *Loader) List() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(levels))
	for i, level := range levels {
		names[i] = level.Name
	}
	return names, nil
}

func isLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
