// Package config loads the board layout: which lanes to show, what each lane
// sorts by, and the initial sort, preset and view selections.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"pulseboard/internal/column"
	"pulseboard/internal/pairs"
)

const (
	// PathEnv overrides the config file location.
	PathEnv = "PULSEBOARD_CONFIG"
	// DefaultRelPath is the config location under the user config dir.
	DefaultRelPath = "pulseboard/board.toml"
	// DefaultLaneWidth is used for lanes that do not set width.
	DefaultLaneWidth = 34
	// MinLaneWidth fits a header toolbar row.
	MinLaneWidth = 20
)

var (
	ErrNoColumns     = errors.New("config has no columns")
	ErrUnknownStage  = errors.New("unknown stage")
	ErrUnknownSort   = errors.New("unknown sort key")
	ErrSortNotColumn = errors.New("sort column does not match any column sort_key")
)

// Column configures one board lane.
type Column struct {
	Title   string `toml:"title"`
	Stage   string `toml:"stage"`
	SortKey string `toml:"sort_key"`
	Preset  string `toml:"preset"`
	Width   int    `toml:"width"`
}

// Sort is the initial board-wide sort.
type Sort struct {
	Column    string `toml:"column"`
	Direction string `toml:"direction"`
}

// Config is the parsed board file.
type Config struct {
	View    string   `toml:"view"` // "grid" (default) or "list"
	Sort    Sort     `toml:"sort"`
	Columns []Column `toml:"columns"`
}

// Default returns the built-in three-lane board.
func Default() *Config {
	return &Config{
		View: "grid",
		Columns: []Column{
			{Title: "New Pairs", Stage: string(pairs.StageNew), SortKey: pairs.KeyAge, Preset: "P1", Width: DefaultLaneWidth},
			{Title: "Final Stretch", Stage: string(pairs.StageStretch), SortKey: pairs.KeyVolume, Width: DefaultLaneWidth},
			{Title: "Migrated", Stage: string(pairs.StageMigrated), SortKey: pairs.KeyMarketCap, Width: DefaultLaneWidth},
		},
	}
}

// Path resolves the config file location: explicit flag, then $PULSEBOARD_CONFIG,
// then the user config dir. The second result is false when the path was not
// asked for explicitly, so a missing file there means "use defaults".
func Path(flagPath string) (string, bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, DefaultRelPath), false
}

// Load reads the config at path. When required is false and the file does not
// exist, the built-in default is returned.
func Load(path string, required bool) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML config data, filling defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Columns {
		col := &c.Columns[i]
		if col.Width == 0 {
			col.Width = DefaultLaneWidth
		}
		if col.Width < MinLaneWidth {
			col.Width = MinLaneWidth
		}
	}
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	if len(c.Columns) == 0 {
		return ErrNoColumns
	}
	if _, err := column.ParseViewMode(c.View); err != nil {
		return err
	}
	keys := make(map[string]bool)
	for i, col := range c.Columns {
		switch pairs.Stage(col.Stage) {
		case pairs.StageNew, pairs.StageStretch, pairs.StageMigrated:
		default:
			return fmt.Errorf("columns[%d] %q: %w: %q", i, col.Title, ErrUnknownStage, col.Stage)
		}
		if col.SortKey != "" && !pairs.IsKey(col.SortKey) {
			return fmt.Errorf("columns[%d] %q: %w: %q", i, col.Title, ErrUnknownSort, col.SortKey)
		}
		if _, err := column.ParsePreset(col.Preset); err != nil {
			return fmt.Errorf("columns[%d] %q: %w", i, col.Title, err)
		}
		if col.SortKey != "" {
			keys[col.SortKey] = true
		}
	}
	if c.Sort.Column != "" {
		if !keys[c.Sort.Column] {
			return fmt.Errorf("%w: %q", ErrSortNotColumn, c.Sort.Column)
		}
		if _, err := column.ParseSortDirection(c.Sort.Direction); err != nil {
			return fmt.Errorf("sort: %w", err)
		}
	}
	return nil
}

// InitialSort returns the configured sort, or nil when none is set.
// Call only on a validated config.
func (c *Config) InitialSort() *column.SortState {
	if c.Sort.Column == "" {
		return nil
	}
	dir, _ := column.ParseSortDirection(c.Sort.Direction)
	return &column.SortState{Column: c.Sort.Column, Direction: dir}
}

// ViewMode returns the configured view mode. Call only on a validated config.
func (c *Config) ViewMode() column.ViewMode {
	m, _ := column.ParseViewMode(c.View)
	return m
}
