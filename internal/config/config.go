// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/joonholee/siganpyo/internal/timetable"
)

// Config holds the application configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Catalog CatalogConfig `toml:"catalog"`
	UI      UIConfig      `toml:"ui"`
}

// GridConfig holds the grid geometry and time axis settings.
type GridConfig struct {
	Days            []string  `toml:"days"`              // column order, e.g. ["월", ..., "금"]
	BaseTime        string    `toml:"base_time"`         // start of row 1, "HH:MM"
	CellWidth       int       `toml:"cell_width"`        // px
	CellHeight      int       `toml:"cell_height"`       // px
	HeaderColWidth  int       `toml:"header_col_width"`  // px
	HeaderRowHeight int       `toml:"header_row_height"` // px
	TailRows        []TailRow `toml:"tail_rows"`         // evening rows 19..24
}

// TailRow mirrors timetable.TailRow for TOML decoding.
type TailRow struct {
	Stride int `toml:"stride"`
	Span   int `toml:"span"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme  string `toml:"theme"`  // "mocha", "latte", "hanji"
	Tables int    `toml:"tables"` // number of independent timetables
}

// CatalogConfig holds the lecture catalog database settings.
type CatalogConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration, matching the source layout.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Days:            append([]string(nil), timetable.DefaultDays...),
			BaseTime:        timetable.DefaultBaseTime,
			CellWidth:       timetable.DefaultMetrics.CellWidth,
			CellHeight:      timetable.DefaultMetrics.CellHeight,
			HeaderColWidth:  timetable.DefaultMetrics.HeaderColWidth,
			HeaderRowHeight: timetable.DefaultMetrics.HeaderRowHeight,
			TailRows:        defaultTailRows(),
		},
		Catalog: CatalogConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:  "hanji",
			Tables: 1,
		},
	}
}

func defaultTailRows() []TailRow {
	rows := make([]TailRow, 0, timetable.TailRows)
	for _, tr := range timetable.DefaultTail() {
		rows = append(rows, TailRow{Stride: tr.Stride, Span: tr.Span})
	}
	return rows
}

// defaultDBPath returns the default catalog database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "siganpyo.db"
	}
	return filepath.Join(home, ".local", "share", "siganpyo", "catalog.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "siganpyo", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Catalog.DBPath = expandPath(cfg.Catalog.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SIGANPYO_BASE_TIME"); v != "" {
		cfg.Grid.BaseTime = v
	}
	if v := os.Getenv("SIGANPYO_DAYS"); v != "" {
		cfg.Grid.Days = strings.Split(v, ",")
	}
	if v := os.Getenv("SIGANPYO_DB_PATH"); v != "" {
		cfg.Catalog.DBPath = v
	}
	if v := os.Getenv("SIGANPYO_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Grid.BaseTime, "base_time"); err != nil {
		return err
	}
	if len(c.Grid.Days) == 0 {
		return errors.New("at least one day column must be configured")
	}
	seen := make(map[string]bool, len(c.Grid.Days))
	for _, day := range c.Grid.Days {
		if day == "" {
			return errors.New("day labels cannot be empty")
		}
		if seen[day] {
			return fmt.Errorf("duplicate day label: %s", day)
		}
		seen[day] = true
	}
	if c.Grid.CellWidth <= 1 || c.Grid.CellHeight <= 1 {
		return errors.New("cell_width and cell_height must be greater than 1")
	}
	if c.Grid.HeaderColWidth < 0 || c.Grid.HeaderRowHeight < 0 {
		return errors.New("header offsets cannot be negative")
	}
	for i, tr := range c.Grid.TailRows {
		if tr.Stride <= 0 || tr.Span <= 0 {
			return fmt.Errorf("tail_rows[%d]: stride and span must be positive", i)
		}
	}
	if c.Catalog.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.UI.Tables < 1 {
		return errors.New("at least one table must be configured")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Metrics converts the grid settings to timetable metrics.
func (c *Config) Metrics() timetable.Metrics {
	return timetable.Metrics{
		CellWidth:       c.Grid.CellWidth,
		CellHeight:      c.Grid.CellHeight,
		HeaderColWidth:  c.Grid.HeaderColWidth,
		HeaderRowHeight: c.Grid.HeaderRowHeight,
	}
}

// Tail converts the tail row settings for the axis builder.
func (c *Config) Tail() []timetable.TailRow {
	rows := make([]timetable.TailRow, 0, len(c.Grid.TailRows))
	for _, tr := range c.Grid.TailRows {
		rows = append(rows, timetable.TailRow{Stride: tr.Stride, Span: tr.Span})
	}
	return rows
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
