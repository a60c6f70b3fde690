package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Grid.Days) != 5 || cfg.Grid.Days[0] != "월" {
		t.Errorf("default days = %v", cfg.Grid.Days)
	}
	if cfg.Grid.BaseTime != "09:00" {
		t.Errorf("base time = %q", cfg.Grid.BaseTime)
	}
	if len(cfg.Grid.TailRows) != 6 {
		t.Errorf("tail rows = %d, want 6", len(cfg.Grid.TailRows))
	}
	if cfg.Grid.TailRows[0].Stride != 55 || cfg.Grid.TailRows[0].Span != 50 {
		t.Errorf("tail row = %+v, want stride 55 span 50", cfg.Grid.TailRows[0])
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Grid.CellWidth != Default().Grid.CellWidth {
		t.Errorf("cell width = %d", cfg.Grid.CellWidth)
	}
}

func TestLoadFrom_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[grid]
base_time = "08:30"
cell_width = 100

[ui]
theme = "mocha"
tables = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Grid.BaseTime != "08:30" {
		t.Errorf("base time = %q, want 08:30", cfg.Grid.BaseTime)
	}
	if cfg.Grid.CellWidth != 100 {
		t.Errorf("cell width = %d, want 100", cfg.Grid.CellWidth)
	}
	if cfg.UI.Theme != "mocha" || cfg.UI.Tables != 2 {
		t.Errorf("ui = %+v", cfg.UI)
	}
	// Untouched fields keep their defaults.
	if cfg.Grid.CellHeight != Default().Grid.CellHeight {
		t.Errorf("cell height = %d", cfg.Grid.CellHeight)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("SIGANPYO_BASE_TIME", "10:00")
	t.Setenv("SIGANPYO_UI_THEME", "latte")
	t.Setenv("SIGANPYO_DAYS", "월,화,수")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Grid.BaseTime != "10:00" {
		t.Errorf("base time = %q", cfg.Grid.BaseTime)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme = %q", cfg.UI.Theme)
	}
	if len(cfg.Grid.Days) != 3 {
		t.Errorf("days = %v", cfg.Grid.Days)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad base time", func(c *Config) { c.Grid.BaseTime = "9am" }, "base_time"},
		{"no days", func(c *Config) { c.Grid.Days = nil }, "day column"},
		{"duplicate day", func(c *Config) { c.Grid.Days = []string{"월", "월"} }, "duplicate"},
		{"tiny cells", func(c *Config) { c.Grid.CellWidth = 1 }, "cell_width"},
		{"bad tail", func(c *Config) { c.Grid.TailRows[2].Stride = 0 }, "tail_rows[2]"},
		{"no db path", func(c *Config) { c.Catalog.DBPath = "" }, "db_path"},
		{"zero tables", func(c *Config) { c.UI.Tables = 0 }, "table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.UI.Theme = "mocha"
	cfg.Grid.CellWidth = 96

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.UI.Theme != "mocha" || loaded.Grid.CellWidth != 96 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestMetricsAndTail(t *testing.T) {
	cfg := Default()
	m := cfg.Metrics()
	if m.CellWidth != cfg.Grid.CellWidth || m.HeaderColWidth != cfg.Grid.HeaderColWidth {
		t.Errorf("metrics = %+v", m)
	}
	tail := cfg.Tail()
	if len(tail) != len(cfg.Grid.TailRows) {
		t.Errorf("tail length = %d", len(tail))
	}
}
