package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joonholee/siganpyo/internal/catalog"
	"github.com/joonholee/siganpyo/internal/config"
	"github.com/joonholee/siganpyo/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    catalog.Repository
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool
}

// NewApp creates a new CLI application with the given catalog and config.
// A nil repo is opened lazily from the configured database path.
func NewApp(repo catalog.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "siganpyo",
		Short: "An interactive weekly timetable for the terminal",
		Long: `Siganpyo is a terminal timetable for planning a week of lectures.

It renders a Monday-to-Friday grid of half-hour slots, lets you place
lectures from a catalog, and move them around with the keyboard.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.weekCmd())

	return a
}

// ensureRepo opens the catalog database on first use and installs the
// sample lectures when it is empty.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	dbPath := a.config.Catalog.DBPath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := catalog.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	if err := repo.Seed(context.Background()); err != nil {
		_ = repo.Close()
		return fmt.Errorf("seeding catalog: %w", err)
	}

	a.repo = repo
	return nil
}

// Close releases the catalog database if it was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("siganpyo %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
