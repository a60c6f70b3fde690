package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joonholee/siganpyo/internal/catalog"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import lectures from another catalog",
		Long: `Import all lectures from another Siganpyo catalog into the current one.

Lectures whose id already exists in the current catalog are skipped.

Example:
  siganpyo import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Catalog.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return fmt.Errorf("source catalog matches current catalog")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source catalog does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source catalog: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source catalog path is a directory: %s", sourcePath)
			}

			imported, skipped, err := importLectures(context.Background(), a.repo, sourcePath)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d lectures from %s\n", imported, sourcePath)
			if skipped > 0 {
				fmt.Printf("Skipped %d lectures with existing ids\n", skipped)
			}
			return nil
		},
	}

	return cmd
}

func importLectures(ctx context.Context, dest catalog.Repository, sourcePath string) (imported, skipped int, err error) {
	sourceRepo, err := catalog.New(sourcePath)
	if err != nil {
		return 0, 0, fmt.Errorf("opening source catalog: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	entries, err := sourceRepo.List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("listing source lectures: %w", err)
	}

	for _, e := range entries {
		if err := dest.Put(ctx, e); err != nil {
			if errors.Is(err, catalog.ErrDuplicateID) {
				skipped++
				continue
			}
			return imported, skipped, fmt.Errorf("importing lecture %q: %w", e.Lecture.ID, err)
		}
		imported++
	}

	return imported, skipped, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
