package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joonholee/siganpyo/internal/catalog"
	"github.com/joonholee/siganpyo/internal/timetable"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [lecture-id]",
		Short: "Show one catalog lecture",
		Long: `Show the details of a single catalog lecture by its id.

Example:
  siganpyo show calc1`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			e, err := a.repo.Get(context.Background(), args[0])
			if errors.Is(err, catalog.ErrLectureNotFound) {
				return fmt.Errorf("no lecture with id %q in the catalog", args[0])
			}
			if err != nil {
				return fmt.Errorf("loading lecture: %w", err)
			}

			axis := timetable.BuildAxis(a.config.Grid.BaseTime, a.config.Tail())

			fmt.Printf("%s\n", formatTitle(e.Lecture.Title))
			fmt.Printf("  id    %s\n", e.Lecture.ID)
			fmt.Printf("  day   %s\n", e.Day)
			fmt.Printf("  time  %s %s\n", EntryTimeRange(axis, e), formatMuted(SlotRangeLabel(e)))
			fmt.Printf("  room  %s\n", e.Room)
			fmt.Printf("  length %s\n", FormatDuration(EntryMinutes(axis, e)))

			return nil
		},
	}
}
