package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joonholee/siganpyo/internal/catalog"
	"github.com/joonholee/siganpyo/internal/timetable"
)

func (a *App) addCmd() *cobra.Command {
	var (
		id    string
		room  string
		day   string
		start int
		span  int
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a lecture to the catalog",
		Long: `Add a new lecture to the catalog with a default placement.

Example:
  siganpyo add "선형대수학" --id=linalg --day=수 --start=3 --span=3 --room=402`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			e := catalog.Entry{
				Lecture:   timetable.Lecture{ID: id, Title: args[0]},
				Room:      room,
				Day:       day,
				StartSlot: start,
				SpanSlots: span,
			}
			if e.Lecture.ID == "" {
				return fmt.Errorf("--id must be set")
			}
			if err := e.Schedule().Validate(a.config.Grid.Days); err != nil {
				return fmt.Errorf("invalid placement: %w", err)
			}

			ctx := context.Background()
			if err := a.repo.Put(ctx, e); err != nil {
				if errors.Is(err, catalog.ErrDuplicateID) {
					return fmt.Errorf("lecture id %q already exists in the catalog", id)
				}
				return fmt.Errorf("adding lecture: %w", err)
			}

			axis := timetable.BuildAxis(a.config.Grid.BaseTime, a.config.Tail())
			fmt.Printf("Added %s: %s %s %s\n",
				e.Lecture.ID,
				e.Lecture.Title,
				e.Day,
				EntryTimeRange(axis, e),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Lecture id (required)")
	cmd.Flags().StringVar(&room, "room", "", "Room label")
	cmd.Flags().StringVar(&day, "day", "", "Day column (required, e.g. 월)")
	cmd.Flags().IntVar(&start, "start", 0, "First slot, 1-based (required)")
	cmd.Flags().IntVar(&span, "span", 1, "Number of slots")

	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
