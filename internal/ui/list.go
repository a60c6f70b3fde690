package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joonholee/siganpyo/internal/timetable"
)

func (a *App) listCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog lectures",
		Long: `List the lectures in the catalog with their default placement.

If --day is specified, only lectures on that day are shown.`,
		Example: `  siganpyo list
  siganpyo list --day=월`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			entries, err := a.repo.List(context.Background())
			if err != nil {
				return fmt.Errorf("listing lectures: %w", err)
			}

			if day != "" {
				filtered := entries[:0:0]
				for _, e := range entries {
					if e.Day == day {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			if len(entries) == 0 {
				fmt.Println("No lectures in the catalog.")
				return nil
			}

			axis := timetable.BuildAxis(a.config.Grid.BaseTime, a.config.Tail())
			entries = sortByDay(entries, a.config.Grid.Days)

			// Print lectures grouped by day
			var currentDay string
			for _, e := range entries {
				if e.Day != currentDay {
					if currentDay != "" {
						fmt.Println()
					}
					fmt.Printf("=== %s ===\n", formatHeader(e.Day))
					currentDay = e.Day
				}

				fmt.Printf("  %s  %s  %s  %s\n",
					EntryTimeRange(axis, e),
					formatTitle(truncate(e.Lecture.Title, 24)),
					formatMuted(SlotRangeLabel(e)),
					formatMuted(e.Room),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Only show lectures on this day (e.g. 월)")

	return cmd
}
