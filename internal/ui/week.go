package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joonholee/siganpyo/internal/timetable"
)

func (a *App) weekCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the week as the catalog lays it out",
		Long: `Display the catalog's default placements as a week overview.

Shows every configured day column with its lectures, per-day totals,
and how full the grid is overall.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			entries, err := a.repo.List(context.Background())
			if err != nil {
				return fmt.Errorf("listing lectures: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No lectures in the catalog.")
				return nil
			}

			axis := timetable.BuildAxis(a.config.Grid.BaseTime, a.config.Tail())
			days := a.config.Grid.Days
			entries = sortByDay(entries, days)

			maxTitleWidth := 24
			if verbose {
				if available := termWidth() - 36; available > maxTitleWidth {
					maxTitleWidth = available
				}
			}

			// Print header
			header := fmt.Sprintf("WEEK: %s - %s", days[0], days[len(days)-1])
			fmt.Printf("\n  %s\n", formatHeader(header))
			fmt.Println(strings.Repeat("─", 60))

			var stats Stats
			var currentDay string
			for _, e := range entries {
				if e.Day != currentDay {
					if currentDay != "" {
						fmt.Println()
					}
					fmt.Printf("  %s\n", formatHeader(e.Day))
					currentDay = e.Day
				}

				duration := formatMuted(FormatDuration(EntryMinutes(axis, e)))
				title := fmt.Sprintf("%-*s", maxTitleWidth, truncate(e.Lecture.Title, maxTitleWidth))
				fmt.Printf("    %s  %s  %s  %s\n",
					EntryTimeRange(axis, e),
					formatTitle(title),
					formatMuted(e.Room),
					duration,
				)
				AccumulateStats(&stats, axis, e)
			}

			// Print stats
			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("  Lectures: %d  |  Hours: %s\n",
				stats.Lectures, formatStats(FormatDuration(stats.TotalMinutes)))
			if day, minutes := stats.BusiestDay(); day != "" {
				fmt.Printf("  Busiest day: %s (%s)\n", day, formatStats(FormatDuration(minutes)))
			}

			totalSlots := len(days) * len(axis)
			fmt.Printf("  Fill: %s\n", OccupancyBar(stats.OccupiedSlots, totalSlots, 20))

			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full lecture titles")
	return cmd
}
