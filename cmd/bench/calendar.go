// ABOUTME: Calendar command group for moods, journals, and stats.
// ABOUTME: Works from the local cache when the backend is unreachable.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/stats"
	"github.com/harper/bench/internal/tui"
	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "The mood calendar and journal",
}

var calendarShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a month of moods with stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		hydrateCalendarBestEffort(cmd)

		monthFlag, _ := cmd.Flags().GetInt("month")
		month := time.Now().Month()
		if monthFlag != 0 {
			if monthFlag < 1 || monthFlag > 12 {
				return fmt.Errorf("month must be 1-12, got %d", monthFlag)
			}
			month = time.Month(monthFlag)
		}

		entries := appStore.Calendar(currentProfile)
		fmt.Print(ui.FormatMonth(month, entries))
		fmt.Println()
		fmt.Print(ui.FormatStats(stats.Compute(entries)))
		return nil
	},
}

var calendarMoodCmd = &cobra.Command{
	Use:   "mood <mood> [date]",
	Short: "Record a mood for a day (default today)",
	Long:  `Record a mood for a day. Moods: happy, sad, angry, neutral, peaceful. The date defaults to today and must fall in the tracked year.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, err := models.ParseMood(args[0])
		if err != nil {
			return err
		}
		date := defaultDate(args, 1)
		if err := appStore.SetMood(currentProfile, date, mood); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s %s on %s", mood.Glyph(), mood.Label(), date)))
		return nil
	},
}

var calendarJournalCmd = &cobra.Command{
	Use:   "journal <text> [date]",
	Short: "Write a journal entry for a day (default today)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := defaultDate(args, 1)
		if err := appStore.SetJournal(currentProfile, date, args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success("Journal saved for " + date))
		return nil
	},
}

var calendarStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Dominant mood and soul vessel for the year",
	RunE: func(cmd *cobra.Command, args []string) error {
		hydrateCalendarBestEffort(cmd)
		fmt.Print(ui.FormatStats(stats.Compute(appStore.Calendar(currentProfile))))
		return nil
	},
}

var calendarEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive calendar (hold space to set a mood)",
	RunE: func(cmd *cobra.Command, args []string) error {
		hydrateCalendarBestEffort(cmd)
		return tui.Run(appStore, currentProfile)
	},
}

// hydrateCalendarBestEffort pulls the year from the backend when online
// and quietly keeps the cached copy when it cannot.
func hydrateCalendarBestEffort(cmd *cobra.Command) {
	if offline {
		return
	}
	if err := appStore.HydrateCalendar(cmd.Context(), currentProfile); err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf("backend unreachable, using cached calendar: %v", err)))
	}
}

func defaultDate(args []string, idx int) string {
	if len(args) > idx {
		return args[idx]
	}
	return time.Now().Format(models.DateLayout)
}

func init() {
	calendarShowCmd.Flags().Int("month", 0, "month to show (1-12, default current)")
	calendarCmd.AddCommand(calendarShowCmd)
	calendarCmd.AddCommand(calendarMoodCmd)
	calendarCmd.AddCommand(calendarJournalCmd)
	calendarCmd.AddCommand(calendarStatsCmd)
	calendarCmd.AddCommand(calendarEditCmd)
	rootCmd.AddCommand(calendarCmd)
}
