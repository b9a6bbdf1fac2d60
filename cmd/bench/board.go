// ABOUTME: Board command group for the pinboard message board.
// ABOUTME: Listing hydrates from the backend; mutations are optimistic.

package main

import (
	"fmt"

	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "The pinboard message board",
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pinned notes, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRemote(); err != nil {
			return err
		}
		if err := appStore.HydrateNotes(cmd.Context()); err != nil {
			return fmt.Errorf("fetch notes: %w", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		notes := appStore.Notes()
		if limit > 0 && len(notes) > limit {
			notes = notes[:limit]
		}

		if len(notes) == 0 {
			fmt.Println("The board is empty. Pin something.")
			return nil
		}
		for _, note := range notes {
			fmt.Print(ui.FormatNoteListItem(note))
		}
		return nil
	},
}

var boardShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note and its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRemote(); err != nil {
			return err
		}
		if err := appStore.HydrateNotes(cmd.Context()); err != nil {
			return fmt.Errorf("fetch notes: %w", err)
		}
		note, err := appStore.NoteByPrefix(args[0])
		if err != nil {
			return err
		}
		fmt.Print(ui.FormatNoteDetail(note))
		return nil
	},
}

func init() {
	boardListCmd.Flags().Int("limit", 0, "max notes to show (0 = all)")
	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardShowCmd)
	rootCmd.AddCommand(boardCmd)
}
