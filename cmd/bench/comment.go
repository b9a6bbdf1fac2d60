// ABOUTME: Comment command appending an echo to a board note.
// ABOUTME: The full comment sequence is patched to the backend.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Leave an echo on a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRemote(); err != nil {
			return err
		}
		if strings.TrimSpace(args[1]) == "" {
			return fmt.Errorf("comment text cannot be empty")
		}
		if err := appStore.HydrateNotes(cmd.Context()); err != nil {
			return fmt.Errorf("fetch notes: %w", err)
		}
		note, err := appStore.NoteByPrefix(args[0])
		if err != nil {
			return err
		}
		if _, err := appStore.AddComment(note.ID, args[1], currentProfile); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Echoed on note %s", note.ID.String()[:6])))
		return nil
	},
}

func init() {
	boardCmd.AddCommand(commentCmd)
}
