// ABOUTME: Remove command for deleting a board note.
// ABOUTME: Local removal stands whatever the backend says.

package main

import (
	"fmt"

	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a note from the board",
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
		if err := appStore.DeleteNote(note.ID); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Removed note %s", note.ID.String()[:6])))
		return nil
	},
}

func init() {
	boardCmd.AddCommand(rmCmd)
}
