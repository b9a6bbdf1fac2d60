// ABOUTME: Like command toggling the heart on a board note.
// ABOUTME: Flips locally first, then patches the backend.

package main

import (
	"fmt"

	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Toggle the heart on a note",
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
		liked, err := appStore.ToggleLike(note.ID)
		if err != nil {
			return err
		}
		if liked {
			fmt.Println(ui.Success("Liked ♥"))
		} else {
			fmt.Println(ui.Success("Unliked ♡"))
		}
		return nil
	},
}

func init() {
	boardCmd.AddCommand(likeCmd)
}
