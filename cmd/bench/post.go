// ABOUTME: Post command for pinning a new note to the board.
// ABOUTME: The note appears locally at once; the create is queued behind it.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <text>",
	Short: "Pin a note to the board",
	Long:  `Pin a note to the message board as the current profile. An image URL or data URI can be attached with --image.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRemote(); err != nil {
			return err
		}

		imageURL, _ := cmd.Flags().GetString("image")
		var text string
		if len(args) == 1 {
			text = args[0]
		}
		if strings.TrimSpace(text) == "" && imageURL == "" {
			return fmt.Errorf("note needs text or an image")
		}

		note := appStore.PostNote(text, imageURL, currentProfile)
		fmt.Println(ui.Success(fmt.Sprintf("Pinned note %s", note.ID.String()[:6])))
		return nil
	},
}

func init() {
	postCmd.Flags().String("image", "", "image URL or data URI to attach")
	boardCmd.AddCommand(postCmd)
}
