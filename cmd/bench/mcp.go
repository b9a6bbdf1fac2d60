// ABOUTME: MCP command exposing the board, calendar, and bench over stdio.
// ABOUTME: Hydrates everything once so tools see the remote state.

package main

import (
	"fmt"
	"os"

	"github.com/harper/bench/internal/mcp"
	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server over stdio",
	Long:  `Run a Model Context Protocol server over stdio, exposing board notes, the mood calendar, and bench status as tools for AI assistants.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRemote(); err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := appStore.HydrateNotes(ctx); err != nil {
			return fmt.Errorf("fetch notes: %w", err)
		}
		if err := appStore.HydrateBench(ctx); err != nil {
			return fmt.Errorf("fetch bench status: %w", err)
		}
		for _, p := range models.Profiles() {
			if err := appStore.HydrateCalendar(ctx, p); err != nil {
				fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf("calendar for %s unavailable: %v", p, err)))
			}
		}
		return mcp.NewServer(appStore).Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
