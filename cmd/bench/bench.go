// ABOUTME: Rest, wake, and status commands for the shared bench.
// ABOUTME: Each profile's flag updates independently on the singleton row.

package main

import (
	"fmt"

	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Sit down on the bench",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRemote(); err != nil {
			return err
		}
		if err := appStore.HydrateBench(cmd.Context()); err != nil {
			return fmt.Errorf("fetch bench status: %w", err)
		}
		if appStore.Bench().Resting(currentProfile) {
			fmt.Printf("%s is already resting.\n", currentProfile)
			return nil
		}
		appStore.ToggleRest(currentProfile)
		fmt.Println(ui.Success(fmt.Sprintf("%s rests on the bench.", currentProfile)))
		return nil
	},
}

var wakeCmd = &cobra.Command{
	Use:   "wake",
	Short: "Get up from the bench",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRemote(); err != nil {
			return err
		}
		if err := appStore.HydrateBench(cmd.Context()); err != nil {
			return fmt.Errorf("fetch bench status: %w", err)
		}
		if !appStore.Bench().Resting(currentProfile) {
			fmt.Printf("%s is already wandering.\n", currentProfile)
			return nil
		}
		appStore.ToggleRest(currentProfile)
		fmt.Println(ui.Success(fmt.Sprintf("%s wanders off.", currentProfile)))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Who is resting on the bench",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRemote(); err != nil {
			return err
		}
		if err := appStore.HydrateBench(cmd.Context()); err != nil {
			return fmt.Errorf("fetch bench status: %w", err)
		}
		fmt.Print(ui.FormatBench(appStore.Bench(), currentProfile))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restCmd)
	rootCmd.AddCommand(wakeCmd)
	rootCmd.AddCommand(statusCmd)
}
