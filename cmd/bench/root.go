// ABOUTME: Root command wiring the profile, remote client, cache, and store.
// ABOUTME: Missing credentials degrade to offline mode for cache-backed commands.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/rest"
	"github.com/harper/bench/internal/store"
	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
)

var (
	currentProfile models.Profile
	appStore       *store.Store
	offline        bool
)

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "A quiet companion: pinboard, mood calendar, and a bench to rest on",
	Long: `bench keeps a shared pinboard, a mood calendar, and a resting bench
for two profiles, Knight and Hornet. Changes apply locally first and are
persisted to the hosted backend in the background.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		asFlag, _ := cmd.Flags().GetString("as")
		if asFlag == "" {
			asFlag = os.Getenv("BENCH_PROFILE")
		}
		if asFlag == "" {
			asFlag = models.Knight.String()
		}
		profile, err := models.ParseProfile(asFlag)
		if err != nil {
			return err
		}
		currentProfile = profile

		var remote store.Remote
		cfg, err := rest.LoadConfig()
		if err != nil {
			return fmt.Errorf("load remote config: %w", err)
		}
		client, err := rest.NewClient(cfg)
		switch {
		case err == nil:
			remote = client
		case errors.Is(err, rest.ErrMissingCredentials):
			offline = true
			fmt.Fprintln(os.Stderr, ui.Warn("no API credentials; running offline (calendar only)"))
		default:
			return err
		}

		cache, err := store.OpenCache(store.DefaultCachePath())
		if err != nil {
			return fmt.Errorf("open calendar cache: %w", err)
		}

		appStore = store.New(remote, cache)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appStore != nil {
			_ = appStore.Close()
		}
	},
}

// requireRemote fails commands that cannot run without the backend.
func requireRemote() error {
	if offline {
		return rest.ErrMissingCredentials
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("as", "", "profile to act as (Knight or Hornet)")
}
