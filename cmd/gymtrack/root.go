// ABOUTME: Root Cobra command for gymtrack CLI.
// ABOUTME: Loads config and opens the tracker via PersistentPre/PostRunE.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/config"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/harperreed/gymtrack/internal/tracker"
	"github.com/spf13/cobra"
)

// skipTracker marks commands that run without an opened tracker.
const skipTracker = "skip-tracker"

var (
	backendFlag string
	dataDirFlag string

	cfg    *config.Config
	logger *log.Logger
	app    *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "gymtrack",
	Short: "Personal workout, body metric and goal tracker",
	Long: `Gymtrack is a CLI tool for logging strength training, body measurements
and fitness goals.

QUICK START:

  $ gymtrack profile init --name "Sam"     # Sign in locally (required once)
  $ gymtrack checkin                       # Mark today as a training day
  $ gymtrack workout add Push              # Start a workout
  $ gymtrack workout log abc123 1 --set 10x60 --set 8x70
  $ gymtrack workout done abc123 --duration 60
  $ gymtrack stats                         # Weekly dashboard

EXERCISES:

  $ gymtrack exercise list --muscle Chest  # Browse the catalog
  $ gymtrack exercise history 1            # Recent bench press sets
  $ gymtrack exercise 1rm 100 5            # Estimate a one-rep max

BODY AND GOALS:

  $ gymtrack body add --weight 82.5 --waist 86
  $ gymtrack goal add "Squat 140" --category strength --target 140 --unit kg
  $ gymtrack goal progress abc123 130

STORAGE:

  Data lives in $XDG_DATA_HOME/gymtrack (sqlite by default). Choose another
  backend with --backend or the config file: sqlite, badger, charm, memory.
  The charm backend syncs across devices with 'gymtrack sync link'.

MCP INTEGRATION:

  Run 'gymtrack mcp' to start the Model Context Protocol server for AI
  assistants:

  {
    "mcpServers": {
      "gymtrack": { "command": "gymtrack", "args": ["mcp"] }
    }
  }`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}

		logger, err = cfg.NewLogger(os.Stderr)
		if err != nil {
			return err
		}

		if !needsTracker(cmd) {
			return nil
		}
		return openTracker()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeTracker()
	},
}

// needsTracker reports whether cmd or any parent opts out of the tracker.
func needsTracker(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipTracker] == "true" {
			return false
		}
		if c.Name() == "help" || c.Name() == "completion" {
			return false
		}
	}
	return true
}

func openTracker() error {
	backend, err := cfg.OpenBackend()
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", cfg.GetBackend(), err)
	}

	app, err = tracker.Open(cfg.Session(), storage.NewAdapter(backend, logger), tracker.WithLogger(logger))
	if err != nil {
		_ = backend.Close()
		if errors.Is(err, tracker.ErrNotAuthenticated) {
			return fmt.Errorf("%w: run 'gymtrack profile init --name <name>' first", err)
		}
		return err
	}
	return nil
}

func closeTracker() error {
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite, badger, charm or memory")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default $XDG_DATA_HOME/gymtrack)")
}
