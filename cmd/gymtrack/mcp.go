// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/gymtrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and keeps the storage open until it
exits. Logs go to stderr.

CONFIGURATION:

  {
    "mcpServers": {
      "gymtrack": {
        "command": "gymtrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  quick_check_in, create_workout, list_workouts, get_workout, this_week,
  log_exercise, complete_workout, delete_workout, exercise_history,
  one_rep_max, list_exercises, add_exercise, add_body_metric,
  latest_body_metrics, list_goals, add_goal, update_goal_progress,
  update_goal, delete_goal, add_milestone, update_milestone,
  delete_milestone, goals_summary

AVAILABLE RESOURCES:

  gymtrack://summary   Dashboard of workouts, body metrics and goals
  gymtrack://today     Today's workout and active goals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(app, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
