// ABOUTME: CLI commands for syncing the charm backend between machines.
// ABOUTME: Wraps the charm CLI for linking and the kv client for push and restore.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/charm"
	"github.com/spf13/cobra"
)

var syncYes bool

var syncCmd = &cobra.Command{
	Use:         "sync",
	Short:       "Sync training data across devices",
	Annotations: map[string]string{skipTracker: "true"},
	Long: `Share training data between machines through a charm server.

Only the charm backend is synced (--backend charm, or "backend": "charm" in
the config file). Values are encrypted with your charm SSH key before they
leave the machine, and every write is pushed as it happens.

SETUP:

  gymtrack sync link       # on each machine, same charm account
  gymtrack sync status     # account, server and stored namespaces

RECOVERY:

  gymtrack sync push       # exchange changes now
  gymtrack sync restore    # rebuild the local replica from the server`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this machine to a charm account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("link"); err != nil {
			return fmt.Errorf("charm link: %w (install the charm CLI with 'go install github.com/charmbracelet/charm@latest')", err)
		}
		color.Green("\n✓ Linked to %s", charmHost())

		client, err := charm.Open(charm.DefaultDBName, cfg.CharmHost)
		if err != nil {
			color.Yellow("⚠ Could not open charm storage: %v", err)
			return nil
		}
		defer client.Close()

		if err := client.Push(); err != nil {
			color.Yellow("⚠ First push failed: %v", err)
		} else {
			color.Green("✓ Pulled existing data")
		}
		if cfg.GetBackend() != "charm" {
			fmt.Println("\nSet \"backend\": \"charm\" in your config to store data in Charm.")
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Unlink this machine from the charm account",
	Long: `Unlink this machine from the charm account.

Local data stays in place; run 'gymtrack sync link' to reconnect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("unlink"); err != nil {
			return fmt.Errorf("charm unlink: %w", err)
		}
		color.Yellow("✗ Unlinked from %s", charmHost())
		fmt.Println("Local training data is kept.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the linked account and stored namespaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.Open(charm.DefaultDBName, cfg.CharmHost)
		if err != nil {
			color.Yellow("Charm storage unavailable: %v", err)
			fmt.Println("\nRun 'gymtrack sync link' first.")
			return nil
		}
		defer client.Close()

		id, err := client.AccountID()
		if err != nil {
			color.Yellow("Not linked")
			fmt.Println("\nRun 'gymtrack sync link' first.")
			return nil
		}

		fmt.Printf("Account: %s\n", id)
		fmt.Printf("Server:  %s\n", charmHost())
		fmt.Printf("Backend: %s\n", cfg.GetBackend())
		if client.IsReadOnly() {
			color.Yellow("⚠ Read-only: another process holds the database")
		}
		fmt.Println()

		names, err := client.Namespaces()
		if err != nil {
			return fmt.Errorf("failed to list namespaces: %w", err)
		}
		if len(names) == 0 {
			fmt.Println(faint.Sprint("No namespaces stored yet"))
		}
		for _, ns := range names {
			fmt.Printf("  %s\n", ns)
		}
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Exchange changes with the charm server now",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.Open(charm.DefaultDBName, cfg.CharmHost)
		if err != nil {
			return err
		}
		defer client.Close()

		if client.IsReadOnly() {
			return charm.ErrReadOnly
		}
		if err := client.Push(); err != nil {
			return fmt.Errorf("push failed: %w", err)
		}
		color.Green("✓ In sync with %s", charmHost())
		return nil
	},
}

var syncRestoreCmd = &cobra.Command{
	Use:     "restore",
	Aliases: []string{"reset"},
	Short:   "Rebuild local charm data from the server",
	Long: `Throw away the local charm replica and download it again.

Local changes that were never pushed are lost. Use this when the local
replica is corrupt or out of step with other machines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !syncYes && !confirm(os.Stdin, "Local charm data will be replaced by the server copy. Continue?") {
			fmt.Println("Canceled.")
			return nil
		}

		client, err := charm.Open(charm.DefaultDBName, cfg.CharmHost)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Restore(); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		color.Green("✓ Restored local data from %s", charmHost())
		return nil
	},
}

func charmHost() string {
	if cfg.CharmHost != "" {
		return cfg.CharmHost
	}
	return charm.DefaultHost
}

// runCharm runs the charm CLI interactively against the configured server.
func runCharm(args ...string) error {
	charmCmd := exec.Command("charm", args...)
	charmCmd.Stdin = os.Stdin
	charmCmd.Stdout = os.Stdout
	charmCmd.Stderr = os.Stderr
	if cfg.CharmHost != "" {
		charmCmd.Env = append(os.Environ(), "CHARM_HOST="+cfg.CharmHost)
	}
	return charmCmd.Run()
}

func init() {
	syncRestoreCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "skip confirmation")

	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncRestoreCmd)
	rootCmd.AddCommand(syncCmd)
}
