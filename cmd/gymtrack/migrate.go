// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Copies each namespace verbatim and can switch the configured backend.
package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/charm"
	"github.com/harperreed/gymtrack/internal/config"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo         string
	migrateToDir      string
	migrateForce      bool
	migrateSetDefault bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to another storage backend",
	Long: `Copy all stored data from the current backend to another one.

Namespaces are copied byte for byte, so nothing is reinterpreted on the way.
Namespaces that were never written are skipped and seed on first use.

USAGE:

  gymtrack migrate --to badger                  # sqlite -> badger, same data dir
  gymtrack migrate --to sqlite --to-dir ~/gym   # into another directory
  gymtrack migrate --to charm --set-default     # and switch the config

The destination must be empty unless --force is given.`,
	Annotations: map[string]string{skipTracker: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo == "" {
			return fmt.Errorf("--to is required (sqlite, badger, charm or memory)")
		}
		srcDir := cfg.GetDataDir()
		dstDir := srcDir
		if migrateToDir != "" {
			dstDir = config.ExpandPath(migrateToDir)
		}
		if migrateTo == cfg.GetBackend() && dstDir == srcDir && migrateTo != "charm" {
			return fmt.Errorf("source and destination are the same %s store", migrateTo)
		}
		if migrateTo == "charm" && cfg.GetBackend() == "charm" {
			return fmt.Errorf("source and destination are the same charm store")
		}

		if migrateTo == "badger" && !migrateForce {
			nonEmpty, err := storage.IsDirNonEmpty(filepath.Join(dstDir, "badger"))
			if err != nil {
				return err
			}
			if nonEmpty {
				return fmt.Errorf("destination %s is not empty (use --force to overwrite)", filepath.Join(dstDir, "badger"))
			}
		}

		src, err := cfg.OpenBackend()
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer src.Close()

		dst, err := config.OpenBackend(migrateTo, dstDir, cfg.CharmHost)
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer dst.Close()

		if !migrateForce {
			if err := ensureEmpty(dst); err != nil {
				return err
			}
		}

		// Sync to charm cloud once after the copy.
		remote, isCharm := dst.(*charm.Client)
		if isCharm {
			remote.SetPushOnWrite(false)
		}

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if isCharm {
			if err := remote.Push(); err != nil {
				return fmt.Errorf("sync charm destination: %w", err)
			}
		}

		color.Green("✓ Migrated %s -> %s", cfg.GetBackend(), migrateTo)
		for _, ns := range storage.AllNamespaces {
			if n, ok := summary.Copied[ns]; ok {
				fmt.Printf("  %s %d bytes\n", padRight(string(ns), 14), n)
			}
		}
		for _, ns := range summary.Skipped {
			fmt.Printf("  %s %s\n", padRight(string(ns), 14), faint.Sprint("skipped (never written)"))
		}

		if migrateSetDefault {
			fileCfg, err := config.LoadFile()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fileCfg.Backend = migrateTo
			if migrateToDir != "" {
				fileCfg.DataDir = migrateToDir
			}
			if err := fileCfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			color.Green("✓ Default backend is now %s", migrateTo)
		}
		return nil
	},
}

// ensureEmpty refuses to overwrite a destination that already holds data.
func ensureEmpty(b storage.Backend) error {
	for _, ns := range storage.AllNamespaces {
		_, err := b.Get(string(ns))
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to inspect destination: %w", err)
		}
		return fmt.Errorf("destination already has %s data (use --force to overwrite)", ns)
	}
	return nil
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite, badger, charm or memory")
	migrateCmd.Flags().StringVar(&migrateToDir, "to-dir", "", "destination data directory (default: current data dir)")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite data already in the destination")
	migrateCmd.Flags().BoolVar(&migrateSetDefault, "set-default", false, "make the destination the configured backend")
	rootCmd.AddCommand(migrateCmd)
}
