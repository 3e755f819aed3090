// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/ecommit/ecommit/internal/config"
	"github.com/ecommit/ecommit/internal/store"
)

// NewMigrateCmd creates the migrate subcommand tree.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}
	cmd.PersistentFlags().String("database-url", "", "PostgreSQL connection URL")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  runMigrateUp,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations (destructive)",
		RunE:  runMigrateDown,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the applied and embedded migration versions",
		RunE:  runMigrateStatus,
	})

	return cmd
}

func openMigrator(cmd *cobra.Command) (*store.Migrator, error) {
	cfg, err := config.Load(resolveConfigPath(), cmd.Flags())
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL == "" {
		return nil, oops.Code("CONFIG_INVALID").Errorf("database.url is required")
	}
	return store.NewMigrator(cfg.Database.URL)
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	migrator, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	cmd.Println("Running migrations...")
	if err := migrator.Up(); err != nil {
		return oops.Code("MIGRATION_FAILED").Wrap(err)
	}
	cmd.Println("Migrations completed successfully")
	return nil
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	migrator, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	cmd.Println("Rolling back migrations...")
	if err := migrator.Down(); err != nil {
		return oops.Code("MIGRATION_FAILED").Wrap(err)
	}
	cmd.Println("Rollback completed successfully")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, _ []string) error {
	migrator, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	version, dirty, err := migrator.Version()
	if err != nil {
		return oops.Code("MIGRATION_STATUS_FAILED").Wrap(err)
	}

	embedded, err := store.EmbeddedVersions()
	if err != nil {
		return oops.Code("MIGRATION_STATUS_FAILED").Wrap(err)
	}

	cmd.Printf("Applied version: %d (dirty: %v)\n", version, dirty)
	cmd.Printf("Embedded versions: %v\n", embedded)
	return nil
}
