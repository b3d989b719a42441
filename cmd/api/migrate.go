package main

import (
	"fmt"

	"github.com/gamassss/urlist/internal/repository/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
		Long: `Manage database schema migrations.

Subcommands:
  up       Apply all pending migrations
  status   List migrations that have not been applied

Applied versions are tracked in the schema_migrations table.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dbPool, err := setupDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer dbPool.Close()

			return postgres.Migrate(ctx, dbPool)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dbPool, err := setupDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer dbPool.Close()

			pending, err := postgres.PendingMigrations(ctx, dbPool)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(pending) == 0 {
				fmt.Fprintln(out, "Database is up to date")
				return nil
			}

			fmt.Fprintf(out, "%d pending migration(s):\n", len(pending))
			for _, m := range pending {
				fmt.Fprintf(out, "  %04d  %s\n", m.Version, m.Description)
			}
			return nil
		},
	})

	return cmd
}
