package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/HamsterHaven_Go/internal/config"
	"github.com/osse101/HamsterHaven_Go/internal/database"
)

func newMigrateCmd() *cobra.Command {
	var statusOnly bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (postgres store only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.StoreDriver != config.StoreDriverPostgres {
				return fmt.Errorf("migrate requires store_driver %q, have %q", config.StoreDriverPostgres, cfg.StoreDriver)
			}

			connString := cfg.GetDBConnString()
			if !statusOnly {
				if err := database.Migrate(cmd.Context(), connString); err != nil {
					return err
				}
			}
			version, err := database.SchemaVersion(cmd.Context(), connString)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
			return nil
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "Only print the current schema version")
	return cmd
}
