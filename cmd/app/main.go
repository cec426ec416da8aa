// Command hamsterhaven runs the hamster habitat server and its maintenance tools.
//
// @title Hamster Haven API
// @version 1.0
// @description Control surface for the hamster habitat simulation.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

//go:generate go run github.com/swaggo/swag/cmd/swag init -g main.go -d ./,../../internal/handler -o ../../docs --parseInternal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/HamsterHaven_Go/internal/config"
	"github.com/osse101/HamsterHaven_Go/internal/handler"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hamsterhaven",
		Short:         "HamsterHaven - raise hamsters, breed dynasties, grow your legacy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv(config.EnvConfigPath, configPath)
			}
			return nil
		},
		RunE: runServe,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (overrides "+config.EnvConfigPath+")")
	rootCmd.Version = handler.GitCommit

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newMigrateCmd())
	return rootCmd
}
