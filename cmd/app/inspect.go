package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/HamsterHaven_Go/internal/bootstrap"
	"github.com/osse101/HamsterHaven_Go/internal/config"
	"github.com/osse101/HamsterHaven_Go/internal/save"
)

func newInspectCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "inspect [profile-id]",
		Short: "Print a summary of a saved profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			stores, err := bootstrap.OpenStores(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer stores.Close()

			ids := []string{cfg.ProfileID}
			if len(args) == 1 {
				ids = args
			}
			if all {
				if ids, err = stores.Profile.List(cmd.Context()); err != nil {
					return err
				}
			}
			return printSummaries(cmd.Context(), cmd.OutOrStdout(), stores.Profile, ids)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Summarize every stored profile")
	return cmd
}

type profileLoader interface {
	Load(ctx context.Context, id string) (*save.Profile, error)
}

func printSummaries(ctx context.Context, out io.Writer, store profileLoader, ids []string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROFILE\tSAVED\tSEEDS\tRUN\tCOINS\tALIVE\tRAISED\tACHIEVEMENTS\tLEGACY")
	for _, id := range ids {
		p, err := store.Load(ctx, id)
		if err != nil {
			return fmt.Errorf("load %s: %w", id, err)
		}
		s := p.Summarize()
		run := "idle"
		if s.Active {
			run = "active"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.0f\t%d\t%d\t%d\t%t\n",
			s.ID, s.SavedAt.Format(time.DateTime), s.Seeds, run, s.Coins, s.Alive, s.Raised, s.Achievements, s.HasLegacy)
	}
	return tw.Flush()
}
