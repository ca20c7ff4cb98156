package cmd

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// snapshotCmd groups the snapshot cache maintenance commands.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage cached catalog pages",
}

// purgeCmd removes cached pages so the next request rebuilds them.
var purgeCmd = &cobra.Command{
	Use:   "purge [catalog...]",
	Short: "Delete cached pages of the given catalogs (all when none are given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		yes, _ := cmd.Flags().GetBool("yes")

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if dryRun {
			keys, err := a.catalogs.CachedPages(ctx, args...)
			if err != nil {
				return fmt.Errorf("failed to list cached pages: %w", err)
			}
			t := newTable(cmd.OutOrStdout(), "#", "Key")
			for i, k := range keys {
				t.AppendRow(table.Row{i + 1, k})
			}
			t.AppendFooter(table.Row{"", fmt.Sprintf("%d pages", len(keys))})
			t.Render()
			return nil
		}

		if len(args) == 0 && !yes {
			return fmt.Errorf("refusing to purge every catalog without --yes")
		}

		removed, err := a.catalogs.Purge(ctx, args...)
		if err != nil {
			return fmt.Errorf("purge failed after %d pages: %w", removed, err)
		}
		a.logger.Info("Snapshots purged", zap.Strings("catalogs", args), zap.Int("removed", removed))
		return nil
	},
}

// warmCmd rebuilds and stores every page ahead of client traffic.
var warmCmd = &cobra.Command{
	Use:   "warm [catalog...]",
	Short: "Rebuild and cache every page of the given catalogs (all when none are given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		pages, err := a.catalogs.Warm(ctx, args...)
		if err != nil {
			return fmt.Errorf("warm failed after %d pages: %w", pages, err)
		}
		a.logger.Info("Snapshots warmed",
			zap.Int("pages", pages),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	purgeCmd.Flags().Bool("dry-run", false, "List the cached pages instead of deleting them")
	purgeCmd.Flags().BoolP("yes", "y", false, "Confirm purging every catalog")

	snapshotCmd.AddCommand(purgeCmd)
	snapshotCmd.AddCommand(warmCmd)
	RootCmd.AddCommand(snapshotCmd)
}
