package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"catalog-sync/core/engine"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// updatesCmd prints the watermark of every catalog.
var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Show the latest update timestamp of every catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		marks := a.catalogs.Updates(ctx)
		renderWatermarks(cmd.OutOrStdout(), marks)

		a.logger.Info("Watermarks collected", zap.Duration("execution_time", time.Since(startTime)))
		return nil
	},
}

func renderWatermarks(w io.Writer, marks engine.Watermarks) {
	t := newTable(w, "Group", "Catalog", "Updated", "Time (UTC)")

	groups := make([]string, 0, len(marks))
	for g := range marks {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		names := make([]string, 0, len(marks[g]))
		for n := range marks[g] {
			names = append(names, n)
		}
		sort.Strings(names)

		for _, n := range names {
			mark := marks[g][n]
			if mark == nil {
				t.AppendRow(table.Row{g, n, "-", "-"})
				continue
			}
			t.AppendRow(table.Row{g, n, strconv.FormatInt(*mark, 10), time.Unix(*mark, 0).UTC().Format(time.RFC3339)})
		}
	}
	t.Render()
	_, _ = fmt.Fprintln(w)
}

func init() {
	RootCmd.AddCommand(updatesCmd)
}
