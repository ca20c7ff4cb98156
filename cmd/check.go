package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"catalog-sync/feature/integrity"
	"catalog-sync/feature/integrity/checks"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd groups the integrity checks.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run integrity checks against the catalog database",
}

// schemaCmd verifies every catalog table and its sync columns.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check catalog tables against the models and sync columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		report, err := integrity.NewService(a.db, a.registry, a.logger).CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		renderSchemaReport(cmd.OutOrStdout(), report)

		if !report.Matched {
			a.logger.Warn("Schema mismatch", zap.Int("errors", len(report.Errors)))
			return fmt.Errorf("schema does not match")
		}
		a.logger.Info("Schema matches")
		return nil
	},
}

func renderSchemaReport(w io.Writer, report *checks.SchemaReport) {
	t := newTable(w, "Table", "Status", "Missing Columns", "Type Mismatches")

	names := make([]string, 0, len(report.Tables))
	for n := range report.Tables {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		tr := report.Tables[n]
		t.AppendRow(table.Row{n, tr.Status, strings.Join(tr.MissingColumns, ", "), strings.Join(tr.TypeMismatches, ", ")})
	}
	t.Render()

	for _, e := range report.Errors {
		_, _ = fmt.Fprintln(w, "error:", e)
	}
}

func init() {
	checkCmd.AddCommand(schemaCmd)
	RootCmd.AddCommand(checkCmd)
}
