package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// newTable returns a table writer that mirrors its output to w.
func newTable(w io.Writer, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}
