package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// TableWriter renders the report as a console table followed by the summary
// line. Terminal-facing; file formats carry the same columns.
type TableWriter struct{}

func (tw *TableWriter) Write(w io.Writer, rep *Report) error {
	table := tablewriter.NewTable(w)
	table.Header(anyCells(Headers)...)
	for _, row := range rep.Rows {
		if err := table.Append(anyCells(Cells(row))...); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, SummaryLine(rep.Summary))
	return err
}

// WriteTypes renders a canonical type table, sorted by source type.
func WriteTypes(w io.Writer, mapping map[string]string) error {
	sourceTypes := make([]string, 0, len(mapping))
	for k := range mapping {
		sourceTypes = append(sourceTypes, k)
	}
	sort.Strings(sourceTypes)

	table := tablewriter.NewTable(w)
	table.Header("Source Type", "Expected Target Type")
	for _, src := range sourceTypes {
		if err := table.Append(src, mapping[src]); err != nil {
			return err
		}
	}
	return table.Render()
}

func anyCells(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
