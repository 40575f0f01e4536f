package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVWriter writes the report as CSV with a header row, one line per
// mapping row.
type CSVWriter struct{}

func (cw *CSVWriter) Write(w io.Writer, rep *Report) error {
	out := csv.NewWriter(w)
	if err := out.Write(Headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, row := range rep.Rows {
		if err := out.Write(Cells(row)); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}
	out.Flush()
	return out.Error()
}
