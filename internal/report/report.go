// Package report renders reconciliation results as spreadsheet, CSV, JSON,
// YAML or console-table output.
package report

import (
	"fmt"
	"strconv"

	"schema-recon/internal/schema"
)

// Headers lists the report columns in output order.
var Headers = []string{
	"Source Object",
	"Source Field",
	"Source Type",
	"Source Length",
	"Target Table",
	"Target Column",
	"Target Type",
	"Target Length",
	"Match Status",
	"Notes",
	"Transformation Required",
}

// Report is one reconciliation result prepared for serialization.
type Report struct {
	SourceObject string              `json:"source_object" yaml:"source_object"`
	TargetTable  string              `json:"target_table" yaml:"target_table"`
	Rows         []schema.MappingRow `json:"rows" yaml:"rows"`
	Summary      schema.Summary      `json:"summary" yaml:"summary"`
}

// New assembles a report for a reconciled pair, computing the status summary.
func New(source, target schema.Table, rows []schema.MappingRow) *Report {
	return &Report{
		SourceObject: source.Name,
		TargetTable:  target.Name,
		Rows:         rows,
		Summary:      schema.Summarize(rows),
	}
}

// Cells renders one row as display strings in Headers order. Absent lengths
// render empty.
func Cells(r schema.MappingRow) []string {
	return []string{
		r.SourceObject,
		r.SourceField,
		r.SourceType,
		lengthCell(r.SourceLength),
		r.TargetTable,
		r.TargetColumn,
		r.TargetType,
		lengthCell(r.TargetLength),
		string(r.MatchStatus),
		r.Notes,
		r.TransformationRequired,
	}
}

func lengthCell(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// values renders one row for cell-typed outputs; lengths stay numeric and
// absent lengths become blank cells.
func values(r schema.MappingRow) []any {
	return []any{
		r.SourceObject,
		r.SourceField,
		r.SourceType,
		lengthValue(r.SourceLength),
		r.TargetTable,
		r.TargetColumn,
		r.TargetType,
		lengthValue(r.TargetLength),
		string(r.MatchStatus),
		r.Notes,
		r.TransformationRequired,
	}
}

func lengthValue(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

// SummaryLine condenses a summary into the one-liner commands print after
// writing a report.
func SummaryLine(s schema.Summary) string {
	suggested := s.Suggested + s.SuggestedReview
	mismatched := s.TypeMismatch + s.LengthMismatch + s.TypeAndLengthMismatch
	missing := s.MissingInTarget + s.MissingInSource
	return fmt.Sprintf("%d rows: %d matched, %d suggested, %d mismatched, %d missing",
		s.Total, s.Matched, suggested, mismatched, missing)
}
