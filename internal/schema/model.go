package schema

// Table is one source object or target table with its fields in export order.
type Table struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field is a single column or object field as read from a metadata export.
// Owner labels the containing table/object and plays no part in matching.
// Length 0 means the export carried no usable length for the field.
type Field struct {
	Owner    string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Name     string `json:"name" yaml:"name"`
	DataType string `json:"type" yaml:"type"`
	Length   int    `json:"length,omitempty" yaml:"length,omitempty"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
}

// MatchStatus classifies one mapping row.
type MatchStatus string

const (
	StatusMatched         MatchStatus = "Matched"
	StatusSuggested       MatchStatus = "Suggested Match"
	StatusSuggestedReview MatchStatus = "Suggested Match (Type/Length Review)"
	StatusTypeMismatch    MatchStatus = "Type Mismatch"
	StatusLengthMismatch  MatchStatus = "Length Mismatch"
	StatusTypeAndLength   MatchStatus = "Type & Length Mismatch"
	StatusMissingInTarget MatchStatus = "Missing in Target"
	StatusMissingInSource MatchStatus = "Missing in Source"
)

// MappingRow is one line of the reconciliation report. Source columns are
// empty on Missing in Source rows, target columns on Missing in Target rows.
type MappingRow struct {
	SourceObject           string      `json:"source_object" yaml:"source_object"`
	SourceField            string      `json:"source_field" yaml:"source_field"`
	SourceType             string      `json:"source_type" yaml:"source_type"`
	SourceLength           int         `json:"source_length,omitempty" yaml:"source_length,omitempty"`
	TargetTable            string      `json:"target_table" yaml:"target_table"`
	TargetColumn           string      `json:"target_column" yaml:"target_column"`
	TargetType             string      `json:"target_type" yaml:"target_type"`
	TargetLength           int         `json:"target_length,omitempty" yaml:"target_length,omitempty"`
	MatchStatus            MatchStatus `json:"match_status" yaml:"match_status"`
	Notes                  string      `json:"notes" yaml:"notes"`
	TransformationRequired string      `json:"transformation_required" yaml:"transformation_required"`
}

// Summary aggregates row counts per status.
type Summary struct {
	Total                 int `json:"total" yaml:"total"`
	Matched               int `json:"matched" yaml:"matched"`
	Suggested             int `json:"suggested" yaml:"suggested"`
	SuggestedReview       int `json:"suggested_review" yaml:"suggested_review"`
	TypeMismatch          int `json:"type_mismatch" yaml:"type_mismatch"`
	LengthMismatch        int `json:"length_mismatch" yaml:"length_mismatch"`
	TypeAndLengthMismatch int `json:"type_and_length_mismatch" yaml:"type_and_length_mismatch"`
	MissingInTarget       int `json:"missing_in_target" yaml:"missing_in_target"`
	MissingInSource       int `json:"missing_in_source" yaml:"missing_in_source"`
}

// Summarize counts rows by match status.
func Summarize(rows []MappingRow) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		switch r.MatchStatus {
		case StatusMatched:
			s.Matched++
		case StatusSuggested:
			s.Suggested++
		case StatusSuggestedReview:
			s.SuggestedReview++
		case StatusTypeMismatch:
			s.TypeMismatch++
		case StatusLengthMismatch:
			s.LengthMismatch++
		case StatusTypeAndLength:
			s.TypeAndLengthMismatch++
		case StatusMissingInTarget:
			s.MissingInTarget++
		case StatusMissingInSource:
			s.MissingInSource++
		}
	}
	return s
}
