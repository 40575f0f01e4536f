package schema_test

import (
	"testing"

	"schema-recon/internal/schema"
)

func TestSummarize(t *testing.T) {
	rows := []schema.MappingRow{
		{MatchStatus: schema.StatusMatched},
		{MatchStatus: schema.StatusMatched},
		{MatchStatus: schema.StatusSuggested},
		{MatchStatus: schema.StatusSuggestedReview},
		{MatchStatus: schema.StatusTypeMismatch},
		{MatchStatus: schema.StatusLengthMismatch},
		{MatchStatus: schema.StatusTypeAndLength},
		{MatchStatus: schema.StatusMissingInTarget},
		{MatchStatus: schema.StatusMissingInSource},
		{MatchStatus: schema.StatusMissingInSource},
	}

	s := schema.Summarize(rows)

	want := schema.Summary{
		Total:                 10,
		Matched:               2,
		Suggested:             1,
		SuggestedReview:       1,
		TypeMismatch:          1,
		LengthMismatch:        1,
		TypeAndLengthMismatch: 1,
		MissingInTarget:       1,
		MissingInSource:       2,
	}
	if s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := schema.Summarize(nil); s != (schema.Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
}
