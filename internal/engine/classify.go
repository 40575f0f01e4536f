package engine

import (
	"fmt"
	"strings"

	"schema-recon/internal/schema"
)

// classifyPair decides the status and notes for a paired source/target
// field. fuzzyScore only applies when fuzzy is true.
func classifyPair(mapping map[string]string, src, tgt schema.Field, fuzzyScore float64, fuzzy bool) (schema.MatchStatus, string) {
	expected := schema.CanonicalType(mapping, src.DataType)

	typeMismatch := !strings.EqualFold(tgt.DataType, expected)
	lengthMismatch := src.Length != 0 && tgt.Length != 0 && src.Length > tgt.Length

	switch {
	case fuzzy && !typeMismatch && !lengthMismatch:
		return schema.StatusSuggested,
			fmt.Sprintf("Column name matched using fuzzy similarity (score=%.2f). Please review.", fuzzyScore)
	case fuzzy:
		return schema.StatusSuggestedReview,
			fmt.Sprintf("Fuzzy name similarity score=%.2f. Review data type/length compatibility.", fuzzyScore)
	case typeMismatch && lengthMismatch:
		return schema.StatusTypeAndLength,
			fmt.Sprintf("Expected type '%s' for source type '%s' and source field length exceeds target column length.", expected, src.DataType)
	case typeMismatch:
		return schema.StatusTypeMismatch,
			fmt.Sprintf("Expected type '%s' for source type '%s'", expected, src.DataType)
	case lengthMismatch:
		return schema.StatusLengthMismatch, "Source field length exceeds target column length."
	default:
		return schema.StatusMatched, ""
	}
}
