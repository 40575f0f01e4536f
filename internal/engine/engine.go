package engine

import "schema-recon/internal/schema"

// DefaultThreshold is the minimum fuzzy similarity score that still counts
// as a suggested name match.
const DefaultThreshold = 0.78

// Engine reconciles a source schema against a target schema. The zero value
// is not usable; construct with New and tune Threshold or TypeMapping before
// the first Reconcile call.
type Engine struct {
	Threshold   float64
	TypeMapping map[string]string
}

func New() *Engine {
	return &Engine{
		Threshold:   DefaultThreshold,
		TypeMapping: schema.DefaultTypeMapping(),
	}
}

// Reconcile maps every source field to at most one target column and returns
// one row per source field (input order) followed by one Missing in Source
// row per target field that never joined a pairing (input order). All
// matching state lives in this call, so an Engine may be shared as long as
// TypeMapping is not mutated concurrently.
func (e *Engine) Reconcile(source, target schema.Table) []schema.MappingRow {
	if len(source.Fields) == 0 {
		return nil
	}

	idx := indexTarget(target)
	rows := make([]schema.MappingRow, 0, len(source.Fields))

	for _, src := range source.Fields {
		tgt, score, fuzzy, ok := e.matchField(idx, src)
		if !ok {
			rows = append(rows, schema.MappingRow{
				SourceObject: source.Name,
				SourceField:  src.Name,
				SourceType:   src.DataType,
				SourceLength: src.Length,
				TargetTable:  target.Name,
				MatchStatus:  schema.StatusMissingInTarget,
				Notes:        "No matching column in target table",
			})
			continue
		}

		status, notes := classifyPair(e.TypeMapping, src, tgt, score, fuzzy)
		rows = append(rows, schema.MappingRow{
			SourceObject: source.Name,
			SourceField:  src.Name,
			SourceType:   src.DataType,
			SourceLength: src.Length,
			TargetTable:  target.Name,
			TargetColumn: tgt.Name,
			TargetType:   tgt.DataType,
			TargetLength: tgt.Length,
			MatchStatus:  status,
			Notes:        notes,
		})
	}

	// Target columns that never ended up in a pairing. Iterates the raw
	// field list so duplicate-named columns each report their own
	// type/length, including earlier duplicates shadowed in the index.
	for i, tgt := range target.Fields {
		if idx.paired(schema.NormalizeExact(tgt.Name), i) {
			continue
		}
		rows = append(rows, schema.MappingRow{
			SourceObject: source.Name,
			TargetTable:  target.Name,
			TargetColumn: tgt.Name,
			TargetType:   tgt.DataType,
			TargetLength: tgt.Length,
			MatchStatus:  schema.StatusMissingInSource,
			Notes:        "No matching field in source object",
		})
	}

	return rows
}

// matchField runs the exact pass then the fuzzy pass for one source field.
func (e *Engine) matchField(idx *targetIndex, src schema.Field) (tgt schema.Field, score float64, fuzzy, ok bool) {
	if tgt, ok = idx.claimExact(schema.NormalizeExact(src.Name)); ok {
		return tgt, 0, false, true
	}
	tgt, score, ok = idx.claimFuzzy(schema.NormalizeFuzzy(src.Name), e.Threshold)
	return tgt, score, true, ok
}
