package engine

import "schema-recon/internal/schema"

// targetIndex holds target fields keyed by exact-normalized column name.
// Keys keep first-seen order so fuzzy scans are deterministic; a duplicate
// key keeps its first position but the later field wins the slot, leaving
// earlier duplicates unreachable for matching.
type targetIndex struct {
	keys     []string
	fields   map[string]schema.Field
	pos      map[string]int
	fuzzy    map[string]string
	consumed map[string]bool
}

func indexTarget(t schema.Table) *targetIndex {
	idx := &targetIndex{
		fields:   make(map[string]schema.Field, len(t.Fields)),
		pos:      make(map[string]int, len(t.Fields)),
		fuzzy:    make(map[string]string, len(t.Fields)),
		consumed: make(map[string]bool, len(t.Fields)),
	}
	for i, f := range t.Fields {
		key := schema.NormalizeExact(f.Name)
		if _, seen := idx.fields[key]; !seen {
			idx.keys = append(idx.keys, key)
			idx.fuzzy[key] = schema.NormalizeFuzzy(key)
		}
		idx.fields[key] = f
		idx.pos[key] = i
	}
	return idx
}

// paired reports whether the target field at position i is the one a
// consumed key actually paired with. Unreachable earlier duplicates of a
// consumed key stay unpaired.
func (idx *targetIndex) paired(key string, i int) bool {
	return idx.consumed[key] && idx.pos[key] == i
}

// claimExact pairs the source key with its target field if the key exists
// and no earlier source field already claimed it.
func (idx *targetIndex) claimExact(key string) (schema.Field, bool) {
	if idx.consumed[key] {
		return schema.Field{}, false
	}
	f, ok := idx.fields[key]
	if !ok {
		return schema.Field{}, false
	}
	idx.consumed[key] = true
	return f, true
}

// claimFuzzy scans unconsumed keys in index order and pairs the best-scoring
// one if it reaches the threshold. Ties keep the earliest key because only a
// strictly greater score replaces the current best.
func (idx *targetIndex) claimFuzzy(fuzzyName string, threshold float64) (schema.Field, float64, bool) {
	bestKey := ""
	bestScore := 0.0
	for _, key := range idx.keys {
		if idx.consumed[key] {
			continue
		}
		score := Similarity(fuzzyName, idx.fuzzy[key])
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}
	if bestKey == "" || bestScore < threshold {
		return schema.Field{}, 0, false
	}
	idx.consumed[bestKey] = true
	return idx.fields[bestKey], bestScore, true
}
