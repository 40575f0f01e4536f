package engine

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity scores two fuzzy-normalized names with the Ratcliff/Obershelp
// sequence ratio over their runes, in [0.0, 1.0]. An empty name scores zero
// against everything, including another empty name.
func Similarity(source, target string) float64 {
	if source == "" || target == "" {
		return 0
	}
	m := difflib.NewMatcher(strings.Split(source, ""), strings.Split(target, ""))
	return m.Ratio()
}
