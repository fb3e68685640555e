package catalog

import (
	"github.com/pathwise/compass/pkg/matching"
	"github.com/pathwise/compass/pkg/normalizers"
)

const minTermLength = 3

// ExtractTerms returns the searchable vocabulary of an item: its name,
// name tokens, tags, and enum values. Suitable as a
// matching.TermExtractor.
func ExtractTerms(record matching.Record) []string {
	item, ok := record.(Item)
	if !ok {
		return nil
	}

	raw := []string{item.Name}
	raw = append(raw, normalizers.Tokenize(item.Name, minTermLength)...)
	raw = append(raw, item.Industries...)
	raw = append(raw, item.Departments...)
	raw = append(raw, item.AITypes...)
	raw = append(raw, string(item.Complexity), string(item.SetupEffort))

	terms := make([]string, 0, len(raw))
	for _, term := range raw {
		terms = append(terms, normalizers.ApplyChain(term, "term"))
	}
	return terms
}
