package catalog

import (
	"sort"
	"strings"

	"github.com/arcanaland/nrhelper/internal/card"
)

// Criteria selects a subset of the working dataset
type Criteria struct {
	Archetype string        `json:"archetype"`
	Category  card.Category `json:"type"`
	Search    string        `json:"search"`
}

// AllCriteria matches every record
func AllCriteria() Criteria {
	return Criteria{Category: card.CategoryAll}
}

// Facet returns the distinct, non-empty archetypes of records, sorted
func Facet(records []card.Record) []string {
	seen := make(map[string]struct{})
	archetypes := []string{}
	for _, rec := range records {
		if rec.Archetype == "" {
			continue
		}
		if _, ok := seen[rec.Archetype]; ok {
			continue
		}
		seen[rec.Archetype] = struct{}{}
		archetypes = append(archetypes, rec.Archetype)
	}
	sort.Strings(archetypes)
	return archetypes
}

// Filter applies the archetype, type and search criteria in that order.
// The input is not modified and relative order is kept.
func Filter(records []card.Record, c Criteria) []card.Record {
	filtered := make([]card.Record, 0, len(records))
	filtered = append(filtered, records...)

	if c.Archetype != "" {
		filtered = keep(filtered, func(rec card.Record) bool {
			return rec.Archetype == c.Archetype
		})
	}

	if c.Category != "" && c.Category != card.CategoryAll {
		filtered = keep(filtered, func(rec card.Record) bool {
			return rec.Category() == c.Category
		})
	}

	if s := strings.ToLower(strings.TrimSpace(c.Search)); s != "" {
		filtered = keep(filtered, func(rec card.Record) bool {
			return strings.Contains(strings.ToLower(rec.Name), s)
		})
	}

	return filtered
}

func keep(records []card.Record, pred func(card.Record) bool) []card.Record {
	out := records[:0]
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}
