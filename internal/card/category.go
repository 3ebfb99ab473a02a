package card

import (
	"fmt"
	"strings"
)

// Category is the canonical card-mechanic classification
type Category string

const (
	CategoryNormal  Category = "normal"
	CategoryEffect  Category = "effect"
	CategoryRitual  Category = "ritual"
	CategoryFusion  Category = "fusion"
	CategorySynchro Category = "synchro"
	CategoryXyz     Category = "xyz"
	CategorySpell   Category = "spell"
	CategoryTrap    Category = "trap"
	CategoryUnknown Category = "unknown"

	// CategoryAll is the filter sentinel that matches every category
	CategoryAll Category = "all"
)

var categoryOrder = []Category{
	CategoryNormal,
	CategoryEffect,
	CategoryRitual,
	CategoryFusion,
	CategorySynchro,
	CategoryXyz,
	CategorySpell,
	CategoryTrap,
}

// keywords are tested in this order; the first substring hit wins.
// Nothing maps to CategoryNormal.
var keywords = []Category{
	CategoryEffect,
	CategoryRitual,
	CategoryFusion,
	CategorySynchro,
	CategoryXyz,
	CategorySpell,
	CategoryTrap,
}

// Categories returns the canonical display and sort order
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Index returns the position of c in the canonical order. Categories outside
// the order, including CategoryUnknown, sort after all of them.
func (c Category) Index() int {
	for i, o := range categoryOrder {
		if o == c {
			return i
		}
	}
	return len(categoryOrder)
}

// Label returns the capitalized name used by selectors
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	if c == CategoryAll {
		return "All Types"
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Classify maps a free-text frame type to a category
func Classify(frameType string) Category {
	if frameType == "" {
		return CategoryUnknown
	}
	t := strings.ToLower(frameType)
	for _, k := range keywords {
		if strings.Contains(t, string(k)) {
			return k
		}
	}
	return CategoryUnknown
}

// ParseCategory parses a user-supplied type filter. An empty value means all.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(CategoryAll) {
		return CategoryAll, nil
	}
	for _, c := range categoryOrder {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown card type: %s", s)
}
