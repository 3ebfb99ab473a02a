package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arcanaland/nrhelper/internal/card"
)

// Direction is the rarity sort direction
type Direction int

const (
	// Descending puts the rare tier first
	Descending Direction = iota
	// Ascending puts the common tier first
	Ascending
)

// Toggle returns the opposite direction
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// Label describes the direction the way the sort button does
func (d Direction) Label() string {
	if d == Ascending {
		return "Rarity: Lowest → Highest"
	}
	return "Rarity: Highest → Lowest"
}

// ParseDirection accepts asc/desc; an empty value is the default
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return Descending, fmt.Errorf("unknown sort direction: %s", s)
}

// Compare orders records by banlist status, then rarity tier, then category.
// Only the rarity key follows the direction.
func Compare(a, b card.Record, dir Direction) int {
	if sa, sb := a.StatusValue(), b.StatusValue(); sa != sb {
		return sa - sb
	}

	if pa, pb := a.Rarity.Tier(), b.Rarity.Tier(); pa != pb {
		if dir == Ascending {
			return pa - pb
		}
		return pb - pa
	}

	return a.Category().Index() - b.Category().Index()
}

// Sort returns a stably sorted copy of records
func Sort(records []card.Record, dir Direction) []card.Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b card.Record) int {
		return Compare(a, b, dir)
	})
	return sorted
}
