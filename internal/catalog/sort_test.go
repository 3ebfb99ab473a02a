package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/nrhelper/internal/card"
)

func TestSort_StatusFirst(t *testing.T) {
	recs := []card.Record{
		{Name: "free", Rarity: card.RarityRare},
		{Name: "semi", Rarity: card.RarityCommon, Status: intp(2)},
		{Name: "banned", Rarity: card.RarityCommon, Status: intp(0)},
	}
	for _, dir := range []Direction{Descending, Ascending} {
		assert.Equal(t, []string{"banned", "semi", "free"}, names(Sort(recs, dir)), dir.String())
	}
}

func TestSort_RarityFollowsDirection(t *testing.T) {
	recs := []card.Record{
		{Name: "common", Rarity: card.RarityCommon},
		{Name: "rare", Rarity: card.RarityRare},
	}
	assert.Equal(t, []string{"rare", "common"}, names(Sort(recs, Descending)))
	assert.Equal(t, []string{"common", "rare"}, names(Sort(recs, Ascending)))
}

func TestSort_CategoryNotReversed(t *testing.T) {
	recs := []card.Record{
		{Name: "odd", Rarity: card.RarityRare, FrameType: "Token"},
		{Name: "trap", Rarity: card.RarityRare, FrameType: "Trap Card"},
		{Name: "effect", Rarity: card.RarityRare, FrameType: "Effect Monster"},
		{Name: "xyz", Rarity: card.RarityRare, FrameType: "XYZ Monster"},
	}
	want := []string{"effect", "xyz", "trap", "odd"}
	assert.Equal(t, want, names(Sort(recs, Descending)))
	assert.Equal(t, want, names(Sort(recs, Ascending)))
}

func TestSort_Stable(t *testing.T) {
	recs := []card.Record{
		{Name: "first", Rarity: card.RarityCommon, FrameType: "Spell Card"},
		{Name: "rare", Rarity: card.RarityRare, FrameType: "Spell Card"},
		{Name: "second", Rarity: card.RarityCommon, FrameType: "Quick-Play Spell"},
		{Name: "third", Rarity: card.RarityCommon, FrameType: "spell"},
	}
	assert.Equal(t, []string{"rare", "first", "second", "third"}, names(Sort(recs, Descending)))
	assert.Equal(t, []string{"first", "second", "third", "rare"}, names(Sort(recs, Ascending)))
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	recs := exampleRecords()
	_ = Sort(recs, Descending)
	assert.Equal(t, []string{"A", "B", "C"}, names(recs))
}

func TestCompare(t *testing.T) {
	a := card.Record{Rarity: card.RarityRare, Status: intp(1)}
	b := card.Record{Rarity: card.RarityRare}
	assert.Negative(t, Compare(a, b, Descending))
	assert.Positive(t, Compare(b, a, Ascending))
	assert.Zero(t, Compare(b, b, Descending))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Descending, Direction(0))
	assert.Equal(t, Ascending, Descending.Toggle())
	assert.Equal(t, Descending, Ascending.Toggle())

	d, err := ParseDirection("ASC")
	require.NoError(t, err)
	assert.Equal(t, Ascending, d)

	d, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
