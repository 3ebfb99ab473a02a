package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/nrhelper/internal/card"
)

func exampleRecords() []card.Record {
	return []card.Record{
		{Name: "A", Rarity: card.RarityCommon, FrameType: "Normal Monster"},
		{Name: "B", Rarity: card.RarityRare, Status: intp(0), FrameType: "Effect Monster"},
		{Name: "C", Rarity: card.RarityCommon, Status: intp(1), FrameType: "Spell Card"},
	}
}

func TestComputeView_EndToEnd(t *testing.T) {
	v := ComputeView(exampleRecords(), DefaultInputs())
	assert.Equal(t, []string{"B", "C", "A"}, names(v.Cards))
}

func TestFilter_Search(t *testing.T) {
	got := Filter([]card.Record{
		{Name: "Spell Shield", Rarity: card.RarityCommon},
		{Name: "Monster Reborn", Rarity: card.RarityRare},
	}, Criteria{Category: card.CategoryAll, Search: "  sP "})
	assert.Equal(t, []string{"Spell Shield"}, names(got))
}

func TestFilter_SearchMatchesName(t *testing.T) {
	recs := []card.Record{
		{Name: "Pot of Greed", Rarity: card.RarityRare},
		{Name: "Spellbook of Secrets", Rarity: card.RarityCommon},
		{Name: "Raigeki", Rarity: card.RarityRare},
	}
	assert.Equal(t, []string{"Spellbook of Secrets"}, names(Filter(recs, Criteria{Search: "sp"})))
	assert.Equal(t, []string{"Pot of Greed", "Spellbook of Secrets"}, names(Filter(recs, Criteria{Search: "OF"})))
}

func TestFilter_Category(t *testing.T) {
	got := Filter(exampleRecords(), Criteria{Category: card.CategorySpell})
	assert.Equal(t, []string{"C"}, names(got))

	got = Filter(exampleRecords(), Criteria{Category: card.CategoryNormal})
	assert.Empty(t, got)
}

func TestFilter_Archetype(t *testing.T) {
	recs := []card.Record{
		{Name: "1", Archetype: "Blue-Eyes"},
		{Name: "2", Archetype: "Dark Magician"},
		{Name: "3", Archetype: "Blue-Eyes"},
		{Name: "4"},
	}
	assert.Equal(t, []string{"1", "3"}, names(Filter(recs, Criteria{Archetype: "Blue-Eyes"})))
	assert.Empty(t, Filter(recs, Criteria{Archetype: "blue-eyes"}))
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	recs := exampleRecords()
	got := Filter(recs, AllCriteria())
	if diff := cmp.Diff(recs, got); diff != "" {
		t.Fatalf("filter changed records (-want +got):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	c := Criteria{Category: card.CategoryEffect, Search: "b"}
	once := Filter(exampleRecords(), c)
	twice := Filter(once, c)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("filter is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	recs := exampleRecords()
	_ = Filter(recs, Criteria{Category: card.CategorySpell})
	assert.Equal(t, []string{"A", "B", "C"}, names(recs))
}

func TestFacet(t *testing.T) {
	recs := []card.Record{
		{Archetype: "Sky Striker"},
		{Archetype: ""},
		{Archetype: "Eldlich"},
		{Archetype: "Sky Striker"},
		{Archetype: "Branded"},
	}
	assert.Equal(t, []string{"Branded", "Eldlich", "Sky Striker"}, Facet(recs))
	assert.Empty(t, Facet(nil))
}

func TestComputeView_FacetIgnoresCriteria(t *testing.T) {
	recs := []card.Record{
		{Name: "1", Archetype: "Zoo", FrameType: "Spell Card", Rarity: card.RarityCommon},
		{Name: "2", Archetype: "Alpha", FrameType: "Effect Monster", Rarity: card.RarityRare},
	}
	in := Inputs{Criteria: Criteria{Archetype: "Zoo", Category: card.CategoryTrap, Search: "nothing"}}
	v := ComputeView(recs, in)
	assert.Empty(t, v.Cards)
	assert.Equal(t, []string{"Alpha", "Zoo"}, v.Archetypes)
}

func TestComputeView_StaplesIsInert(t *testing.T) {
	in := DefaultInputs()
	off := ComputeView(exampleRecords(), in)
	in.Staples = true
	on := ComputeView(exampleRecords(), in)
	if diff := cmp.Diff(off, on); diff != "" {
		t.Fatalf("staples toggle changed the view:\n%s", diff)
	}
}
