package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/nrhelper/internal/card"
	"github.com/arcanaland/nrhelper/internal/catalog"
)

func intp(i int) *int { return &i }

func testCatalog() *catalog.Catalog {
	return catalog.FromRecords([]card.Record{
		{Name: "A", Rarity: card.RarityCommon, FrameType: "Normal Monster", Archetype: "Alpha"},
		{Name: "B", Rarity: card.RarityRare, Status: intp(0), FrameType: "Effect Monster", Archetype: "Beta"},
		{Name: "C", Rarity: card.RarityCommon, Status: intp(1), FrameType: "Spell Card"},
		{Name: "Cyber Spell", Rarity: card.RarityRare, FrameType: "Spell Card", Archetype: "Alpha"},
	})
}

func names(v catalog.View) []string {
	out := make([]string, len(v.Cards))
	for i, r := range v.Cards {
		out[i] = r.Name
	}
	return out
}

func TestNew_ComputesInitialView(t *testing.T) {
	ctl := New(testCatalog(), nil)

	assert.Equal(t, []string{"B", "C", "Cyber Spell", "A"}, names(ctl.View()))
	assert.Equal(t, []string{"Alpha", "Beta"}, ctl.Archetypes())
	assert.Equal(t, card.CategoryAll, ctl.Inputs().Category)
	assert.Equal(t, catalog.Descending, ctl.Inputs().Direction)
}

func TestSetters_Recompute(t *testing.T) {
	ctl := New(testCatalog(), nil)

	var calls int
	ctl.OnChange(func(catalog.View) { calls++ })

	ctl.SetCategory(card.CategorySpell)
	assert.Equal(t, []string{"C", "Cyber Spell"}, names(ctl.View()))

	ctl.SetArchetype("Alpha")
	assert.Equal(t, []string{"Cyber Spell"}, names(ctl.View()))
	assert.Equal(t, []string{"Alpha", "Beta"}, ctl.Archetypes())

	ctl.SetArchetype("")
	ctl.SetSearch("cyber")
	assert.Equal(t, []string{"Cyber Spell"}, names(ctl.View()))

	ctl.SetSearch("")
	ctl.SetCategory("")
	ctl.ToggleDirection()
	assert.Equal(t, catalog.Ascending, ctl.Inputs().Direction)
	assert.Equal(t, []string{"B", "C", "A", "Cyber Spell"}, names(ctl.View()))

	assert.Equal(t, 7, calls)
}

func TestToggleStaples_RecomputesWithoutFiltering(t *testing.T) {
	ctl := New(testCatalog(), nil)
	before := names(ctl.View())

	var calls int
	ctl.OnChange(func(catalog.View) { calls++ })
	ctl.ToggleStaples()

	assert.True(t, ctl.Inputs().Staples)
	assert.Equal(t, 1, calls)
	assert.Equal(t, before, names(ctl.View()))
}

func TestSetDataset(t *testing.T) {
	ctl := New(testCatalog(), nil)
	ctl.SetCategory(card.CategoryEffect)

	ctl.SetDataset(catalog.FromRecords([]card.Record{
		{Name: "Z", Rarity: card.RarityCommon, FrameType: "Effect Monster", Archetype: "Zeta"},
	}))
	assert.Equal(t, []string{"Z"}, names(ctl.View()))
	assert.Equal(t, []string{"Zeta"}, ctl.Archetypes())
}

func TestCycleArchetype(t *testing.T) {
	ctl := New(testCatalog(), nil)

	ctl.CycleArchetype(1)
	assert.Equal(t, "Alpha", ctl.Inputs().Archetype)
	ctl.CycleArchetype(1)
	assert.Equal(t, "Beta", ctl.Inputs().Archetype)
	ctl.CycleArchetype(1)
	assert.Equal(t, "", ctl.Inputs().Archetype)
	ctl.CycleArchetype(-1)
	assert.Equal(t, "Beta", ctl.Inputs().Archetype)
}

func TestCycleCategory(t *testing.T) {
	ctl := New(testCatalog(), nil)

	ctl.CycleCategory(1)
	assert.Equal(t, card.CategoryNormal, ctl.Inputs().Category)
	assert.Empty(t, ctl.View().Cards)

	ctl.CycleCategory(-2)
	assert.Equal(t, card.CategoryTrap, ctl.Inputs().Category)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	ctl := New(testCatalog(), nil)
	ctl.SetSearch("c")
	first := ctl.View()
	ctl.SetSearch("c")
	require.Equal(t, first, ctl.View())
}

func TestArchetypes_ReturnsCopy(t *testing.T) {
	ctl := New(testCatalog(), nil)

	facet := ctl.Archetypes()
	facet[0] = "mutated"

	assert.Equal(t, []string{"Alpha", "Beta"}, ctl.Archetypes())
	assert.Equal(t, []string{"Alpha", "Beta"}, ctl.View().Archetypes)
}
