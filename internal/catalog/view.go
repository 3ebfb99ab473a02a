package catalog

import "github.com/arcanaland/nrhelper/internal/card"

// Inputs are everything a view depends on besides the dataset
type Inputs struct {
	Criteria
	Direction Direction `json:"-"`

	// Staples is the curated-subset toggle. It takes part in recomputation
	// but does not filter anything yet.
	Staples bool `json:"staples"`
}

// DefaultInputs shows every card, rare first
func DefaultInputs() Inputs {
	return Inputs{Criteria: AllCriteria(), Direction: Descending}
}

// View is the derived display state
type View struct {
	Cards      []card.Record `json:"cards"      yaml:"cards"`
	Archetypes []string      `json:"archetypes" yaml:"archetypes"`
}

// ComputeView derives the archetype facet and the filtered, sorted list.
// The facet is taken from the whole working dataset, before any criterion.
func ComputeView(records []card.Record, in Inputs) View {
	return View{
		Archetypes: Facet(records),
		Cards:      Sort(Filter(records, in.Criteria), in.Direction),
	}
}
