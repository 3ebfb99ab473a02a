// Package controller owns the filter and sort inputs of a catalog view and
// recomputes the derived view whenever one of them changes.
//
// A Controller belongs to a single UI loop. It does no locking.
package controller

import (
	"slices"

	"go.uber.org/zap"

	"github.com/arcanaland/nrhelper/internal/card"
	"github.com/arcanaland/nrhelper/internal/catalog"
)

// Controller holds the working dataset, the user inputs and the current view
type Controller struct {
	records  []card.Record
	inputs   catalog.Inputs
	view     catalog.View
	onChange func(catalog.View)
	logger   *zap.Logger
}

// New creates a controller with default inputs and computes the first view
func New(c *catalog.Catalog, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctl := &Controller{
		records: c.Records(),
		inputs:  catalog.DefaultInputs(),
		logger:  logger,
	}
	ctl.recompute("init")
	return ctl
}

// OnChange registers a callback run after every recomputation
func (c *Controller) OnChange(fn func(catalog.View)) {
	c.onChange = fn
}

// View returns the current derived view
func (c *Controller) View() catalog.View {
	return c.view
}

// Inputs returns the current filter and sort inputs
func (c *Controller) Inputs() catalog.Inputs {
	return c.inputs
}

// Archetypes returns a copy of the current archetype facet
func (c *Controller) Archetypes() []string {
	return slices.Clone(c.view.Archetypes)
}

// SetInputs replaces every input at once
func (c *Controller) SetInputs(in catalog.Inputs) {
	if in.Category == "" {
		in.Category = card.CategoryAll
	}
	c.inputs = in
	c.recompute("inputs")
}

// SetDataset swaps the working dataset
func (c *Controller) SetDataset(cat *catalog.Catalog) {
	c.records = cat.Records()
	c.recompute("dataset")
}

// SetArchetype selects an archetype; an empty value selects all
func (c *Controller) SetArchetype(archetype string) {
	c.inputs.Archetype = archetype
	c.recompute("archetype")
}

// SetCategory selects a card type; an empty value selects all
func (c *Controller) SetCategory(category card.Category) {
	if category == "" {
		category = card.CategoryAll
	}
	c.inputs.Category = category
	c.recompute("category")
}

// SetSearch sets the free-text name search
func (c *Controller) SetSearch(search string) {
	c.inputs.Search = search
	c.recompute("search")
}

// SetDirection sets the rarity sort direction
func (c *Controller) SetDirection(dir catalog.Direction) {
	c.inputs.Direction = dir
	c.recompute("direction")
}

// ToggleDirection flips the rarity sort direction
func (c *Controller) ToggleDirection() {
	c.SetDirection(c.inputs.Direction.Toggle())
}

// ToggleStaples flips the staples toggle
func (c *Controller) ToggleStaples() {
	c.inputs.Staples = !c.inputs.Staples
	c.recompute("staples")
}

// CycleArchetype moves the archetype selection by step through the facet,
// with "all" placed before the first archetype
func (c *Controller) CycleArchetype(step int) {
	options := append([]string{""}, c.view.Archetypes...)
	c.SetArchetype(cycle(options, c.inputs.Archetype, step))
}

// CycleCategory moves the type selection by step, with "all" first
func (c *Controller) CycleCategory(step int) {
	options := []string{string(card.CategoryAll)}
	for _, cat := range card.Categories() {
		options = append(options, string(cat))
	}
	c.SetCategory(card.Category(cycle(options, string(c.inputs.Category), step)))
}

func cycle(options []string, current string, step int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+step)%n+n)%n]
}

func (c *Controller) recompute(trigger string) {
	c.view = catalog.ComputeView(c.records, c.inputs)

	c.logger.Debug("view recomputed",
		zap.String("trigger", trigger),
		zap.Int("cards", len(c.view.Cards)),
		zap.Int("archetypes", len(c.view.Archetypes)),
	)

	if c.onChange != nil {
		c.onChange(c.view)
	}
}
