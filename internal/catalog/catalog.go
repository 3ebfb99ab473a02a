package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/arcanaland/nrhelper/internal/card"
)

// Catalog is the working dataset: raw records with the derived rarity attached,
// restricted to the recognized rarity tiers. It is never mutated after New.
type Catalog struct {
	Source string

	records  []card.Record
	excluded int
}

// RawDataset is the on-disk shape of a card dump
type RawDataset struct {
	Data []RawRecord `json:"data"`
}

// RawRecord is a card as found in the source JSON
type RawRecord struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Archetype  string         `json:"archetype"`
	FrameType  string         `json:"frameType"`
	NRStatus   RawStatus      `json:"nr_status"`
	MiscInfo   []RawMiscInfo  `json:"misc_info"`
	CardImages []RawCardImage `json:"card_images"`
	DetailURL  string         `json:"ygoprodeck_url"`
}

type RawMiscInfo struct {
	// MDRarity is a string in practice; anything else is treated as absent
	MDRarity any `json:"md_rarity"`
}

type RawCardImage struct {
	ImageURL string `json:"image_url"`
}

// Rarity extracts the derived rarity from the first misc_info entry
func (r RawRecord) Rarity() card.Rarity {
	if len(r.MiscInfo) == 0 {
		return card.RarityNone
	}
	if s, ok := r.MiscInfo[0].MDRarity.(string); ok {
		return card.Rarity(s)
	}
	return card.RarityNone
}

// Record converts the raw record into a catalog record
func (r RawRecord) Record() card.Record {
	rec := card.Record{
		ID:        r.ID,
		Name:      r.Name,
		Archetype: r.Archetype,
		FrameType: r.FrameType,
		Rarity:    r.Rarity(),
		DetailURL: r.DetailURL,
	}
	if r.NRStatus.Set {
		status := r.NRStatus.Value
		rec.Status = &status
	}
	if len(r.CardImages) > 0 {
		rec.ImageURL = r.CardImages[0].ImageURL
	}
	return rec
}

// New derives the working dataset from raw source records
func New(raw []RawRecord) *Catalog {
	c := &Catalog{records: make([]card.Record, 0, len(raw))}
	for _, r := range raw {
		rec := r.Record()
		if !rec.Rarity.Recognized() {
			c.excluded++
			continue
		}
		c.records = append(c.records, rec)
	}
	return c
}

// FromRecords builds a catalog from already-derived records, dropping any with
// an unrecognized rarity
func FromRecords(records []card.Record) *Catalog {
	c := &Catalog{records: make([]card.Record, 0, len(records))}
	for _, rec := range records {
		if !rec.Rarity.Recognized() {
			c.excluded++
			continue
		}
		c.records = append(c.records, rec)
	}
	return c
}

// Decode reads a JSON card dump
func Decode(r io.Reader) (*Catalog, error) {
	var ds RawDataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("error decoding dataset: %w", err)
	}
	return New(ds.Data), nil
}

// Load reads a JSON card dump from disk
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("dataset not found: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	defer file.Close()

	c, err := Decode(file)
	if err != nil {
		return nil, err
	}
	c.Source = path

	return c, nil
}

// Records returns a copy of the working dataset
func (c *Catalog) Records() []card.Record {
	return slices.Clone(c.records)
}

// Len returns the number of records in the working dataset
func (c *Catalog) Len() int {
	return len(c.records)
}

// Excluded returns how many source records were dropped for their rarity
func (c *Catalog) Excluded() int {
	return c.excluded
}

// Find returns the first record whose name matches exactly, ignoring case
func (c *Catalog) Find(name string) (card.Record, bool) {
	for _, rec := range c.records {
		if strings.EqualFold(rec.Name, name) {
			return rec, true
		}
	}
	return card.Record{}, false
}
