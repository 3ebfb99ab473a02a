package validator

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/arcanaland/nrhelper/internal/card"
	"github.com/arcanaland/nrhelper/internal/catalog"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string

	// Kept and Excluded count records in and out of the working dataset
	Kept     int
	Excluded int
}

type Validator struct {
	DatasetPath string
	Results     ValidationResults

	raw []catalog.RawRecord
}

func NewValidator(datasetPath string) *Validator {
	return &Validator{
		DatasetPath: datasetPath,
		Results:     ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateFile(); err != nil {
		return v.Results, err
	}

	v.validateRarities()
	v.validateNames()
	v.validateStatuses()
	v.validateFrameTypes()

	return v.Results, nil
}

func (v *Validator) validateFile() error {
	if _, err := os.Stat(v.DatasetPath); os.IsNotExist(err) {
		return fmt.Errorf("dataset not found: %s", v.DatasetPath)
	}

	data, err := os.ReadFile(v.DatasetPath)
	if err != nil {
		return fmt.Errorf("error reading dataset: %w", err)
	}

	var ds catalog.RawDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return fmt.Errorf("error parsing dataset: %w", err)
	}

	if len(ds.Data) == 0 {
		v.Results.Errors = append(v.Results.Errors, "dataset has no records in \"data\"")
	}

	v.raw = ds.Data
	return nil
}

// validateRarities counts records dropped from the working dataset per rarity value
func (v *Validator) validateRarities() {
	dropped := make(map[card.Rarity]int)
	for _, r := range v.raw {
		rarity := r.Rarity()
		if rarity.Recognized() {
			v.Results.Kept++
			continue
		}
		v.Results.Excluded++
		dropped[rarity]++
	}

	if v.Results.Kept == 0 && len(v.raw) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			"no records with a Common or Rare md_rarity; the working dataset is empty")
	}

	values := make([]string, 0, len(dropped))
	for rarity := range dropped {
		values = append(values, string(rarity))
	}
	sort.Strings(values)

	for _, value := range values {
		label := value
		if label == "" {
			label = "<missing>"
		}
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d records excluded with md_rarity %s", dropped[card.Rarity(value)], label))
	}
}

// validateNames checks kept records for missing and duplicate names
func (v *Validator) validateNames() {
	seen := make(map[string]int)
	for i, r := range v.raw {
		if !r.Rarity().Recognized() {
			continue
		}
		if r.Name == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("record %d (id %d) has no name", i, r.ID))
			continue
		}
		seen[r.Name]++
	}

	var duplicates []string
	for name, count := range seen {
		if count > 1 {
			duplicates = append(duplicates, name)
		}
	}
	sort.Strings(duplicates)

	for _, name := range duplicates {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("name %q appears %d times", name, seen[name]))
	}
}

// validateStatuses warns about banlist codes outside the restricted range
func (v *Validator) validateStatuses() {
	for _, r := range v.raw {
		if !r.Rarity().Recognized() {
			continue
		}
		if r.NRStatus.Invalid != "" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: nr_status %s is not a number and is treated as unrestricted", r.Name, r.NRStatus.Invalid))
			continue
		}
		if !r.NRStatus.Set {
			continue
		}
		if s := r.NRStatus.Value; s < 0 || s > 2 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: nr_status %d is outside 0-2 and will not show a badge", r.Name, s))
		}
	}
}

// validateFrameTypes warns about records that classify as unknown
func (v *Validator) validateFrameTypes() {
	unknown := 0
	for _, r := range v.raw {
		if !r.Rarity().Recognized() {
			continue
		}
		if card.Classify(r.FrameType) == card.CategoryUnknown {
			unknown++
		}
	}

	if unknown > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d records have a frameType that classifies as unknown", unknown))
	}
}
