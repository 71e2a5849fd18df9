package app

import (
	"github.com/quantmind-br/buildmanifest/internal/manifest"
)

// Record is the outcome of ingesting one declaration
type Record struct {
	Declaration Declaration
	Result      *manifest.IngestResult
}

// Accumulator collects entries across ingestion calls in call order
type Accumulator struct {
	selected   []manifest.Entry
	unselected []manifest.Entry
	records    []Record
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add appends the result of ingesting decl
func (a *Accumulator) Add(decl Declaration, result *manifest.IngestResult) {
	a.selected = append(a.selected, result.Selected...)
	a.unselected = append(a.unselected, result.Unselected...)
	a.records = append(a.records, Record{Declaration: decl, Result: result})
}

// Validate checks that every group requested by name was seen in its
// input. The first offending input is reported.
func (a *Accumulator) Validate() error {
	for _, r := range a.records {
		filter := r.Declaration.Groups
		if !filter.IsConcrete() {
			continue
		}
		missing := filter.Missing(r.Result.Seen)
		if len(missing) == 0 {
			continue
		}
		return &manifest.UnknownGroupError{
			Input:     r.Declaration.Value,
			Missing:   missing,
			Available: filter.Unrequested(r.Result.Seen),
		}
	}
	return nil
}

// Selected returns every selected entry
func (a *Accumulator) Selected() []manifest.Entry {
	return a.selected
}

// Unselected returns every unselected entry
func (a *Accumulator) Unselected() []manifest.Entry {
	return a.unselected
}

// Records returns one record per ingestion call
func (a *Accumulator) Records() []Record {
	return a.records
}
