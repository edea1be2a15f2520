package catalog

import (
	"maps"

	"github.com/mcoot/rebirth/internal/model"
)

// ModifierTable maps race and job names to attribute deltas.
// It is read-only once built; unmapped names resolve to the zero bundle.
type ModifierTable struct {
	races map[string]model.Modifier
	jobs  map[string]model.Modifier
}

// NewModifierTable copies the given mappings into a new table
func NewModifierTable(races, jobs map[string]model.Modifier) *ModifierTable {
	t := &ModifierTable{
		races: make(map[string]model.Modifier, len(races)),
		jobs:  make(map[string]model.Modifier, len(jobs)),
	}
	maps.Copy(t.races, races)
	maps.Copy(t.jobs, jobs)
	return t
}

// Race returns the modifier for a race
func (t *ModifierTable) Race(name string) model.Modifier {
	return t.races[name]
}

// Job returns the modifier for a job
func (t *ModifierTable) Job(name string) model.Modifier {
	return t.jobs[name]
}
