package generator

import (
	"time"

	"github.com/mcoot/rebirth/internal/catalog"
	"github.com/mcoot/rebirth/internal/dependencies/random"
	"github.com/mcoot/rebirth/internal/model"
)

const (
	// BaseRollMax is the highest base roll for an attribute before modifiers
	BaseRollMax = 10
	// LuckMax is the highest luck value
	LuckMax = 100
)

// RollAttributes rolls each attribute in [1, BaseRollMax] and adds the race
// and job modifiers. Strength, agility, intelligence and charisma are rolled
// in that order. The result is deliberately not clamped.
func RollAttributes(rnd random.Random, race, job string, table *catalog.ModifierTable) model.Attributes {
	base := model.Attributes{
		Strength:     1 + rnd.Intn(BaseRollMax),
		Agility:      1 + rnd.Intn(BaseRollMax),
		Intelligence: 1 + rnd.Intn(BaseRollMax),
		Charisma:     1 + rnd.Intn(BaseRollMax),
	}
	return base.Add(table.Race(race)).Add(table.Job(job))
}

// RollLuck returns a luck value in [1, LuckMax]
func RollLuck(rnd random.Random) int {
	return 1 + rnd.Intn(LuckMax)
}

// Generator builds new identities from a catalog
type Generator struct {
	catalog *catalog.Catalog
	table   *catalog.ModifierTable
	random  random.Random
}

// New creates a Generator. The catalog must already be validated.
func New(c *catalog.Catalog, rnd random.Random) *Generator {
	return &Generator{
		catalog: c,
		table:   c.Table(),
		random:  rnd,
	}
}

// Generate rolls a complete identity for the user
func (g *Generator) Generate(key model.UserKey, now time.Time) *model.Identity {
	race := g.pick(g.catalog.Races)
	job := g.pick(g.catalog.Jobs)

	return &model.Identity{
		UserKey:      key,
		Race:         race,
		Job:          job,
		Attributes:   RollAttributes(g.random, race, job, g.table),
		Luck:         RollLuck(g.random),
		Gender:       g.pick(g.catalog.Genders),
		BodyType:     g.pick(g.catalog.BodyTypes),
		HairColor:    g.pick(g.catalog.HairColors),
		EyeColor:     g.pick(g.catalog.EyeColors),
		SpecialSkill: g.pick(g.catalog.SpecialSkills),
		CreatedAt:    now,
	}
}

// pick returns a uniformly chosen element
func (g *Generator) pick(options []string) string {
	return options[g.random.Intn(len(options))]
}
