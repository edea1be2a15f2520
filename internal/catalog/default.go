package catalog

import "github.com/mcoot/rebirth/internal/model"

// Default returns the built-in catalog used when no file is configured
func Default() *Catalog {
	return &Catalog{
		Races:         []string{"Human", "Elf", "Dwarf", "Orc", "Halfling", "Beastkin", "Dragonkin", "Slime"},
		Jobs:          []string{"Warrior", "Mage", "Rogue", "Cleric", "Ranger", "Bard", "Alchemist", "Blacksmith"},
		Genders:       []string{"Male", "Female"},
		BodyTypes:     []string{"Slender", "Average", "Muscular", "Stocky", "Petite", "Towering"},
		HairColors:    []string{"Black", "Brown", "Blonde", "Red", "Silver", "White", "Blue", "Green"},
		EyeColors:     []string{"Brown", "Blue", "Green", "Grey", "Amber", "Red", "Violet", "Gold"},
		SpecialSkills: []string{"Appraisal", "Item Box", "Language Comprehension", "Healing Touch", "Beast Taming", "Shadow Step", "Fire Ball", "Cooking"},
		RaceModifiers: map[string]model.Modifier{
			"Human":     {Charisma: 1},
			"Elf":       {Agility: 3},
			"Dwarf":     {Strength: 2, Charisma: -1},
			"Orc":       {Strength: 3, Intelligence: -2},
			"Halfling":  {Agility: 2, Strength: -1},
			"Beastkin":  {Strength: 1, Agility: 1},
			"Dragonkin": {Strength: 2, Intelligence: 1},
		},
		JobModifiers: map[string]model.Modifier{
			"Warrior":    {Strength: 2},
			"Mage":       {Intelligence: 2},
			"Rogue":      {Agility: 2},
			"Cleric":     {Intelligence: 1, Charisma: 1},
			"Ranger":     {Agility: 1, Strength: 1},
			"Bard":       {Charisma: 2},
			"Alchemist":  {Intelligence: 2, Strength: -1},
			"Blacksmith": {Strength: 2, Agility: -1},
		},
	}
}
