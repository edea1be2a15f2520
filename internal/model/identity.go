package model

import "time"

// UserKey identifies the requester on the chat platform.
// Numeric platform IDs are carried in their decimal form.
type UserKey string

// Modifier is a set of per-attribute deltas granted by a race or job
type Modifier struct {
	Strength     int `json:"strength" yaml:"strength"`
	Agility      int `json:"agility" yaml:"agility"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Charisma     int `json:"charisma" yaml:"charisma"`
}

// Attributes holds the four rolled character attributes
type Attributes struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
}

// Add returns the attributes with the modifier applied. Results are not clamped.
func (a Attributes) Add(m Modifier) Attributes {
	return Attributes{
		Strength:     a.Strength + m.Strength,
		Agility:      a.Agility + m.Agility,
		Intelligence: a.Intelligence + m.Intelligence,
		Charisma:     a.Charisma + m.Charisma,
	}
}

// Identity is the character sheet generated for a user for the current day.
// Everything except DisplayName is immutable until the next reset.
type Identity struct {
	UserKey      UserKey    `json:"user_key"`
	DisplayName  string     `json:"-"` // attached per lookup, never persisted
	Race         string     `json:"race"`
	Job          string     `json:"job"`
	Gender       string     `json:"gender"`
	BodyType     string     `json:"body_type"`
	HairColor    string     `json:"hair_color"`
	EyeColor     string     `json:"eye_color"`
	SpecialSkill string     `json:"special_skill"`
	Attributes   Attributes `json:"attributes"`
	Luck         int        `json:"luck"`
	CreatedAt    time.Time  `json:"created_at"`
}

// WithDisplayName returns a copy of the identity labelled with the given name
func (i Identity) WithDisplayName(name string) *Identity {
	i.DisplayName = name
	return &i
}
