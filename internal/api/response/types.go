package response

import (
	"time"

	"github.com/mcoot/rebirth/internal/model"
)

// Attributes represents the four rolled attributes
type Attributes struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
}

// Identity represents an identity in API responses
type Identity struct {
	UserKey      string     `json:"user_key"`
	DisplayName  string     `json:"display_name,omitempty"`
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

// IdentityFromModel converts a model.Identity to a response Identity
func IdentityFromModel(i *model.Identity) Identity {
	return Identity{
		UserKey:      string(i.UserKey),
		DisplayName:  i.DisplayName,
		Race:         i.Race,
		Job:          i.Job,
		Gender:       i.Gender,
		BodyType:     i.BodyType,
		HairColor:    i.HairColor,
		EyeColor:     i.EyeColor,
		SpecialSkill: i.SpecialSkill,
		Attributes: Attributes{
			Strength:     i.Attributes.Strength,
			Agility:      i.Attributes.Agility,
			Intelligence: i.Attributes.Intelligence,
			Charisma:     i.Attributes.Charisma,
		},
		Luck:      i.Luck,
		CreatedAt: i.CreatedAt,
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status    string    `json:"status"`
	NextReset time.Time `json:"next_reset,omitzero"`
}
