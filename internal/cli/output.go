package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Identity:
		o.printIdentity(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Attributes response type
type Attributes struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
}

// Identity response type (matches API)
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

// HealthResult response type
type HealthResult struct {
	Status    string    `json:"status"`
	NextReset time.Time `json:"next_reset,omitzero"`
}

func (o *Output) printIdentity(i Identity) {
	name := i.DisplayName
	if name == "" {
		name = i.UserKey
	}
	fmt.Fprintf(o.w, "Rebirth for %s:\n", name)
	fmt.Fprintf(o.w, "  Race: %s  Job: %s\n", i.Race, i.Job)
	fmt.Fprintf(o.w, "  Gender: %s  Body Type: %s\n", i.Gender, i.BodyType)
	fmt.Fprintf(o.w, "  Attributes: Strength: %d Agility: %d Intelligence: %d Charisma: %d\n",
		i.Attributes.Strength, i.Attributes.Agility, i.Attributes.Intelligence, i.Attributes.Charisma)
	fmt.Fprintf(o.w, "  Luck: %d\n", i.Luck)
	fmt.Fprintf(o.w, "  Special Skill: %s\n", i.SpecialSkill)
	fmt.Fprintf(o.w, "  Hair Color: %s\n", i.HairColor)
	fmt.Fprintf(o.w, "  Eye Color: %s\n", i.EyeColor)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if !h.NextReset.IsZero() {
		fmt.Fprintf(o.w, "Next Reset: %s\n", h.NextReset.Format(time.RFC3339))
	}
}
