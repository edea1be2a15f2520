// Package catalog loads the closed enumerations a character sheet is drawn
// from, together with the race and job modifier tables.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/rebirth/internal/model"
)

// Catalog is the decoded character configuration. The field names follow the
// plugin's rebirth.json layout so existing files load unchanged.
type Catalog struct {
	Races         []string `yaml:"races" validate:"required,min=1,dive,required"`
	Jobs          []string `yaml:"jobs" validate:"required,min=1,dive,required"`
	Genders       []string `yaml:"genders" validate:"required,min=1,dive,required"`
	BodyTypes     []string `yaml:"bodyTypes" validate:"required,min=1,dive,required"`
	HairColors    []string `yaml:"hairColors" validate:"required,min=1,dive,required"`
	EyeColors     []string `yaml:"eyeColors" validate:"required,min=1,dive,required"`
	SpecialSkills []string `yaml:"specialSkills" validate:"required,min=1,dive,required"`

	RaceModifiers map[string]model.Modifier `yaml:"raceModifiers"`
	JobModifiers  map[string]model.Modifier `yaml:"jobModifiers"`
}

// Load reads a catalog from a YAML or JSON file. An empty path selects the
// built-in default catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", model.ErrCatalogInvalid, path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog data. JSON input is accepted since
// it is valid YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", model.ErrCatalogInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every enumeration is populated
func (c *Catalog) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s", model.ErrCatalogInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", model.ErrCatalogInvalid, err)
	}
	return nil
}

// Table builds the immutable modifier lookup for this catalog
func (c *Catalog) Table() *ModifierTable {
	return NewModifierTable(c.RaceModifiers, c.JobModifiers)
}

func fieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
