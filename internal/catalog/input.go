package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gamecatalog/backend/internal/models"
)

// GameInput is the raw create/update payload. Every field remembers whether
// the client sent it, which is what partial updates are built on.
type GameInput struct {
	Title    *string      `json:"titulo" swaggertype:"string" example:"Celeste"`
	Platform *string      `json:"plataforma" swaggertype:"string" example:"Switch"`
	Genre    *string      `json:"genero" swaggertype:"string" example:"Platformer"`
	Year     NumericField `json:"ano" swaggertype:"integer" example:"2018"`
	Rating   NumericField `json:"nota" swaggertype:"number" example:"9"`
}

// NumericField holds a JSON number, or a string holding one. A null leaves
// it unset and a blank string counts as 0. A string that does not parse is
// kept as NaN so validation can report it.
type NumericField struct {
	Set   bool
	Value float64
}

// Number returns a set NumericField.
func Number(v float64) NumericField {
	return NumericField{Set: true, Value: v}
}

// Text returns a pointer to s, for building inputs in code.
func Text(s string) *string {
	return &s
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumericField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = NumericField{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = NumericField{Set: true}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			v = math.NaN()
		}
		*n = NumericField{Set: true, Value: v}
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid number %s: %w", data, err)
		}
		*n = NumericField{Set: true, Value: v}
		return nil
	default:
		return fmt.Errorf("expected a number or numeric string, got %s", data)
	}
}

// Apply copies the fields present in the input onto g. Absent fields never
// overwrite what g already holds. Callers validate first.
func (in GameInput) Apply(g *models.Game) {
	if in.Title != nil {
		g.Title = strings.TrimSpace(*in.Title)
	}
	if in.Platform != nil {
		g.Platform = strings.TrimSpace(*in.Platform)
	}
	if in.Genre != nil {
		g.Genre = strings.TrimSpace(*in.Genre)
	}
	if in.Year.Set {
		y := int(in.Year.Value)
		g.Year = &y
	}
	if in.Rating.Set {
		r := in.Rating.Value
		g.Rating = &r
	}
}
