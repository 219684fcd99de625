package catalog

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode selects which rules apply to the title.
type Mode int

const (
	// ModeCreate requires a title.
	ModeCreate Mode = iota
	// ModeUpdate only rejects a title that was sent empty.
	ModeUpdate
)

const (
	MsgTitleRequired = "title is required"
	MsgTitleEmpty    = "title cannot be empty"
	MsgYearRange     = "year must be a whole number between 1970 and 2100"
	MsgRatingRange   = "rating must be a number between 0 and 10"
)

// candidate is the coerced form of a GameInput that the validator checks.
// Field order is message order.
type candidate struct {
	Title  string   `validate:"required"`
	Year   *float64 `validate:"omitnil,whole,min=1970,max=2100"`
	Rating *float64 `validate:"omitnil,finite,min=0,max=10"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Float64 {
			return false
		}
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0) && x == math.Trunc(x)
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Float64 {
			return false
		}
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	})
	return v
}

// Validate checks in against the rules for mode and returns every violated
// rule. An empty result means the input is valid.
func Validate(in GameInput, mode Mode) []string {
	c := candidate{}
	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
	}
	if in.Year.Set {
		y := in.Year.Value
		c.Year = &y
	}
	if in.Rating.Set {
		r := in.Rating.Value
		c.Rating = &r
	}

	var err error
	if mode == ModeUpdate && in.Title == nil {
		err = validate.StructExcept(c, "Title")
	} else {
		err = validate.Struct(c)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Title":
			if mode == ModeCreate {
				messages = append(messages, MsgTitleRequired)
			} else {
				messages = append(messages, MsgTitleEmpty)
			}
		case "Year":
			messages = append(messages, MsgYearRange)
		case "Rating":
			messages = append(messages, MsgRatingRange)
		}
	}
	return messages
}
