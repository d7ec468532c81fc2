// Package species holds the species record pipeline: validation and
// normalization of raw form input, derived display text, and the view
// models rendered by the card and the details dialog.
package species

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
)

// Sentinel reasons a field can fail validation.
var (
	ErrRequired     = errors.New("required field missing")
	ErrInvalidEnum  = errors.New("invalid enumeration value")
	ErrOutOfRange   = errors.New("out of range")
	ErrMalformedURL = errors.New("malformed URL")
)

// Input is a structurally loose species record as submitted by a user.
// Pointer fields may be absent; TotalPopulation is a float so that
// non-integer submissions can be rejected instead of silently truncated.
type Input struct {
	CommonName      *string  `json:"common_name"`
	Description     *string  `json:"description"`
	Kingdom         string   `json:"kingdom"`
	ScientificName  string   `json:"scientific_name"`
	TotalPopulation *float64 `json:"total_population"`
	Image           *string  `json:"image"`
}

// FieldError identifies one field that failed validation and why.
type FieldError struct {
	Field  string `json:"field"`
	Reason error  `json:"-"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Reason)
}

func (e FieldError) Unwrap() error { return e.Reason }

// IsMalformedURL reports whether the field failed the structural URL check.
func (e FieldError) IsMalformedURL() bool {
	return errors.Is(e.Reason, ErrMalformedURL)
}

// ValidationErrors collects every field that failed, in field order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, fe := range v {
		errs = append(errs, fe)
	}
	return errs
}

// For returns the failure for the named field, if any.
func (v ValidationErrors) For(field string) (FieldError, bool) {
	for _, fe := range v {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// ByField maps field names to their failure reason text.
func (v ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		out[fe.Field] = fe.Reason.Error()
	}
	return out
}

// checked is the trimmed view of an Input that the field rules run against.
type checked struct {
	Kingdom         string   `json:"kingdom" validate:"oneof=Animalia Plantae Fungi Protista Archaea Bacteria"`
	ScientificName  string   `json:"scientific_name" validate:"required"`
	TotalPopulation *float64 `json:"total_population" validate:"omitnil,wholenumber,gte=1"`
	Image           *string  `json:"image" validate:"omitnil,url"`
}

// largest population that survives the float64 -> int64 conversion exactly
const maxPopulation = 1 << 53

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("wholenumber", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f) && math.Abs(f) <= maxPopulation
	})
	return v
}

// reasonFor maps a validator tag to the failure reason.
func reasonFor(tag string) error {
	switch tag {
	case "oneof":
		return ErrInvalidEnum
	case "required":
		return ErrRequired
	case "wholenumber", "gte":
		return ErrOutOfRange
	case "url":
		return ErrMalformedURL
	default:
		return fmt.Errorf("failed %q rule", tag)
	}
}

// Validate checks raw input against the species field rules. It returns nil
// or a ValidationErrors listing every failing field. Text is trimmed before
// it is checked, so whitespace-only values count as empty.
func Validate(in Input) error {
	c := checked{
		Kingdom:         in.Kingdom,
		ScientificName:  strings.TrimSpace(in.ScientificName),
		TotalPopulation: in.TotalPopulation,
		Image:           trimToNil(in.Image),
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating species: %w", err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{Field: fe.Field(), Reason: reasonFor(fe.Tag())})
	}
	return out
}

// Parse validates then normalizes raw input in one pass.
func Parse(in Input) (models.Species, error) {
	if err := Validate(in); err != nil {
		return models.Species{}, err
	}
	return Normalize(in), nil
}
