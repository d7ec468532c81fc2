package species

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int64) *int64       { return &n }

func validInput() Input {
	return Input{
		CommonName:      strPtr("Amur Leopard"),
		Description:     strPtr("A rare leopard of the Russian Far East."),
		Kingdom:         "Animalia",
		ScientificName:  "Panthera pardus orientalis",
		TotalPopulation: floatPtr(120),
		Image:           strPtr("https://example.com/leopard.jpg"),
	}
}

func requireFieldError(t *testing.T, err error, field string, reason error) {
	t.Helper()
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fe, ok := verrs.For(field)
	require.True(t, ok, "expected an error for %s, got %v", field, verrs)
	assert.ErrorIs(t, fe, reason)
}

func TestValidate_ValidInput(t *testing.T) {
	assert.NoError(t, Validate(validInput()))
}

func TestValidate_Kingdom(t *testing.T) {
	for _, k := range models.Kingdoms() {
		in := validInput()
		in.Kingdom = string(k)
		assert.NoError(t, Validate(in), k)
	}

	for _, bad := range []string{"", "animalia", "ANIMALIA", "Chromista", " Animalia"} {
		t.Run("reject_"+bad, func(t *testing.T) {
			in := validInput()
			in.Kingdom = bad
			requireFieldError(t, Validate(in), "kingdom", ErrInvalidEnum)
		})
	}
}

func TestValidate_KingdomErrorNotSuppressed(t *testing.T) {
	in := Input{
		Kingdom:         "Dragons",
		ScientificName:  "   ",
		TotalPopulation: floatPtr(0),
		Image:           strPtr("not a url"),
	}

	err := Validate(in)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)
	assert.Equal(t, map[string]string{
		"kingdom":          ErrInvalidEnum.Error(),
		"scientific_name":  ErrRequired.Error(),
		"total_population": ErrOutOfRange.Error(),
		"image":            ErrMalformedURL.Error(),
	}, verrs.ByField())
	assert.ErrorIs(t, err, ErrInvalidEnum)
	assert.ErrorIs(t, err, ErrMalformedURL)
}

func TestValidate_ScientificNameRequired(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		in := validInput()
		in.ScientificName = name
		requireFieldError(t, Validate(in), "scientific_name", ErrRequired)
	}
}

func TestValidate_TotalPopulation(t *testing.T) {
	tests := []struct {
		name    string
		value   *float64
		wantErr bool
	}{
		{"absent", nil, false},
		{"one", floatPtr(1), false},
		{"million", floatPtr(1_000_000), false},
		{"zero", floatPtr(0), true},
		{"negative", floatPtr(-5), true},
		{"fraction", floatPtr(3.5), true},
		{"nan", floatPtr(math.NaN()), true},
		{"infinite", floatPtr(math.Inf(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.TotalPopulation = tt.value
			err := Validate(in)
			if tt.wantErr {
				requireFieldError(t, err, "total_population", ErrOutOfRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_Image(t *testing.T) {
	in := validInput()
	in.Image = nil
	assert.NoError(t, Validate(in))

	in.Image = strPtr("   ")
	assert.NoError(t, Validate(in), "blank image is treated as absent")

	in.Image = strPtr("  https://example.com/a.png  ")
	assert.NoError(t, Validate(in))

	in.Image = strPtr("leopard.jpg")
	err := Validate(in)
	requireFieldError(t, err, "image", ErrMalformedURL)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fe, _ := verrs.For("image")
	assert.True(t, fe.IsMalformedURL())
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{
		{Field: "kingdom", Reason: ErrInvalidEnum},
		{Field: "image", Reason: ErrMalformedURL},
	}
	assert.Equal(t, "validation failed: kingdom: invalid enumeration value; image: malformed URL", err.Error())
	assert.False(t, errors.Is(err, ErrRequired))
}

func TestParse(t *testing.T) {
	in := Input{
		CommonName:      strPtr("  Lion "),
		Description:     strPtr("   "),
		Kingdom:         "Animalia",
		ScientificName:  "  Panthera leo  ",
		TotalPopulation: floatPtr(23000),
		Image:           strPtr(" https://example.com/lion.jpg "),
	}

	got, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, models.Species{
		CommonName:      strPtr("Lion"),
		Description:     nil,
		Kingdom:         models.KingdomAnimalia,
		ScientificName:  "Panthera leo",
		TotalPopulation: intPtr(23000),
		Image:           strPtr("https://example.com/lion.jpg"),
	}, got)

	_, err = Parse(Input{Kingdom: "Animalia"})
	assert.ErrorIs(t, err, ErrRequired)
}
