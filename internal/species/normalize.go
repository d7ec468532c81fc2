package species

import (
	"strings"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
)

// Normalize converts input that already passed Validate into its canonical
// stored form: text trimmed, empty text replaced by null. Running it on its
// own output through FromSpecies yields the same record.
func Normalize(in Input) models.Species {
	out := models.Species{
		CommonName:     trimToNil(in.CommonName),
		Description:    trimToNil(in.Description),
		Kingdom:        models.Kingdom(in.Kingdom),
		ScientificName: strings.TrimSpace(in.ScientificName),
		Image:          trimToNil(in.Image),
	}
	if in.TotalPopulation != nil {
		n := int64(*in.TotalPopulation)
		out.TotalPopulation = &n
	}
	return out
}

// FromSpecies turns a stored record back into editable input, used to
// resync form state with what was actually persisted.
func FromSpecies(s models.Species) Input {
	in := Input{
		CommonName:     s.CommonName,
		Description:    s.Description,
		Kingdom:        string(s.Kingdom),
		ScientificName: s.ScientificName,
		Image:          s.Image,
	}
	if s.TotalPopulation != nil {
		f := float64(*s.TotalPopulation)
		in.TotalPopulation = &f
	}
	return in
}

// DefaultInput is the starting state of the add form.
func DefaultInput() Input {
	return Input{Kingdom: string(models.KingdomAnimalia)}
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
