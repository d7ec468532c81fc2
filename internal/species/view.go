package species

import "github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"

// Dialog is the open/closed state of an overlay.
type Dialog struct {
	Open bool
}

// Details is the read-only "Learn More" dialog for one record.
type Details struct {
	Dialog
	ID               int64
	CommonName       string
	ScientificName   string
	PopulationStatus string
	Warning          string
	Kingdom          models.Kingdom
	Description      string
}

// Card summarizes one record in the species list.
type Card struct {
	ID             int64
	UserID         string
	Image          string
	CommonName     string
	ScientificName string
	Summary        string
	Details        Details
}

// NewDetails builds the details dialog for s, closed.
func NewDetails(s models.Species) Details {
	status, warning := PopulationStatus(s.TotalPopulation, s.CommonName)
	d := Details{
		ID:               s.ID,
		CommonName:       DisplayName(s.CommonName),
		ScientificName:   s.ScientificName,
		PopulationStatus: status,
		Warning:          warning,
		Kingdom:          s.Kingdom,
	}
	if s.Description != nil {
		d.Description = *s.Description
	}
	return d
}

// NewCard builds the card for s as seen by userID. The user id is opaque
// and only handed through to the edit trigger.
func NewCard(s models.Species, userID string) Card {
	c := Card{
		ID:             s.ID,
		UserID:         userID,
		ScientificName: s.ScientificName,
		Summary:        Summary(s.Description),
		Details:        NewDetails(s),
	}
	if s.Image != nil {
		c.Image = *s.Image
	}
	if s.CommonName != nil {
		c.CommonName = *s.CommonName
	}
	return c
}

// Open returns a copy of the card with its details dialog open.
func (c Card) Open() Card {
	c.Details.Open = true
	return c
}
