package models

// Kingdom is one of the six fixed biological kingdoms a species can belong to.
type Kingdom string

const (
	KingdomAnimalia Kingdom = "Animalia"
	KingdomPlantae  Kingdom = "Plantae"
	KingdomFungi    Kingdom = "Fungi"
	KingdomProtista Kingdom = "Protista"
	KingdomArchaea  Kingdom = "Archaea"
	KingdomBacteria Kingdom = "Bacteria"
)

// Kingdoms lists every valid kingdom in display order.
func Kingdoms() []Kingdom {
	return []Kingdom{
		KingdomAnimalia,
		KingdomPlantae,
		KingdomFungi,
		KingdomProtista,
		KingdomArchaea,
		KingdomBacteria,
	}
}

// Valid reports whether k is one of the six kingdoms. The match is case-sensitive.
func (k Kingdom) Valid() bool {
	for _, known := range Kingdoms() {
		if k == known {
			return true
		}
	}
	return false
}

// Species represents the structure of a row in the species table.
type Species struct {
	ID              int64   `json:"id,omitempty"`
	Author          *string `json:"author,omitempty"`    // Nullable UUID of the creating user
	CommonName      *string `json:"common_name"`         // Nullable TEXT
	Description     *string `json:"description"`         // Nullable TEXT
	Kingdom         Kingdom `json:"kingdom"`
	ScientificName  string  `json:"scientific_name"`
	TotalPopulation *int64  `json:"total_population"` // Nullable BIGINT, null means unknown
	Image           *string `json:"image"`            // Nullable TEXT holding a URL
}
