package species

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EndangeredThreshold is the population below which a species is flagged.
const EndangeredThreshold = 2500

// SummaryLength is how many characters of a description the card shows.
const SummaryLength = 150

// unnamedSpecies stands in for a missing common name in display sentences.
const unnamedSpecies = "species"

// FormatPopulation renders n with en-US thousands separators and no fraction.
func FormatPopulation(n int64) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n)
}

// PopulationStatus computes the population line and the endangerment
// warning shown in the details dialog. A nil population is "Unknown".
func PopulationStatus(population *int64, commonName *string) (status, warning string) {
	// Stored populations are positive; a zero would be a legacy row and reads as unknown.
	if population == nil || *population <= 0 {
		return "Unknown", ""
	}
	n := *population
	if n < EndangeredThreshold {
		return "Only " + FormatPopulation(n) + " left!", "The " + DisplayName(commonName) + " is ENDANGERED!"
	}
	return FormatPopulation(n), ""
}

// DisplayName returns the trimmed common name, or a generic noun when the
// record has none.
func DisplayName(commonName *string) string {
	if commonName == nil || strings.TrimSpace(*commonName) == "" {
		return unnamedSpecies
	}
	return strings.TrimSpace(*commonName)
}

// Summary cuts a description down for the card. Descriptions longer than
// SummaryLength characters are hard-cut, trimmed and given an ellipsis;
// shorter ones are returned unchanged. No word-boundary handling.
func Summary(description *string) string {
	if description == nil {
		return ""
	}
	runes := []rune(*description)
	if len(runes) <= SummaryLength {
		return *description
	}
	return strings.TrimSpace(string(runes[:SummaryLength])) + "..."
}
