package agents

import (
	"fmt"
	"strings"

	"tripforge/internal/places"
)

// candidateBlock renders the verified provider results the model is allowed to
// pick from. The place id is included so the model can echo back a working maps
// link; names remain the cross-reference key for enrichment.
func candidateBlock(candidates []places.Candidate, withPrice bool) string {
	var b strings.Builder
	for i, c := range candidates {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, c.Name)
		fmt.Fprintf(&b, "   - Address: %s\n", c.Address)
		fmt.Fprintf(&b, "   - Rating: %s (%d reviews)\n", ratingLabel(c.Rating), c.ReviewCount)
		if withPrice {
			fmt.Fprintf(&b, "   - Price Level: %s\n", c.PriceLabel())
		}
		fmt.Fprintf(&b, "   - Place ID: %s\n", c.PlaceID)
		fmt.Fprintf(&b, "   - Maps Link: %s\n", c.MapsLink())
	}
	return b.String()
}

func ratingLabel(rating float32) string {
	if rating <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f★", rating)
}
