// README: Hotel recommendation agent; picks 3 budget-fitting options from verified candidates.
package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"tripforge/internal/ai"
	"tripforge/internal/places"
)

const hotelSystem = "You are a hotel recommendation expert. You analyze hotel data and select the best options. Always return valid JSON only, no markdown formatting."

// HotelAgent selects accommodation options from the candidate list via the
// generative model.
type HotelAgent struct {
	gen ai.Generator
}

func NewHotelAgent(gen ai.Generator) *HotelAgent {
	return &HotelAgent{gen: gen}
}

// Recommend returns exactly 3 top-level accommodation options chosen from the
// supplied candidates, constrained to the hotel-per-night sub-budget.
func (a *HotelAgent) Recommend(ctx context.Context, c Constraints, hotels []places.Candidate) (*HotelDoc, error) {
	prompt := fmt.Sprintf(`You are a hotel recommendation expert specializing in %s.

AVAILABLE HOTELS FROM GOOGLE PLACES (verified real places):
%s

TRIP DETAILS:
- Duration: %d days
- Total Budget: $%.0f
- Budget Per Day: $%.0f
- Hotel Budget Per Night: ~$%.0f (40%% of daily budget)
- Group Type: %s

YOUR TASK:
Select the TOP 3 accommodations that FIT WITHIN THE BUDGET. Consider:
1. CRITICAL: Price must be <= $%.0f per night
2. Prioritize price levels $ or $$ for budget trips (ignore $$$ and $$$$ if budget is low)
3. Rating and review count (prioritize highly rated with many reviews)
4. Location convenience for tourists
5. Suitable for %s

BUDGET ENFORCEMENT:
- If budget is $%.0f for %d days, hotel should cost max $%.0f/night
- Estimate realistic prices based on price level:
  - $ (Budget): $30-60/night
  - $$ (Moderate): $60-120/night
  - $$$ (Upscale): $120-250/night
  - $$$$ (Luxury): $250+/night

Return ONLY valid JSON (no markdown, no explanations) in this exact format:
{
  "accommodationOptions": [
    {
      "name": "Hotel name from the list above",
      "type": "Hotel/Hostel/Airbnb",
      "location": "Address from above",
      "rating": 4.5,
      "reviews": 1234,
      "mapsLink": "the Maps Link from above, copied verbatim",
      "priceRange": "$XX - $XXX per night",
      "amenities": ["WiFi", "Breakfast", "Pool"],
      "whyRecommended": "Brief explanation why this is good for the trip"
    }
  ]
}

IMPORTANT: Use ONLY hotels from the list above. Include all fields. Return pure JSON only.`,
		c.Destination,
		candidateBlock(hotels, true),
		c.Days, c.TotalBudget, c.Budget.PerDay, c.Budget.HotelPerNight, c.GroupType,
		c.Budget.HotelPerNight, c.GroupType,
		c.TotalBudget, c.Days, c.Budget.HotelPerNight)

	raw, err := a.gen.GenerateJSON(ctx, ai.Request{
		System:      hotelSystem,
		Prompt:      prompt,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	if err := validateAgainst(hotelSchema, raw); err != nil {
		return nil, err
	}

	var doc HotelDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return &doc, nil
}
