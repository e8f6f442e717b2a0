// README: Restaurant recommendation agent; breakfast/lunch/dinner picks for every trip day.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripforge/internal/ai"
	"tripforge/internal/places"
)

const restaurantSystem = "You are a restaurant recommendation expert. You analyze restaurant data and create dining plans. Always return valid JSON only, no markdown formatting."

// RestaurantAgent builds the per-day dining plan from the candidate list.
type RestaurantAgent struct {
	gen ai.Generator
}

func NewRestaurantAgent(gen ai.Generator) *RestaurantAgent {
	return &RestaurantAgent{gen: gen}
}

// Recommend returns 3 meal picks (breakfast, lunch, dinner) for every day of
// the trip, constrained to the per-meal sub-budget.
func (a *RestaurantAgent) Recommend(ctx context.Context, c Constraints, restaurants []places.Candidate) (*RestaurantDoc, error) {
	foodPerDay := c.Budget.MealBudget * 3

	prompt := fmt.Sprintf(`You are a restaurant recommendation expert specializing in %s.

AVAILABLE RESTAURANTS FROM GOOGLE PLACES (verified real places):
%s

TRIP DETAILS:
- Duration: %d days (need %d restaurant recommendations)
- Total Budget: $%.0f
- Budget Per Day: $%.0f
- Food Budget Per Day: ~$%.0f (40%% of daily budget)
- Budget Per Meal: ~$%.0f
- Trip Interests: %s

BUDGET ENFORCEMENT:
- Each meal should cost approximately $%.0f or less
- Prioritize $ and $$ restaurants for budget trips
- Price level guide:
  - $ : $5-15 per meal
  - $$ : $15-35 per meal
  - $$$ : $35-60 per meal
  - $$$$ : $60+ per meal

YOUR TASK:
Select the BEST restaurants for each day. For %d days, recommend:
- %d breakfast places (variety of options)
- %d lunch places (mix of casual and nice)
- %d dinner places (highlight best dining experiences)

IMPORTANT: Prioritize ICONIC and FAMOUS restaurants/places that tourists MUST visit.

Return ONLY valid JSON (no markdown, no explanations) in this exact format:
{
  "restaurantsByDay": [
    {
      "day": 1,
      "restaurants": [
        {
          "type": "Breakfast",
          "restaurant": "Name from list above",
          "cuisine": "Type of cuisine",
          "location": "Address from above",
          "rating": 4.5,
          "reviews": 1234,
          "mapsLink": "the Maps Link from above, copied verbatim",
          "estimatedCost": "$XX",
          "mustTry": "Signature dishes",
          "whyVisit": "What makes this special"
        },
        {
          "type": "Lunch",
          "restaurant": "Name from list above",
          ...
        },
        {
          "type": "Dinner",
          "restaurant": "Name from list above",
          ...
        }
      ]
    }
  ]
}

IMPORTANT:
- Use ONLY restaurants from the list above
- Give 3 restaurants per day (breakfast, lunch, dinner)
- Prioritize high ratings and many reviews
- Return pure JSON only`,
		c.Destination,
		candidateBlock(restaurants, true),
		c.Days, c.Days*3, c.TotalBudget, c.Budget.PerDay, foodPerDay, c.Budget.MealBudget,
		strings.Join(c.TripType, ", "),
		c.Budget.MealBudget,
		c.Days, c.Days, c.Days, c.Days)

	raw, err := a.gen.GenerateJSON(ctx, ai.Request{
		System:      restaurantSystem,
		Prompt:      prompt,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, err
	}

	if err := validateAgainst(restaurantSchema, raw); err != nil {
		return nil, err
	}

	var doc RestaurantDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if got := len(doc.RestaurantsByDay); got != c.Days {
		return nil, fmt.Errorf("expected dining plans for %d days, got %d", c.Days, got)
	}
	return &doc, nil
}
