// README: Master planner agent; merges the three recommendation documents into the final itinerary.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripforge/internal/ai"
	"tripforge/internal/itinerary"
)

const masterSystem = "You are a master trip planner who synthesizes expert recommendations into comprehensive itineraries. Always return valid JSON only, no markdown formatting."

// masterTimeout bounds the heaviest generation call of the pipeline.
const masterTimeout = 2 * time.Minute

// MasterAgent folds the specialist documents into one itinerary structured by day.
type MasterAgent struct {
	gen ai.Generator
}

func NewMasterAgent(gen ai.Generator) *MasterAgent {
	return &MasterAgent{gen: gen}
}

// Synthesize merges the three recommendation documents plus trip metadata into
// the final itinerary. It aggregates: hotel options go to the top level,
// attraction and restaurant picks fold into day plans, and only narrative meta
// fields (overview, tips, packing list, emergency info) are newly generated.
// The output must cover exactly c.Days days, indexed contiguously from 1.
func (a *MasterAgent) Synthesize(ctx context.Context, c Constraints, hotels *HotelDoc, restaurants *RestaurantDoc, attractions *AttractionDoc, details TripDetails) (*itinerary.Itinerary, error) {
	hotelJSON, err := json.MarshalIndent(hotels, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode hotel document: %w", err)
	}
	restaurantJSON, err := json.MarshalIndent(restaurants, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode restaurant document: %w", err)
	}
	attractionJSON, err := json.MarshalIndent(attractions, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode attraction document: %w", err)
	}
	detailsJSON, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode trip details: %w", err)
	}

	prompt := fmt.Sprintf(`You are the master trip planner. Combine all expert recommendations into a complete itinerary.

HOTEL RECOMMENDATIONS (show these first as OPTIONS):
%s

RESTAURANT RECOMMENDATIONS BY DAY:
%s

ATTRACTION RECOMMENDATIONS BY DAY:
%s

TRIP DETAILS:
%s

YOUR TASK:
Create a complete %d-day itinerary that:
1. Shows 3 accommodation OPTIONS at the top (user will choose)
2. For each day, includes:
   - Day title/theme
   - 3+ attractions organized by time of day (Morning/Afternoon/Evening)
   - 3 restaurant options (breakfast, lunch, dinner)
   - Daily budget estimate
3. Includes travel tips, packing list, cultural tips, emergency info

Return ONLY valid JSON (no markdown) in this exact format:
{
  "title": "%s %d-Day Adventure",
  "destination": "%s",
  "duration": "%d days",
  "overview": "Brief compelling overview of the trip",
  "totalBudget": "Estimated total for %d days",
  "accommodationOptions": [USE THE 3 OPTIONS FROM the hotel recommendations],
  "days": [
    {
      "day": 1,
      "title": "Day title from the attraction recommendations",
      "activities": [USE attractions from the attraction recommendations for day 1 - minimum 3],
      "meals": [USE restaurants from the restaurant recommendations for day 1 - exactly 3],
      "dailyBudget": "$XXX"
    }
  ],
  "travelTips": ["Tip 1", "Tip 2", "Tip 3", "Tip 4", "Tip 5"],
  "packingList": ["Item 1", "Item 2", ...],
  "transportation": {
    "gettingThere": "How to reach %s",
    "gettingAround": "Local transport options",
    "costs": "Estimated transport costs"
  },
  "localCuisine": ["Must-try dish 1", "Must-try dish 2", ...],
  "culturalTips": ["Tip 1", "Tip 2", ...],
  "emergencyInfo": {
    "police": "Local emergency number",
    "ambulance": "Local emergency number",
    "embassy": "Contact if applicable"
  }
}

IMPORTANT:
- Use ALL data provided by the expert agents
- Don't add new places - use only what was recommended
- The "days" array must contain exactly %d entries, with "day" numbered 1 through %d
- Keep the structure exactly as shown
- Return pure JSON only, no markdown`,
		hotelJSON, restaurantJSON, attractionJSON, detailsJSON,
		c.Days,
		c.Destination, c.Days, c.Destination, c.Days, c.Days,
		c.Destination,
		c.Days, c.Days)

	ctx, cancel := context.WithTimeout(ctx, masterTimeout)
	defer cancel()

	raw, err := a.gen.GenerateJSON(ctx, ai.Request{
		System:          masterSystem,
		Prompt:          prompt,
		Temperature:     0.5,
		MaxOutputTokens: 12000,
	})
	if err != nil {
		return nil, err
	}

	if err := validateAgainst(itinerarySchema, raw); err != nil {
		return nil, err
	}

	var it itinerary.Itinerary
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if got := len(it.Days); got != c.Days {
		return nil, fmt.Errorf("itinerary covers %d days, expected %d", got, c.Days)
	}
	for i, day := range it.Days {
		if day.Day != i+1 {
			return nil, fmt.Errorf("day indices not contiguous: position %d has day %d", i, day.Day)
		}
	}

	return &it, nil
}
