// README: Attraction recommendation agent; at least 3 picks per day, tagged by time of day.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripforge/internal/ai"
	"tripforge/internal/places"
)

const attractionSystem = "You are an attraction recommendation expert. You analyze tourist attraction data and create sightseeing plans. Always return valid JSON only, no markdown formatting."

// AttractionAgent builds the per-day sightseeing plan from the candidate list.
type AttractionAgent struct {
	gen ai.Generator
}

func NewAttractionAgent(gen ai.Generator) *AttractionAgent {
	return &AttractionAgent{gen: gen}
}

// Recommend returns at least 3 attractions per trip day, each tagged Morning,
// Afternoon or Evening rather than a clock time.
func (a *AttractionAgent) Recommend(ctx context.Context, c Constraints, attractions []places.Candidate) (*AttractionDoc, error) {
	interests := strings.Join(c.TripType, ", ")

	prompt := fmt.Sprintf(`You are an attraction expert specializing in %s.

AVAILABLE ATTRACTIONS FROM GOOGLE PLACES (verified real places):
%s

TRIP DETAILS:
- Duration: %d days
- Trip Interests: %s

YOUR TASK:
Select the BEST attractions for each day. Requirements:
- MINIMUM 3 attractions per day
- Prioritize MUST-SEE iconic landmarks and famous spots
- Consider trip interests: %s
- Organize by time of day: Morning, Afternoon, Evening
- NO specific clock times (like 9:00 AM), just "Morning", "Afternoon", "Evening"

IMPORTANT: Focus on FAMOUS, ICONIC places that define %s. Don't miss major landmarks!

Return ONLY valid JSON (no markdown, no explanations) in this exact format:
{
  "attractionsByDay": [
    {
      "day": 1,
      "dayTitle": "Exploring [Theme]",
      "attractions": [
        {
          "timeOfDay": "Morning",
          "activity": "Name from list above",
          "description": "What you'll experience here",
          "location": "Address from above",
          "rating": 4.7,
          "reviews": 12345,
          "mapsLink": "the Maps Link from above, copied verbatim",
          "estimatedCost": "$XX or Free",
          "duration": "X hours",
          "tips": "Best time to visit, what to bring, insider tips"
        }
      ]
    }
  ]
}

IMPORTANT:
- Use ONLY attractions from the list above
- Minimum 3 attractions per day
- Prioritize highest rated and most reviewed (these are usually the iconic ones)
- Use timeOfDay: "Morning", "Afternoon", or "Evening" (NOT clock times)
- Return pure JSON only`,
		c.Destination,
		candidateBlock(attractions, false),
		c.Days, interests, interests, c.Destination)

	raw, err := a.gen.GenerateJSON(ctx, ai.Request{
		System:      attractionSystem,
		Prompt:      prompt,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, err
	}

	if err := validateAgainst(attractionSchema, raw); err != nil {
		return nil, err
	}

	var doc AttractionDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if got := len(doc.AttractionsByDay); got != c.Days {
		return nil, fmt.Errorf("expected sightseeing plans for %d days, got %d", c.Days, got)
	}
	return &doc, nil
}
