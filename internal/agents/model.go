// README: Recommendation document shapes exchanged between the specialist agents and the master planner.
package agents

import (
	"tripforge/internal/budget"
	"tripforge/internal/itinerary"
)

// Constraints carries the trip parameters every agent prompt is built from.
type Constraints struct {
	Destination string
	Days        int
	TotalBudget float64
	Budget      budget.Breakdown
	GroupType   string
	TripType    []string
}

// TripDetails is the request metadata handed to the master planner verbatim.
type TripDetails struct {
	Destination          string   `json:"destination"`
	StartingPoint        string   `json:"startingPoint,omitempty"`
	Budget               string   `json:"budget"`
	Days                 string   `json:"days"`
	NumberOfPeople       string   `json:"numberOfPeople"`
	GroupType            string   `json:"groupType"`
	TripType             []string `json:"tripType"`
	Accommodation        string   `json:"accommodation,omitempty"`
	Transportation       string   `json:"transportation,omitempty"`
	PrePlannedActivities string   `json:"prePlannedActivities,omitempty"`
	Description          string   `json:"description"`
	StartDate            string   `json:"startDate,omitempty"`
	EndDate              string   `json:"endDate,omitempty"`
}

// HotelDoc is the hotel agent's output: exactly 3 options, not per-day.
type HotelDoc struct {
	AccommodationOptions []itinerary.Accommodation `json:"accommodationOptions"`
}

// RestaurantDay groups the 3 meal picks (breakfast, lunch, dinner) for one day.
type RestaurantDay struct {
	Day         int              `json:"day"`
	Restaurants []itinerary.Meal `json:"restaurants"`
}

// RestaurantDoc is the restaurant agent's output, one entry per trip day.
type RestaurantDoc struct {
	RestaurantsByDay []RestaurantDay `json:"restaurantsByDay"`
}

// AttractionDay groups a day's sightseeing picks under a theme title.
type AttractionDay struct {
	Day         int                  `json:"day"`
	DayTitle    string               `json:"dayTitle"`
	Attractions []itinerary.Activity `json:"attractions"`
}

// AttractionDoc is the attraction agent's output, one entry per trip day with
// at least 3 attractions each.
type AttractionDoc struct {
	AttractionsByDay []AttractionDay `json:"attractionsByDay"`
}
