// README: Final itinerary document; shape returned to the caller and persisted by the trip store.
package itinerary

import "tripforge/internal/places"

// PlaceDetails is the additive enrichment bundle spliced onto named entries
// after generation by matching them back to their provider record.
type PlaceDetails struct {
	Website      string          `json:"website,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	PhotoURLs    []string        `json:"photoUrls,omitempty"`
	OpeningHours []string        `json:"openingHours,omitempty"`
	OpenNow      *bool           `json:"openNow,omitempty"`
	PlaceReviews []places.Review `json:"placeReviews,omitempty"`
}

// Activity is one sightseeing entry, tagged Morning/Afternoon/Evening.
type Activity struct {
	TimeOfDay     string  `json:"timeOfDay"`
	Activity      string  `json:"activity"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	MapsLink      string  `json:"mapsLink"`
	Rating        float32 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
	EstimatedCost string  `json:"estimatedCost"`
	Duration      string  `json:"duration"`
	Tips          string  `json:"tips,omitempty"`
	PlaceDetails
}

// Meal is one dining entry; exactly breakfast, lunch and dinner per day.
type Meal struct {
	Type          string  `json:"type"`
	Restaurant    string  `json:"restaurant"`
	Cuisine       string  `json:"cuisine"`
	Location      string  `json:"location"`
	MapsLink      string  `json:"mapsLink"`
	Rating        float32 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
	EstimatedCost string  `json:"estimatedCost"`
	MustTry       string  `json:"mustTry,omitempty"`
	WhyVisit      string  `json:"whyVisit,omitempty"`
	PlaceDetails
}

// Accommodation describes a place to stay; used both for the top-level options
// list and the optional per-day accommodation.
type Accommodation struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Location       string   `json:"location"`
	MapsLink       string   `json:"mapsLink"`
	Rating         float32  `json:"rating,omitempty"`
	Reviews        int      `json:"reviews,omitempty"`
	PriceRange     string   `json:"priceRange"`
	Amenities      []string `json:"amenities,omitempty"`
	WhyRecommended string   `json:"whyRecommended,omitempty"`
	PlaceDetails
}

type DayPlan struct {
	Day           int            `json:"day"`
	Title         string         `json:"title"`
	Activities    []Activity     `json:"activities"`
	Meals         []Meal         `json:"meals"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	DailyBudget   string         `json:"dailyBudget"`
}

type Transportation struct {
	GettingThere  string `json:"gettingThere"`
	GettingAround string `json:"gettingAround"`
	Costs         string `json:"costs"`
}

type EmergencyInfo struct {
	Police    string `json:"police"`
	Ambulance string `json:"ambulance"`
	Embassy   string `json:"embassy"`
}

// Itinerary is the final artifact of a generation request. It is constructed
// once and never mutated after being returned, except for the additive
// enrichment pass that runs before the caller sees it.
type Itinerary struct {
	Title                string          `json:"title"`
	Destination          string          `json:"destination"`
	Duration             string          `json:"duration"`
	Overview             string          `json:"overview"`
	TotalBudget          string          `json:"totalBudget"`
	AccommodationOptions []Accommodation `json:"accommodationOptions,omitempty"`
	Days                 []DayPlan       `json:"days"`
	TravelTips           []string        `json:"travelTips"`
	PackingList          []string        `json:"packingList"`
	Transportation       Transportation  `json:"transportation"`
	LocalCuisine         []string        `json:"localCuisine"`
	CulturalTips         []string        `json:"culturalTips"`
	EmergencyInfo        EmergencyInfo   `json:"emergencyInfo"`
}
