// README: Place candidate model; simplified Google Places result consumed by the agents.
package places

import (
	"fmt"
	"net/url"
)

// Review is a single user review carried through from the provider, capped at 3 per place.
type Review struct {
	Author       string `json:"author"`
	Rating       int    `json:"rating"`
	Text         string `json:"text"`
	RelativeTime string `json:"relativeTime"`
}

// OpeningHours holds the weekly text schedule and the open-now flag when the
// provider reports them.
type OpeningHours struct {
	OpenNow     *bool    `json:"openNow,omitempty"`
	WeekdayText []string `json:"weekdayText,omitempty"`
}

// Candidate is one ranked search result. PlaceID uniquely identifies the place
// for the duration of a generation request; candidates are never mutated after
// the search that produced them.
type Candidate struct {
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Rating       float32       `json:"rating,omitempty"`
	ReviewCount  int           `json:"reviewCount,omitempty"`
	PriceLevel   int           `json:"priceLevel,omitempty"` // 1-4; 0 means the provider reported none
	PlaceID      string        `json:"placeId"`
	PhotoURLs    []string      `json:"photoUrls,omitempty"`
	OpeningHours *OpeningHours `json:"openingHours,omitempty"`
	Website      string        `json:"website,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Reviews      []Review      `json:"reviews,omitempty"`
}

// MapsLink builds the Google Maps search URL the agents are instructed to echo back.
func (c Candidate) MapsLink() string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s&query_place_id=%s",
		url.QueryEscape(c.Name), c.PlaceID)
}

// PriceLabel renders the price level as repeated dollar signs for prompts.
func (c Candidate) PriceLabel() string {
	if c.PriceLevel <= 0 {
		return "Not specified"
	}
	s := ""
	for i := 0; i < c.PriceLevel; i++ {
		s += "$"
	}
	return s
}
