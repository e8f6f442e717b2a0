// README: Enrichment stage; matches generated names back to provider records and splices in detail.
package itinerary

import (
	"strings"

	"tripforge/internal/places"
)

// Enrich attaches provider detail (contact info, photos, opening hours, reviews)
// to every named entry in the itinerary by looking the name up in the candidate
// lists its agent was given. Matching is case-insensitive: exact first, then
// substring in either direction; the first candidate that matches wins.
//
// Enrichment is strictly additive and non-fatal. A name with no match is left
// unchanged, and no field outside the PlaceDetails bundle is ever touched.
func Enrich(it *Itinerary, restaurants, attractions, hotels []places.Candidate) {
	for i := range it.AccommodationOptions {
		enrichEntry(&it.AccommodationOptions[i].PlaceDetails, it.AccommodationOptions[i].Name, hotels)
	}

	for d := range it.Days {
		day := &it.Days[d]
		for i := range day.Activities {
			enrichEntry(&day.Activities[i].PlaceDetails, day.Activities[i].Activity, attractions)
		}
		for i := range day.Meals {
			enrichEntry(&day.Meals[i].PlaceDetails, day.Meals[i].Restaurant, restaurants)
		}
		if day.Accommodation != nil {
			enrichEntry(&day.Accommodation.PlaceDetails, day.Accommodation.Name, hotels)
		}
	}
}

func enrichEntry(dst *PlaceDetails, name string, candidates []places.Candidate) {
	c := matchCandidate(name, candidates)
	if c == nil {
		return
	}

	if c.Website != "" {
		dst.Website = c.Website
	}
	if c.Phone != "" {
		dst.Phone = c.Phone
	}
	if len(c.PhotoURLs) > 0 {
		dst.PhotoURLs = c.PhotoURLs
	}
	if c.OpeningHours != nil {
		if len(c.OpeningHours.WeekdayText) > 0 {
			dst.OpeningHours = c.OpeningHours.WeekdayText
		}
		if c.OpeningHours.OpenNow != nil {
			dst.OpenNow = c.OpeningHours.OpenNow
		}
	}
	if len(c.Reviews) > 0 {
		dst.PlaceReviews = c.Reviews
	}
}

// matchCandidate finds the provider record a generated name refers to. The
// generator references places by name only, so the link back to the record is
// re-derived here. No scoring among multiple matches; iteration order decides.
func matchCandidate(name string, candidates []places.Candidate) *places.Candidate {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	for i := range candidates {
		if strings.ToLower(strings.TrimSpace(candidates[i].Name)) == needle {
			return &candidates[i]
		}
	}

	for i := range candidates {
		have := strings.ToLower(strings.TrimSpace(candidates[i].Name))
		if have == "" {
			continue
		}
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			return &candidates[i]
		}
	}

	return nil
}
