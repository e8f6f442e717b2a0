// README: Places search adapter; category-biased text search, tier price filter, popularity ranking, detail enrichment.
package places

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"tripforge/internal/budget"
)

const (
	// Detail lookups are the expensive call; only the head of the ranking gets them.
	detailTopRestaurants = 10
	detailTopAttractions = 10
	detailTopHotels      = 5

	maxPhotoURLs       = 5
	maxReviewsPerPlace = 3
)

// searchAPI is the slice of the Google Maps client the service uses.
// *maps.Client satisfies it; tests substitute a stub.
type searchAPI interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

// Service handles interactions with the Google Places API.
//
// Every search is best-effort: provider errors are logged and yield an empty
// slice, never an error. Callers treat an empty result as "no data available".
type Service struct {
	api    searchAPI
	apiKey string
	log    *zap.SugaredLogger
}

// NewService creates a Service backed by a real Google Maps client.
func NewService(apiKey string, log *zap.SugaredLogger) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{api: client, apiKey: apiKey, log: log}, nil
}

// SearchRestaurants returns up to limit ranked restaurants for the destination.
// Trip interests bias the query: "Food" prefers well-known spots, "Luxury" (or a
// Luxury tier) asks for fine dining.
func (s *Service) SearchRestaurants(ctx context.Context, destination string, tripType []string, tier budget.Tier, limit int) []Candidate {
	query := "restaurants in " + destination
	if containsFold(tripType, "Food") {
		query = "best " + query
	}
	if containsFold(tripType, "Luxury") || tier == budget.TierLuxury {
		query = "fine dining " + query
	}

	results := s.textSearch(ctx, "restaurants", query)
	results = filterByPriceLevel(results, tier)
	sortByScore(results, restaurantScore)
	return s.enrichTop(ctx, top(results, limit), detailTopRestaurants)
}

// SearchAttractions returns up to limit ranked attractions. The score weights
// review volume over rating so iconic landmarks outrank well-reviewed obscure
// spots. No price filter applies; attractions rarely report a price level.
func (s *Service) SearchAttractions(ctx context.Context, destination string, limit int) []Candidate {
	query := "top famous tourist attractions landmarks " + destination

	results := s.textSearch(ctx, "attractions", query)
	sortByScore(results, attractionScore)
	return s.enrichTop(ctx, top(results, limit), detailTopAttractions)
}

// SearchAccommodations returns up to limit ranked places to stay of the given
// type (Hotel, Hostel, ...), biased and filtered by the budget tier.
func (s *Service) SearchAccommodations(ctx context.Context, destination, accommodationType string, tier budget.Tier, limit int) []Candidate {
	query := accommodationType + " in " + destination
	switch tier {
	case budget.TierBudget:
		query = "budget affordable " + query
	case budget.TierLuxury:
		query = "luxury premium " + query
	}

	results := s.textSearch(ctx, "accommodations", query)
	results = filterByPriceLevel(results, tier)
	sortByScore(results, restaurantScore)
	return s.enrichTop(ctx, top(results, limit), detailTopHotels)
}

// textSearch runs the provider query and maps the raw results. Failures are
// absorbed here: the category search degrades to no data rather than failing
// the whole generation request.
func (s *Service) textSearch(ctx context.Context, category, query string) []Candidate {
	resp, err := s.api.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		s.log.Warnw("places text search failed", "category", category, "query", query, "error", err)
		return nil
	}

	candidates := make([]Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		c := Candidate{
			Name:        r.Name,
			Address:     r.FormattedAddress,
			Rating:      r.Rating,
			ReviewCount: r.UserRatingsTotal,
			PriceLevel:  r.PriceLevel,
			PlaceID:     r.PlaceID,
			PhotoURLs:   s.photoURLs(r.Photos),
		}
		if r.OpeningHours != nil {
			c.OpeningHours = &OpeningHours{
				OpenNow:     r.OpeningHours.OpenNow,
				WeekdayText: r.OpeningHours.WeekdayText,
			}
		}
		candidates = append(candidates, c)
	}
	return candidates
}

// enrichTop issues concurrent detail lookups for the first detailTop candidates.
// The remainder keep search-level data only. Detail failures leave the candidate
// unenriched; they never remove it.
func (s *Service) enrichTop(ctx context.Context, candidates []Candidate, detailTop int) []Candidate {
	if detailTop > len(candidates) {
		detailTop = len(candidates)
	}

	var wg sync.WaitGroup
	for i := 0; i < detailTop; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.fetchDetails(ctx, &candidates[i])
		}(i)
	}
	wg.Wait()
	return candidates
}

func (s *Service) fetchDetails(ctx context.Context, c *Candidate) {
	result, err := s.api.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: c.PlaceID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
			maps.PlaceDetailsFieldMaskInternationalPhoneNumber,
			maps.PlaceDetailsFieldMaskWebsite,
			maps.PlaceDetailsFieldMaskOpeningHours,
			maps.PlaceDetailsFieldMaskReviews,
			maps.PlaceDetailsFieldMaskPhotos,
		},
	})
	if err != nil {
		s.log.Warnw("place details lookup failed", "placeId", c.PlaceID, "error", err)
		return
	}

	if result.FormattedAddress != "" {
		c.Address = result.FormattedAddress
	}
	c.Phone = result.FormattedPhoneNumber
	if c.Phone == "" {
		c.Phone = result.InternationalPhoneNumber
	}
	c.Website = result.Website
	if result.OpeningHours != nil {
		c.OpeningHours = &OpeningHours{
			OpenNow:     result.OpeningHours.OpenNow,
			WeekdayText: result.OpeningHours.WeekdayText,
		}
	}
	if urls := s.photoURLs(result.Photos); len(urls) > 0 {
		c.PhotoURLs = urls
	}

	for i, r := range result.Reviews {
		if i >= maxReviewsPerPlace {
			break
		}
		c.Reviews = append(c.Reviews, Review{
			Author:       r.AuthorName,
			Rating:       r.Rating,
			Text:         r.Text,
			RelativeTime: r.RelativeTimeDescription,
		})
	}
}

// photoURLs builds fetchable photo URLs from opaque photo references.
func (s *Service) photoURLs(photos []maps.Photo) []string {
	if s.apiKey == "" || len(photos) == 0 {
		return nil
	}
	n := len(photos)
	if n > maxPhotoURLs {
		n = maxPhotoURLs
	}
	urls := make([]string, 0, n)
	for _, p := range photos[:n] {
		urls = append(urls, fmt.Sprintf(
			"https://maps.googleapis.com/maps/api/place/photo?maxwidth=800&photo_reference=%s&key=%s",
			p.PhotoReference, s.apiKey))
	}
	return urls
}

// filterByPriceLevel drops candidates whose reported price level falls outside
// the tier's accepted range. Candidates with no price level are always kept.
func filterByPriceLevel(candidates []Candidate, tier budget.Tier) []Candidate {
	accepted := tier.AcceptedPriceLevels()
	kept := candidates[:0]
	for _, c := range candidates {
		if c.PriceLevel == 0 || containsInt(accepted, c.PriceLevel) {
			kept = append(kept, c)
		}
	}
	return kept
}

// restaurantScore ranks restaurants and hotels: rating weighted by review volume.
func restaurantScore(c Candidate) float64 {
	return float64(c.Rating) * math.Log(float64(c.ReviewCount)+1)
}

// attractionScore weights popularity over rating so that landmarks with huge
// review counts surface first.
func attractionScore(c Candidate) float64 {
	return float64(c.Rating)*0.3 + math.Log(float64(c.ReviewCount)+1)*0.7
}

func sortByScore(candidates []Candidate, score func(Candidate) float64) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})
}

func top(candidates []Candidate, n int) []Candidate {
	if n > 0 && len(candidates) > n {
		return candidates[:n]
	}
	return candidates
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsFold(xs []string, x string) bool {
	for _, v := range xs {
		if strings.EqualFold(v, x) {
			return true
		}
	}
	return false
}
