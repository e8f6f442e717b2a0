// README: Pipeline orchestrator; validate → classify → fetch places → specialist agents → master planner → enrich.
package pipeline

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tripforge/internal/agents"
	"tripforge/internal/budget"
	"tripforge/internal/itinerary"
	"tripforge/internal/places"
)

// PlaceSearcher is the places adapter surface the pipeline consumes. All
// searches are best-effort and degrade to an empty slice on provider failure.
type PlaceSearcher interface {
	SearchRestaurants(ctx context.Context, destination string, tripType []string, tier budget.Tier, limit int) []places.Candidate
	SearchAttractions(ctx context.Context, destination string, limit int) []places.Candidate
	SearchAccommodations(ctx context.Context, destination, accommodationType string, tier budget.Tier, limit int) []places.Candidate
}

type HotelRecommender interface {
	Recommend(ctx context.Context, c agents.Constraints, hotels []places.Candidate) (*agents.HotelDoc, error)
}

type RestaurantRecommender interface {
	Recommend(ctx context.Context, c agents.Constraints, restaurants []places.Candidate) (*agents.RestaurantDoc, error)
}

type AttractionRecommender interface {
	Recommend(ctx context.Context, c agents.Constraints, attractions []places.Candidate) (*agents.AttractionDoc, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, c agents.Constraints, hotels *agents.HotelDoc, restaurants *agents.RestaurantDoc, attractions *agents.AttractionDoc, details agents.TripDetails) (*itinerary.Itinerary, error)
}

// Limits sets the per-category candidate list sizes handed to the agents.
type Limits struct {
	Restaurants int
	Attractions int
	Hotels      int
}

// Service sequences the generation pipeline for one request.
type Service struct {
	searcher   PlaceSearcher
	hotel      HotelRecommender
	restaurant RestaurantRecommender
	attraction AttractionRecommender
	master     Synthesizer
	limits     Limits
	log        *zap.SugaredLogger
}

func NewService(searcher PlaceSearcher, hotel HotelRecommender, restaurant RestaurantRecommender, attraction AttractionRecommender, master Synthesizer, limits Limits, log *zap.SugaredLogger) *Service {
	return &Service{
		searcher:   searcher,
		hotel:      hotel,
		restaurant: restaurant,
		attraction: attraction,
		master:     master,
		limits:     limits,
		log:        log,
	}
}

// Generate runs one itinerary-generation request end to end and returns the
// enriched itinerary. Errors are one of ErrMissingDestination, ErrNoPlaces, or
// a *StageError wrapping a generation failure.
func (s *Service) Generate(ctx context.Context, req TripRequest) (*itinerary.Itinerary, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, ErrMissingDestination
	}

	totalBudget := parseFloatOr(req.Budget, defaultBudget)
	days := parseDaysOr(req.Days, defaultDays)
	groupType := orDefault(req.GroupType, defaultGroupType)
	accommodationType := orDefault(req.Accommodation, defaultAccommodation)
	tripType := req.TripType
	if tripType == nil {
		tripType = []string{}
	}

	b := budget.Classify(totalBudget, days)
	s.log.Infow("starting trip generation",
		"destination", destination, "days", days, "budget", totalBudget,
		"tier", b.Tier, "perDay", b.PerDay)

	restaurants, attractions, hotels := s.fetchPlaces(ctx, destination, tripType, accommodationType, b.Tier)
	s.log.Infow("places fetched",
		"restaurants", len(restaurants), "attractions", len(attractions), "hotels", len(hotels))

	if len(restaurants) == 0 && len(attractions) == 0 && len(hotels) == 0 {
		return nil, ErrNoPlaces
	}

	constraints := agents.Constraints{
		Destination: destination,
		Days:        days,
		TotalBudget: totalBudget,
		Budget:      b,
		GroupType:   groupType,
		TripType:    tripType,
	}

	var (
		hotelDoc      *agents.HotelDoc
		restaurantDoc *agents.RestaurantDoc
		attractionDoc *agents.AttractionDoc
	)

	// The three specialists are independent; run them concurrently and join
	// before the master planner. Any failure aborts the request.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := s.hotel.Recommend(gctx, constraints, hotels)
		if err != nil {
			return &StageError{Stage: "hotel agent", Err: err}
		}
		hotelDoc = doc
		return nil
	})
	g.Go(func() error {
		doc, err := s.restaurant.Recommend(gctx, constraints, restaurants)
		if err != nil {
			return &StageError{Stage: "restaurant agent", Err: err}
		}
		restaurantDoc = doc
		return nil
	})
	g.Go(func() error {
		doc, err := s.attraction.Recommend(gctx, constraints, attractions)
		if err != nil {
			return &StageError{Stage: "attraction agent", Err: err}
		}
		attractionDoc = doc
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.log.Infow("specialist agents complete",
		"hotelOptions", len(hotelDoc.AccommodationOptions),
		"restaurantDays", len(restaurantDoc.RestaurantsByDay),
		"attractionDays", len(attractionDoc.AttractionsByDay))

	details := agents.TripDetails{
		Destination:          destination,
		StartingPoint:        req.StartingPoint,
		Budget:               orDefault(req.Budget, strconv.Itoa(defaultBudget)),
		Days:                 strconv.Itoa(days),
		NumberOfPeople:       orDefault(req.NumberOfPeople, defaultPeople),
		GroupType:            groupType,
		TripType:             tripType,
		Accommodation:        req.Accommodation,
		Transportation:       req.Transportation,
		PrePlannedActivities: req.PrePlannedActivities,
		Description:          orDefault(req.TripDescription, defaultDescription),
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
	}

	it, err := s.master.Synthesize(ctx, constraints, hotelDoc, restaurantDoc, attractionDoc, details)
	if err != nil {
		return nil, &StageError{Stage: "master planner", Err: err}
	}

	itinerary.Enrich(it, restaurants, attractions, hotels)
	s.log.Infow("itinerary generated", "destination", destination, "days", len(it.Days))
	return it, nil
}

// fetchPlaces issues the three category searches concurrently and joins on all
// of them. A provider failure in one category does not cancel the others; the
// adapter already degrades each failed search to an empty slice.
func (s *Service) fetchPlaces(ctx context.Context, destination string, tripType []string, accommodationType string, tier budget.Tier) (restaurants, attractions, hotels []places.Candidate) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		restaurants = s.searcher.SearchRestaurants(ctx, destination, tripType, tier, s.limits.Restaurants)
	}()
	go func() {
		defer wg.Done()
		attractions = s.searcher.SearchAttractions(ctx, destination, s.limits.Attractions)
	}()
	go func() {
		defer wg.Done()
		hotels = s.searcher.SearchAccommodations(ctx, destination, accommodationType, tier, s.limits.Hotels)
	}()
	wg.Wait()
	return restaurants, attractions, hotels
}

func parseFloatOr(s string, def float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && v >= 0 {
		return v
	}
	return def
}

// parseDaysOr guards the classifier's days >= 1 contract.
func parseDaysOr(s string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v >= 1 {
		return v
	}
	return def
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
