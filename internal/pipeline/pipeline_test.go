package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"tripforge/internal/agents"
	"tripforge/internal/budget"
	"tripforge/internal/itinerary"
	"tripforge/internal/places"
)

// stubSearcher returns fixed candidate lists and counts calls.
type stubSearcher struct {
	mu          sync.Mutex
	restaurants []places.Candidate
	attractions []places.Candidate
	hotels      []places.Candidate
	calls       int
	lastTier    budget.Tier
}

func (s *stubSearcher) SearchRestaurants(_ context.Context, _ string, _ []string, tier budget.Tier, _ int) []places.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastTier = tier
	return s.restaurants
}

func (s *stubSearcher) SearchAttractions(_ context.Context, _ string, _ int) []places.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.attractions
}

func (s *stubSearcher) SearchAccommodations(_ context.Context, _ string, _ string, _ budget.Tier, _ int) []places.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.hotels
}

type stubHotelAgent struct {
	mu    sync.Mutex
	calls int
	last  agents.Constraints
	doc   *agents.HotelDoc
	err   error
}

func (a *stubHotelAgent) Recommend(_ context.Context, c agents.Constraints, _ []places.Candidate) (*agents.HotelDoc, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	a.last = c
	return a.doc, a.err
}

type stubRestaurantAgent struct {
	mu    sync.Mutex
	calls int
	doc   *agents.RestaurantDoc
	err   error
}

func (a *stubRestaurantAgent) Recommend(_ context.Context, _ agents.Constraints, _ []places.Candidate) (*agents.RestaurantDoc, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.doc, a.err
}

type stubAttractionAgent struct {
	mu    sync.Mutex
	calls int
	doc   *agents.AttractionDoc
	err   error
}

func (a *stubAttractionAgent) Recommend(_ context.Context, _ agents.Constraints, _ []places.Candidate) (*agents.AttractionDoc, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.doc, a.err
}

type stubMaster struct {
	mu    sync.Mutex
	calls int
	it    *itinerary.Itinerary
	err   error
}

func (m *stubMaster) Synthesize(_ context.Context, _ agents.Constraints, _ *agents.HotelDoc, _ *agents.RestaurantDoc, _ *agents.AttractionDoc, _ agents.TripDetails) (*itinerary.Itinerary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.it, m.err
}

type fixture struct {
	searcher   *stubSearcher
	hotel      *stubHotelAgent
	restaurant *stubRestaurantAgent
	attraction *stubAttractionAgent
	master     *stubMaster
	svc        *Service
}

func newFixture() *fixture {
	f := &fixture{
		searcher: &stubSearcher{
			restaurants: []places.Candidate{{Name: "Café de Flore", PlaceID: "flore", Website: "https://cafedeflore.fr"}},
			attractions: []places.Candidate{{Name: "The Eiffel Tower", PlaceID: "eiffel", Phone: "+33 892 70 12 39"}},
			hotels:      []places.Candidate{{Name: "Hôtel Le Littré", PlaceID: "littre"}},
		},
		hotel:      &stubHotelAgent{doc: &agents.HotelDoc{}},
		restaurant: &stubRestaurantAgent{doc: &agents.RestaurantDoc{}},
		attraction: &stubAttractionAgent{doc: &agents.AttractionDoc{}},
		master: &stubMaster{it: &itinerary.Itinerary{
			Destination: "Paris, France",
			Days: []itinerary.DayPlan{{
				Day:        1,
				Activities: []itinerary.Activity{{TimeOfDay: "Morning", Activity: "Eiffel Tower"}},
				Meals:      []itinerary.Meal{{Type: "Breakfast", Restaurant: "Café de Flore"}},
			}},
		}},
	}
	f.svc = NewService(f.searcher, f.hotel, f.restaurant, f.attraction, f.master,
		Limits{Restaurants: 25, Attractions: 35, Hotels: 20}, zap.NewNop().Sugar())
	return f
}

func TestGenerateMissingDestination(t *testing.T) {
	for _, dest := range []string{"", "   "} {
		f := newFixture()
		_, err := f.svc.Generate(context.Background(), TripRequest{Destination: dest})
		if !errors.Is(err, ErrMissingDestination) {
			t.Errorf("destination %q: got %v, want ErrMissingDestination", dest, err)
		}
		if f.searcher.calls != 0 {
			t.Errorf("destination %q: searches issued despite validation failure", dest)
		}
	}
}

func TestGenerateNoPlacesAbortsBeforeAgents(t *testing.T) {
	f := newFixture()
	f.searcher.restaurants = nil
	f.searcher.attractions = nil
	f.searcher.hotels = nil

	_, err := f.svc.Generate(context.Background(), TripRequest{Destination: "Atlantis"})
	if !errors.Is(err, ErrNoPlaces) {
		t.Fatalf("got %v, want ErrNoPlaces", err)
	}
	if f.hotel.calls+f.restaurant.calls+f.attraction.calls+f.master.calls != 0 {
		t.Error("agents were invoked despite empty search results")
	}
}

func TestGenerateAppliesDefaults(t *testing.T) {
	f := newFixture()
	if _, err := f.svc.Generate(context.Background(), TripRequest{Destination: "Paris, France"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	c := f.hotel.last
	if c.Days != 3 || c.TotalBudget != 1000 || c.GroupType != "Solo" {
		t.Errorf("defaults not applied: %+v", c)
	}
	// $1000 over 3 days is ~$333/day: Luxury.
	if c.Budget.Tier != budget.TierLuxury {
		t.Errorf("tier = %s, want Luxury", c.Budget.Tier)
	}
}

func TestGenerateParsesStringFields(t *testing.T) {
	f := newFixture()
	req := TripRequest{Destination: "Paris, France", Budget: "900", Days: "3", GroupType: "Family"}
	if _, err := f.svc.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	c := f.hotel.last
	if c.Budget.PerDay != 300 || c.Budget.Tier != budget.TierLuxury {
		t.Errorf("900/3 must classify as Luxury at exactly 300/day, got %+v", c.Budget)
	}
	if f.searcher.lastTier != budget.TierLuxury {
		t.Errorf("search tier = %s, want Luxury", f.searcher.lastTier)
	}
}

func TestGenerateUnparseableNumbersFallBack(t *testing.T) {
	f := newFixture()
	req := TripRequest{Destination: "Paris", Budget: "lots", Days: "zero"}
	if _, err := f.svc.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if c := f.hotel.last; c.Days != 3 || c.TotalBudget != 1000 {
		t.Errorf("expected defaults for unparseable fields, got days=%d budget=%v", c.Days, c.TotalBudget)
	}
}

func TestGenerateAgentFailureWrapsStage(t *testing.T) {
	f := newFixture()
	f.restaurant.err = errors.New("response failed schema validation")

	_, err := f.svc.Generate(context.Background(), TripRequest{Destination: "Paris"})
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("got %T, want *StageError", err)
	}
	if stageErr.Stage != "restaurant agent" {
		t.Errorf("stage = %q, want restaurant agent", stageErr.Stage)
	}
	if f.master.calls != 0 {
		t.Error("master planner ran despite specialist failure")
	}
}

func TestGenerateMasterFailureWrapsStage(t *testing.T) {
	f := newFixture()
	f.master.err = errors.New("itinerary covers 2 days, expected 3")

	_, err := f.svc.Generate(context.Background(), TripRequest{Destination: "Paris"})
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "master planner" {
		t.Fatalf("got %v, want master planner stage error", err)
	}
}

// TestGenerateEnrichesResult: the final itinerary carries provider detail for
// names matching the original candidates.
func TestGenerateEnrichesResult(t *testing.T) {
	f := newFixture()
	it, err := f.svc.Generate(context.Background(), TripRequest{Destination: "Paris, France"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := it.Days[0].Activities[0].Phone; got != "+33 892 70 12 39" {
		t.Errorf("activity not enriched, phone = %q", got)
	}
	if got := it.Days[0].Meals[0].Website; got != "https://cafedeflore.fr" {
		t.Errorf("meal not enriched, website = %q", got)
	}
}

// TestGeneratePartialSearchResultsStillRun: one non-empty category is enough to
// proceed; agents receive whatever each search returned.
func TestGeneratePartialSearchResultsStillRun(t *testing.T) {
	f := newFixture()
	f.searcher.restaurants = nil
	f.searcher.hotels = nil

	if _, err := f.svc.Generate(context.Background(), TripRequest{Destination: "Paris"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if f.hotel.calls != 1 || f.restaurant.calls != 1 || f.attraction.calls != 1 {
		t.Error("all three agents should still run on partial search results")
	}
}
