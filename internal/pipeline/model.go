// README: Pipeline request shape, defaults, and error taxonomy.
package pipeline

import "errors"

// TripRequest mirrors the inbound generation body. Destination is the only
// mandatory field; everything else falls back to a default.
type TripRequest struct {
	Destination          string   `json:"destination"`
	StartingPoint        string   `json:"startingPoint,omitempty"`
	Budget               string   `json:"budget,omitempty"`
	Days                 string   `json:"days,omitempty"`
	StartDate            string   `json:"startDate,omitempty"`
	EndDate              string   `json:"endDate,omitempty"`
	NumberOfPeople       string   `json:"numberOfPeople,omitempty"`
	GroupType            string   `json:"groupType,omitempty"`
	TripType             []string `json:"tripType,omitempty"`
	Accommodation        string   `json:"accommodation,omitempty"`
	Transportation       string   `json:"transportation,omitempty"`
	PrePlannedActivities string   `json:"prePlannedActivities,omitempty"`
	TripDescription      string   `json:"tripDescription,omitempty"`
}

// Request defaults applied before any downstream call.
const (
	defaultBudget        = 1000
	defaultDays          = 3
	defaultPeople        = "2"
	defaultGroupType     = "Solo"
	defaultDescription   = "A relaxing and enjoyable trip"
	defaultAccommodation = "Hotel"
)

// ErrMissingDestination aborts the request before any downstream call is made.
var ErrMissingDestination = errors.New("destination is required")

// ErrNoPlaces aborts the request after the fetch stage when all three category
// searches come back empty, before any generation cost is incurred.
var ErrNoPlaces = errors.New("no places found for this destination")

// StageError wraps a generation failure with the pipeline stage that produced
// it. There is no retry; any stage failure aborts the whole request.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }
