// README: Generation-credit model and quota constants.
package credits

import "errors"

// ErrInsufficientCredits is returned when a user cannot cover the cost of a
// generation for the current month.
var ErrInsufficientCredits = errors.New("insufficient credits")

// MonthlyCredits is the allowance granted to each user per calendar month.
const MonthlyCredits = 100

// TripGenerationCost is the number of credits one itinerary generation consumes.
const TripGenerationCost = 10
