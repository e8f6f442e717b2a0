// README: Pure budget classifier; maps total budget and trip length to a price tier and sub-budgets.
package budget

// Tier is the spending class derived from budget per day.
type Tier string

const (
	TierBudget   Tier = "Budget"
	TierModerate Tier = "Moderate"
	TierLuxury   Tier = "Luxury"
)

// Breakdown carries the per-day budget math shared by the places adapter and the agents.
type Breakdown struct {
	Tier          Tier
	PerDay        float64
	HotelPerNight float64 // 40% of the daily budget
	MealBudget    float64 // 40% of the daily budget split across 3 meals
}

// Classify derives the tier and per-category sub-budgets from a total budget and
// trip length. days must be >= 1; guarding that is the caller's contract.
//
// Tier boundaries are strict less-than at both ends on purpose: exactly $300/day
// classifies as Luxury, not Moderate.
func Classify(totalBudget float64, days int) Breakdown {
	perDay := totalBudget / float64(days)

	var tier Tier
	switch {
	case perDay < 100:
		tier = TierBudget
	case perDay < 300:
		tier = TierModerate
	default:
		tier = TierLuxury
	}

	return Breakdown{
		Tier:          tier,
		PerDay:        perDay,
		HotelPerNight: perDay * 0.4,
		MealBudget:    perDay * 0.4 / 3,
	}
}

// AcceptedPriceLevels returns the provider price levels (1-4) admitted for the tier.
func (t Tier) AcceptedPriceLevels() []int {
	switch t {
	case TierBudget:
		return []int{1, 2}
	case TierModerate:
		return []int{2, 3}
	case TierLuxury:
		return []int{3, 4}
	default:
		return []int{1, 2, 3, 4}
	}
}
