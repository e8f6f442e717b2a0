package budget

import "testing"

func TestClassifyTiers(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		days     int
		wantTier Tier
		wantPer  float64
	}{
		{"low budget", 150, 3, TierBudget, 50},
		{"just under budget boundary", 299, 3, TierBudget, 99.66666666666667},
		{"exactly 100 per day is moderate", 300, 3, TierModerate, 100},
		{"mid range", 600, 3, TierModerate, 200},
		// 900 over 3 days is exactly 300/day; 300 is NOT < 300, so Luxury.
		{"exactly 300 per day is luxury", 900, 3, TierLuxury, 300},
		{"high budget", 5000, 3, TierLuxury, 1666.6666666666667},
		{"zero budget", 0, 5, TierBudget, 0},
		{"single day", 250, 1, TierModerate, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.total, tt.days)
			if got.Tier != tt.wantTier {
				t.Errorf("Classify(%v, %d).Tier = %s, want %s", tt.total, tt.days, got.Tier, tt.wantTier)
			}
			if got.PerDay != tt.wantPer {
				t.Errorf("Classify(%v, %d).PerDay = %v, want %v", tt.total, tt.days, got.PerDay, tt.wantPer)
			}
		})
	}
}

func TestClassifySubBudgets(t *testing.T) {
	b := Classify(900, 3)
	if b.HotelPerNight != 120 {
		t.Errorf("HotelPerNight = %v, want 120", b.HotelPerNight)
	}
	if b.MealBudget != 40 {
		t.Errorf("MealBudget = %v, want 40", b.MealBudget)
	}
}

// TestTierMonotonic verifies the tier never decreases as per-day budget grows.
func TestTierMonotonic(t *testing.T) {
	rank := map[Tier]int{TierBudget: 0, TierModerate: 1, TierLuxury: 2}
	prev := -1
	for perDay := 0; perDay <= 600; perDay += 10 {
		b := Classify(float64(perDay), 1)
		if rank[b.Tier] < prev {
			t.Fatalf("tier rank decreased at perDay=%d: %s", perDay, b.Tier)
		}
		prev = rank[b.Tier]
	}
}

func TestAcceptedPriceLevels(t *testing.T) {
	tests := []struct {
		tier Tier
		want []int
	}{
		{TierBudget, []int{1, 2}},
		{TierModerate, []int{2, 3}},
		{TierLuxury, []int{3, 4}},
	}
	for _, tt := range tests {
		got := tt.tier.AcceptedPriceLevels()
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %v, want %v", tt.tier, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: got %v, want %v", tt.tier, got, tt.want)
			}
		}
	}
}
