package domain

// WindowMonths is the length of the observation window all records cover.
const WindowMonths = 3

// CategoryGroup identifies one of the fixed spending buckets tracked by the
// metrics. Groups are disjoint subsets of the raw category taxonomy.
type CategoryGroup string

const (
	GroupTravel     CategoryGroup = "travel"
	GroupRestaurant CategoryGroup = "restaurant"
	GroupOnline     CategoryGroup = "online"
	GroupLuxury     CategoryGroup = "luxury"
)

// MetricsBundle holds the behavioral aggregates of one client over the
// observation window. Recomputed fresh on every analysis; never cached.
type MetricsBundle struct {
	TotalSpending      float64  `json:"total_spending"`
	TravelSpending     float64  `json:"travel_spending"`
	RestaurantSpending float64  `json:"restaurant_spending"`
	OnlineSpending     float64  `json:"online_spending"`
	LuxurySpending     float64  `json:"luxury_spending"`
	HasFX              bool     `json:"has_fx"`
	HasGold            bool     `json:"has_gold"`
	HasInvestments     bool     `json:"has_investments"`
	ATMWithdrawals     float64  `json:"atm_withdrawals"`
	AvgMonthlyBalance  float64  `json:"avg_monthly_balance"`
	TopCategories      []string `json:"top_categories"`
}

// GroupSpending returns the precomputed aggregate for a category group.
// Unknown groups yield zero.
func (m *MetricsBundle) GroupSpending(group CategoryGroup) float64 {
	switch group {
	case GroupTravel:
		return m.TravelSpending
	case GroupRestaurant:
		return m.RestaurantSpending
	case GroupOnline:
		return m.OnlineSpending
	case GroupLuxury:
		return m.LuxurySpending
	}
	return 0
}
