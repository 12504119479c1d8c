// Package analyzing derives the per-client behavioral metrics the scoring
// rules consume.
package analyzing

import (
	"sort"

	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/taxonomy"
	"github.com/daniyar-b/bank-recommender-api/pkg/utils"
)

// Extractor computes a fresh MetricsBundle from raw records. Bundles are
// never cached; recomputation is the correctness baseline.
type Extractor interface {
	Extract(transactions []domain.TransactionRecord, transfers []domain.TransferRecord) domain.MetricsBundle
}

type Service struct {
	taxonomy *taxonomy.Taxonomy
}

func NewService(tax *taxonomy.Taxonomy) Extractor {
	return &Service{taxonomy: tax}
}

func (s *Service) Extract(transactions []domain.TransactionRecord, transfers []domain.TransferRecord) domain.MetricsBundle {
	metrics := domain.MetricsBundle{}

	// Per-category sums, keeping first-appearance order for stable ties.
	categoryTotals := make(map[string]float64)
	categoryOrder := make([]string, 0)
	groupTotals := make(map[domain.CategoryGroup]float64)

	var totalSpending float64
	for _, t := range transactions {
		totalSpending += t.Amount

		if _, seen := categoryTotals[t.Category]; !seen {
			categoryOrder = append(categoryOrder, t.Category)
		}
		categoryTotals[t.Category] += t.Amount

		if group, ok := s.taxonomy.GroupOf(t.Category); ok {
			groupTotals[group] += t.Amount
		}
	}

	metrics.TotalSpending = utils.RoundWithTwoDecimalPlace(totalSpending)
	metrics.TravelSpending = utils.RoundWithTwoDecimalPlace(groupTotals[domain.GroupTravel])
	metrics.RestaurantSpending = utils.RoundWithTwoDecimalPlace(groupTotals[domain.GroupRestaurant])
	metrics.OnlineSpending = utils.RoundWithTwoDecimalPlace(groupTotals[domain.GroupOnline])
	metrics.LuxurySpending = utils.RoundWithTwoDecimalPlace(groupTotals[domain.GroupLuxury])
	metrics.TopCategories = topCategories(categoryOrder, categoryTotals, 3)

	// Transfer-derived metrics. The flags and the ATM sum only look at
	// outgoing transfers; an empty partition yields zeroes, not an error.
	var totalIn, totalOut, atmWithdrawals float64
	for _, t := range transfers {
		switch t.Direction {
		case domain.TransferIn:
			totalIn += t.Amount
		case domain.TransferOut:
			totalOut += t.Amount

			switch {
			case s.taxonomy.IsFX(t.Type):
				metrics.HasFX = true
			case s.taxonomy.IsGold(t.Type):
				metrics.HasGold = true
			case s.taxonomy.IsInvestment(t.Type):
				metrics.HasInvestments = true
			case t.Type == domain.TransferTypeATMWithdrawal:
				atmWithdrawals += t.Amount
			}
		}
	}

	metrics.ATMWithdrawals = utils.RoundWithTwoDecimalPlace(atmWithdrawals)
	// Net flow over the window divided by its length. May be negative.
	metrics.AvgMonthlyBalance = utils.RoundWithTwoDecimalPlace((totalIn - totalOut) / domain.WindowMonths)

	return metrics
}

// topCategories ranks categories by summed amount descending and keeps the
// first n. Ties keep the first-appearance order of the input.
func topCategories(order []string, totals map[string]float64, n int) []string {
	ranked := make([]string, len(order))
	copy(ranked, order)

	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i]] > totals[ranked[j]]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
