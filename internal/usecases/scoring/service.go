// Package scoring evaluates the fixed product-eligibility heuristics
// against a client's metrics and ranks the resulting candidates.
package scoring

import (
	"math"
	"sort"

	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/taxonomy"
)

// MaxCandidates caps the ranked list; callers needing fewer simply slice.
const MaxCandidates = 4

type Scorer interface {
	// Score returns the eligible candidates ordered most-beneficial first.
	// An empty list is a valid result; ErrInvalidMetrics is not.
	Score(metrics domain.MetricsBundle) ([]domain.ProductCandidate, error)
}

type Service struct {
	taxonomy *taxonomy.Taxonomy
}

func NewService(tax *taxonomy.Taxonomy) Scorer {
	return &Service{taxonomy: tax}
}

func (s *Service) Score(metrics domain.MetricsBundle) ([]domain.ProductCandidate, error) {
	if err := validate(&metrics); err != nil {
		return nil, err
	}

	candidates := make([]domain.ProductCandidate, 0, len(ruleTable))
	for _, evaluate := range ruleTable {
		if candidate, ok := evaluate(&metrics, s.taxonomy); ok {
			candidates = append(candidates, candidate)
		}
	}

	// Benefit descending; the stable sort keeps rule-table order on ties so
	// identical bundles always rank identically.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Benefit > candidates[j].Benefit
	})

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	return candidates, nil
}

func validate(m *domain.MetricsBundle) error {
	sums := []float64{
		m.TotalSpending,
		m.TravelSpending,
		m.RestaurantSpending,
		m.OnlineSpending,
		m.LuxurySpending,
		m.ATMWithdrawals,
	}
	for _, v := range sums {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidMetrics
		}
	}
	// The balance may legitimately be negative, but never non-finite.
	if math.IsNaN(m.AvgMonthlyBalance) || math.IsInf(m.AvgMonthlyBalance, 0) {
		return ErrInvalidMetrics
	}
	return nil
}
