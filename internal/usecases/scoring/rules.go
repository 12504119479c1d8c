package scoring

import (
	"math"

	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/taxonomy"
)

// Benefit and inclusion constants of the product heuristics. Inclusion
// thresholds are not normalized across rules; that asymmetry is part of the
// agreed heuristic set, not an accident.
const (
	// TravelCashbackRate is shared with the notification renderer, which
	// recomputes the travel benefit inline in its copy text. The two values
	// must stay identical.
	TravelCashbackRate = 0.04

	travelBenefitThreshold = 1000

	premiumCashbackRate     = 0.02
	premiumBalanceThreshold = 500000
	premiumBalanceBoost     = 1.5

	creditCashbackRate     = 0.10
	creditBenefitThreshold = 2000

	fxBenefit = 50000

	depositBalanceThreshold = 100000
	depositHighTierCutoff   = 1000000
	depositAnnualRate       = 0.15
	depositHighTierBoost    = 1.2

	investBalanceThreshold = 500000
	investAnnualRate       = 0.20

	goldBenefit = 100000
)

// rule evaluates one product heuristic against the metrics. ok reports
// whether the candidate passed the rule's own inclusion condition.
type rule func(m *domain.MetricsBundle, tax *taxonomy.Taxonomy) (domain.ProductCandidate, bool)

// ruleTable fixes the evaluation order. Ranking re-sorts by benefit, so the
// order only decides tie-breaks between equal benefits.
var ruleTable = []rule{
	travelCard,
	premiumCard,
	creditCard,
	currencyExchange,
	deposit,
	investments,
	goldBars,
}

func travelCard(m *domain.MetricsBundle, _ *taxonomy.Taxonomy) (domain.ProductCandidate, bool) {
	benefit := m.TravelSpending * TravelCashbackRate

	confidence := 0.0
	if m.TotalSpending > 0 {
		confidence = math.Min(95, 50+m.TravelSpending/m.TotalSpending*100)
	}

	return domain.ProductCandidate{
		Product:    domain.ProductTravelCard,
		Benefit:    benefit,
		Confidence: confidence,
	}, benefit > travelBenefitThreshold
}

func premiumCard(m *domain.MetricsBundle, _ *taxonomy.Taxonomy) (domain.ProductCandidate, bool) {
	benefit := (m.TotalSpending + m.RestaurantSpending + m.LuxurySpending) * premiumCashbackRate

	confidence := 60.0
	if m.AvgMonthlyBalance > 0 {
		confidence = math.Min(92, 60+m.AvgMonthlyBalance/premiumBalanceThreshold*30)
	}

	if m.AvgMonthlyBalance <= premiumBalanceThreshold {
		return domain.ProductCandidate{}, false
	}

	return domain.ProductCandidate{
		Product:    domain.ProductPremiumCard,
		Benefit:    benefit * premiumBalanceBoost,
		Confidence: confidence,
	}, true
}

func creditCard(m *domain.MetricsBundle, tax *taxonomy.Taxonomy) (domain.ProductCandidate, bool) {
	benefit := m.OnlineSpending * creditCashbackRate

	// Top-category add-on: each top category maps to its group's aggregate
	// through the taxonomy. Categories outside every tracked group add
	// nothing; the heuristic knowingly undercounts them.
	var topSpending float64
	for _, category := range m.TopCategories {
		if group, ok := tax.GroupOf(category); ok {
			topSpending += m.GroupSpending(group)
		}
	}
	benefit += topSpending * creditCashbackRate

	confidence := 70.0
	if m.TotalSpending > 0 {
		confidence = math.Min(88, 70+m.OnlineSpending/m.TotalSpending*50)
	}

	return domain.ProductCandidate{
		Product:    domain.ProductCreditCard,
		Benefit:    benefit,
		Confidence: confidence,
	}, benefit > creditBenefitThreshold
}

func currencyExchange(m *domain.MetricsBundle, _ *taxonomy.Taxonomy) (domain.ProductCandidate, bool) {
	return domain.ProductCandidate{
		Product:    domain.ProductCurrencyExchange,
		Benefit:    fxBenefit,
		Confidence: 85,
	}, m.HasFX
}

func deposit(m *domain.MetricsBundle, _ *taxonomy.Taxonomy) (domain.ProductCandidate, bool) {
	if m.AvgMonthlyBalance <= depositBalanceThreshold {
		return domain.ProductCandidate{}, false
	}

	// Interest over the observation window at the annual rate.
	benefit := m.AvgMonthlyBalance * depositAnnualRate / 12 * domain.WindowMonths

	if m.AvgMonthlyBalance > depositHighTierCutoff {
		return domain.ProductCandidate{
			Product:    domain.ProductSavingsDeposit,
			Benefit:    benefit * depositHighTierBoost,
			Confidence: 90,
		}, true
	}

	return domain.ProductCandidate{
		Product:    domain.ProductAccumulativeDeposit,
		Benefit:    benefit,
		Confidence: 85,
	}, true
}

func investments(m *domain.MetricsBundle, _ *taxonomy.Taxonomy) (domain.ProductCandidate, bool) {
	if !m.HasInvestments && m.AvgMonthlyBalance <= investBalanceThreshold {
		return domain.ProductCandidate{}, false
	}

	return domain.ProductCandidate{
		Product:    domain.ProductInvestments,
		Benefit:    m.AvgMonthlyBalance * investAnnualRate / 12 * domain.WindowMonths,
		Confidence: 82,
	}, true
}

func goldBars(m *domain.MetricsBundle, _ *taxonomy.Taxonomy) (domain.ProductCandidate, bool) {
	return domain.ProductCandidate{
		Product:    domain.ProductGoldBars,
		Benefit:    goldBenefit,
		Confidence: 95,
	}, m.HasGold
}
