package notifying

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/daniyar-b/bank-recommender-api/internal/domain"
)

func TestRender_AllProductsFitTheChannel(t *testing.T) {
	renderer := NewService()
	metrics := domain.MetricsBundle{
		TravelSpending: 94500.5,
		TopCategories:  []string{"Taxi", "Cafes & Restaurants", "Travel"},
	}

	products := []domain.Product{
		domain.ProductTravelCard,
		domain.ProductPremiumCard,
		domain.ProductCreditCard,
		domain.ProductCurrencyExchange,
		domain.ProductSavingsDeposit,
		domain.ProductAccumulativeDeposit,
		domain.ProductInvestments,
		domain.ProductGoldBars,
		domain.ProductCashLoan,
	}

	for _, product := range products {
		t.Run(string(product), func(t *testing.T) {
			text := renderer.Render("Aigerim", product, metrics)

			assert.NotEmpty(t, text)
			assert.True(t, strings.HasPrefix(text, "Aigerim, "))
			assert.LessOrEqual(t, utf8.RuneCountInString(text), MaxLength)
		})
	}
}

func TestRender_TravelBenefitMatchesScoring(t *testing.T) {
	metrics := domain.MetricsBundle{TravelSpending: 30000}

	text := NewService().Render("Dana", domain.ProductTravelCard, metrics)

	// 30000 * 0.04, the same figure the scorer reports as the benefit.
	assert.Contains(t, text, "30000 ₸")
	assert.Contains(t, text, "1200 ₸")
}

func TestRender_CreditCardJoinsAtMostTwoCategories(t *testing.T) {
	renderer := NewService()

	tests := []struct {
		name          string
		topCategories []string
		want          string
	}{
		{"three categories", []string{"Taxi", "Travel", "Hotels"}, "Taxi, Travel"},
		{"one category", []string{"Groceries"}, "Groceries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := domain.MetricsBundle{TopCategories: tt.topCategories}

			text := renderer.Render("Dana", domain.ProductCreditCard, metrics)

			assert.Contains(t, text, "your top categories are "+tt.want+".")
			assert.NotContains(t, text, "Hotels")
		})
	}
}

func TestRender_UnknownProductFallsBack(t *testing.T) {
	text := NewService().Render("Dana", domain.Product("Mortgage"), domain.MetricsBundle{})

	assert.Equal(t, "Dana, discover new opportunities with Mortgage. Learn more.", text)
}

func TestRender_TruncatesLongTextWithEllipsis(t *testing.T) {
	// A name long enough to push any template past the cap. Multibyte runes
	// exercise the rune-based cut.
	name := strings.Repeat("Әйгерім ", 40)

	text := NewService().Render(name, domain.ProductPremiumCard, domain.MetricsBundle{})

	assert.Equal(t, MaxLength, utf8.RuneCountInString(text))
	assert.True(t, strings.HasSuffix(text, ellipsis))
	assert.False(t, strings.HasSuffix(text, "...."))
}

func TestTruncate_ExactBoundary(t *testing.T) {
	atCap := strings.Repeat("a", MaxLength)
	overCap := strings.Repeat("a", MaxLength+1)

	assert.Equal(t, atCap, truncate(atCap))

	cut := truncate(overCap)
	assert.Equal(t, MaxLength, utf8.RuneCountInString(cut))
	assert.Equal(t, strings.Repeat("a", MaxLength-len(ellipsis))+ellipsis, cut)
}

func TestRender_TravelAmountFormatting(t *testing.T) {
	metrics := domain.MetricsBundle{TravelSpending: 94500.5}

	text := NewService().Render("Dana", domain.ProductTravelCard, metrics)

	// Whole tenge in the copy, benefit rounded the same way fmt does.
	assert.Contains(t, text, fmt.Sprintf("%.0f ₸", 94500.5))
	assert.Contains(t, text, fmt.Sprintf("%.0f ₸", 94500.5*0.04))
}
