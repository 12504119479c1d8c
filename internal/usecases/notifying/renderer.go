// Package notifying turns a recommended product and the client's metrics
// into the personalized push-notification text.
package notifying

import (
	"fmt"
	"strings"

	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/scoring"
)

// MaxLength is the hard cap of the push channel. Longer renderings are cut
// to 217 runes plus a three-dot ellipsis, silently.
const MaxLength = 220

const ellipsis = "..."

type Renderer interface {
	Render(clientName string, product domain.Product, metrics domain.MetricsBundle) string
}

type Service struct{}

func NewService() Renderer {
	return &Service{}
}

// template renders the product copy for one client. The wording is fixed
// domain copy; only the name and metric values vary.
type template func(name string, m *domain.MetricsBundle) string

var templates = map[domain.Product]template{
	domain.ProductTravelCard: func(name string, m *domain.MetricsBundle) string {
		return fmt.Sprintf(
			"%s, you have spent a lot on trips and taxis in recent months (%.0f ₸). The travel card would have returned %.0f ₸ of cashback. Get the card.",
			name, m.TravelSpending, m.TravelSpending*scoring.TravelCashbackRate)
	},
	domain.ProductPremiumCard: func(name string, m *domain.MetricsBundle) string {
		return fmt.Sprintf(
			"%s, you keep a stable balance and spend actively. The premium card gives up to 4%% cashback and free withdrawals. Activate it now.",
			name)
	},
	domain.ProductCreditCard: func(name string, m *domain.MetricsBundle) string {
		n := len(m.TopCategories)
		if n > 2 {
			n = 2
		}
		return fmt.Sprintf(
			"%s, your top categories are %s. The credit card gives up to 10%% back in your favourite categories. Get the card.",
			name, strings.Join(m.TopCategories[:n], ", "))
	},
	domain.ProductCurrencyExchange: func(name string, m *domain.MetricsBundle) string {
		return fmt.Sprintf(
			"%s, you make foreign currency operations. The app offers favourable exchange with no hidden fees. Set up exchange.",
			name)
	},
	domain.ProductAccumulativeDeposit: func(name string, m *domain.MetricsBundle) string {
		return fmt.Sprintf(
			"%s, you have spare funds left over. Place them on a deposit and earn up to 15%% per year. Open a deposit.",
			name)
	},
	domain.ProductSavingsDeposit: func(name string, m *domain.MetricsBundle) string {
		return fmt.Sprintf(
			"%s, your high balance could be working. A savings deposit gives the maximum rate. Open a deposit.",
			name)
	},
	domain.ProductInvestments: func(name string, m *domain.MetricsBundle) string {
		return fmt.Sprintf(
			"%s, try investing with a low entry threshold. Start small. Open an account.",
			name)
	},
	domain.ProductGoldBars: func(name string, m *domain.MetricsBundle) string {
		return fmt.Sprintf(
			"%s, you already invest in gold. Expand your portfolio on favourable terms. Learn more.",
			name)
	},
	domain.ProductCashLoan: func(name string, m *domain.MetricsBundle) string {
		return fmt.Sprintf(
			"%s, need funds for a big purchase? A cash loan with flexible terms. Check your limit.",
			name)
	},
}

func (s *Service) Render(clientName string, product domain.Product, metrics domain.MetricsBundle) string {
	tmpl, ok := templates[product]
	if !ok {
		return truncate(fmt.Sprintf("%s, discover new opportunities with %s. Learn more.", clientName, product))
	}
	return truncate(tmpl(clientName, &metrics))
}

// truncate enforces the channel cap by runes, so multibyte names cannot
// produce an over-long byte cut.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxLength {
		return text
	}
	return string(runes[:MaxLength-len(ellipsis)]) + ellipsis
}
