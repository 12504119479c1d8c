package domain

// Product identifies one of the bank products the scoring engine can
// recommend.
type Product string

const (
	ProductTravelCard          Product = "Travel card"
	ProductPremiumCard         Product = "Premium card"
	ProductCreditCard          Product = "Credit card"
	ProductCurrencyExchange    Product = "Currency exchange"
	ProductSavingsDeposit      Product = "Savings deposit"
	ProductAccumulativeDeposit Product = "Accumulative deposit"
	ProductInvestments         Product = "Investments"
	ProductGoldBars            Product = "Gold bars"
	ProductCashLoan            Product = "Cash loan"
)

// ProductCandidate is one scored recommendation before ranking. Benefit is
// the estimated monetary value to the client in the feed's currency unit;
// Confidence is a rule-specific heuristic in [0,100], not a probability.
type ProductCandidate struct {
	Product    Product `json:"product"`
	Benefit    float64 `json:"benefit"`
	Confidence float64 `json:"confidence"`
}

// Recommendation is a candidate rendered for the client-facing API.
type Recommendation struct {
	Product    Product `json:"product"`
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence"`
}

// DiagnosticResponse is the payload of the diagnose operation.
type DiagnosticResponse struct {
	ClientName      string           `json:"client_name"`
	Recommendations []Recommendation `json:"recommendations"`
}

// ExportSummary reports the outcome of a batch export run. Individual client
// failures are skipped, never fatal.
type ExportSummary struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}
