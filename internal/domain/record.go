// Package domain holds the data structures of the application domain.
package domain

import "time"

// TransferDirection tells whether money entered or left the account.
type TransferDirection string

const (
	TransferIn  TransferDirection = "in"
	TransferOut TransferDirection = "out"
)

// Transfer types present in the source feed. The set is open; only the
// types below carry meaning for the metrics.
const (
	TransferTypeFXBuy         = "fx_buy"
	TransferTypeFXSell        = "fx_sell"
	TransferTypeGoldBuyOut    = "gold_buy_out"
	TransferTypeGoldSellIn    = "gold_sell_in"
	TransferTypeInvestOut     = "invest_out"
	TransferTypeInvestIn      = "invest_in"
	TransferTypeATMWithdrawal = "atm_withdrawal"
)

// TransactionRecord is one card transaction row. Immutable once loaded.
type TransactionRecord struct {
	ClientCode int       `json:"client_code"`
	Name       string    `json:"name"`
	Product    string    `json:"product"`
	Status     string    `json:"status"`
	City       string    `json:"city"`
	Date       time.Time `json:"date"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
}

// TransferRecord is one account transfer row. Immutable once loaded.
type TransferRecord struct {
	ClientCode int               `json:"client_code"`
	Date       time.Time         `json:"date"`
	Type       string            `json:"type"`
	Direction  TransferDirection `json:"direction"`
	Amount     float64           `json:"amount"`
}
