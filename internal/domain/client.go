package domain

import "errors"

// ErrClientNotFound signals that a client code has no transaction rows at
// all, as opposed to a known client with zero activity.
var ErrClientNotFound = errors.New("client not found")

// ClientProfile carries the identity fields of one client, taken from the
// first transaction row seen for its client code. Rows for the same code are
// not checked for agreement; first occurrence wins.
type ClientProfile struct {
	ClientCode int    `json:"client_code"`
	Name       string `json:"name"`
	Product    string `json:"product"`
	Status     string `json:"status"`
	City       string `json:"city"`
}
