package recordstore

import (
	"github.com/daniyar-b/bank-recommender-api/internal/domain"
)

// Store serves the immutable raw records of the observation window.
type Store interface {
	// ListClients returns one profile per distinct client code present in
	// the transaction set, in first-seen order.
	ListClients() []domain.ClientProfile

	// RecordsFor returns the client's transactions and transfers in source
	// order. It returns domain.ErrClientNotFound when no transaction rows
	// exist for the code; a client with transactions but no transfers is a
	// valid zero-activity result, not an error.
	RecordsFor(clientCode int) ([]domain.TransactionRecord, []domain.TransferRecord, error)
}

// MemoryStore indexes the full ingested dataset by client code. It is built
// once and never mutated, so it is safe to share across request goroutines.
type MemoryStore struct {
	profiles     []domain.ClientProfile
	transactions map[int][]domain.TransactionRecord
	transfers    map[int][]domain.TransferRecord
}

// NewMemoryStore builds the index from already-parsed records. Identity
// fields come from the first transaction row seen per client code.
func NewMemoryStore(transactions []domain.TransactionRecord, transfers []domain.TransferRecord) *MemoryStore {
	s := &MemoryStore{
		transactions: make(map[int][]domain.TransactionRecord),
		transfers:    make(map[int][]domain.TransferRecord),
	}

	for _, t := range transactions {
		if _, seen := s.transactions[t.ClientCode]; !seen {
			s.profiles = append(s.profiles, domain.ClientProfile{
				ClientCode: t.ClientCode,
				Name:       t.Name,
				Product:    t.Product,
				Status:     t.Status,
				City:       t.City,
			})
		}
		s.transactions[t.ClientCode] = append(s.transactions[t.ClientCode], t)
	}

	for _, t := range transfers {
		s.transfers[t.ClientCode] = append(s.transfers[t.ClientCode], t)
	}

	return s
}

func (s *MemoryStore) ListClients() []domain.ClientProfile {
	profiles := make([]domain.ClientProfile, len(s.profiles))
	copy(profiles, s.profiles)
	return profiles
}

func (s *MemoryStore) RecordsFor(clientCode int) ([]domain.TransactionRecord, []domain.TransferRecord, error) {
	stored, ok := s.transactions[clientCode]
	if !ok {
		return nil, nil, domain.ErrClientNotFound
	}

	// Copies keep the backing data read-only for concurrent callers.
	transactions := make([]domain.TransactionRecord, len(stored))
	copy(transactions, stored)

	transfers := make([]domain.TransferRecord, len(s.transfers[clientCode]))
	copy(transfers, s.transfers[clientCode])

	return transactions, transfers, nil
}
