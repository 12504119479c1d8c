package recordstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniyar-b/bank-recommender-api/internal/domain"
)

func TestLoadTransactions(t *testing.T) {
	records, err := LoadTransactions(filepath.Join("testdata", "client_1_transactions_3m.csv"))

	require.NoError(t, err)
	require.Len(t, records, 4)

	first := records[0]
	assert.Equal(t, 1, first.ClientCode)
	assert.Equal(t, "Aigerim", first.Name)
	assert.Equal(t, "Standard card", first.Product)
	assert.Equal(t, "Salary client", first.Status)
	assert.Equal(t, "Almaty", first.City)
	assert.Equal(t, "Taxi", first.Category)
	assert.Equal(t, 4500.50, first.Amount)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), first.Date)
}

func TestLoadTransactions_MissingColumn(t *testing.T) {
	_, err := LoadTransactions(filepath.Join("testdata", "missing_column.csv"))

	require.Error(t, err)
	parseErr, ok := err.(*ParseError)
	require.True(t, ok, "expected a *ParseError, got %T", err)
	assert.Contains(t, parseErr.Error(), "missing required column")
}

func TestLoadTransactions_MalformedAmount(t *testing.T) {
	_, err := LoadTransactions(filepath.Join("testdata", "client_3_transactions_3m.csv"))

	require.Error(t, err)
	parseErr, ok := err.(*ParseError)
	require.True(t, ok, "expected a *ParseError, got %T", err)
	assert.Equal(t, 2, parseErr.Line)
}

func TestLoadTransfers(t *testing.T) {
	records, err := LoadTransfers(filepath.Join("testdata", "client_1_transfers_3m.csv"))

	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.TransferIn, records[0].Direction)
	assert.Equal(t, "salary_in", records[0].Type)
	assert.Equal(t, 400000.0, records[0].Amount)
	assert.Equal(t, domain.TransferOut, records[1].Direction)
	assert.Equal(t, domain.TransferTypeATMWithdrawal, records[2].Type)
}

func TestLoadTransfers_UnknownDirection(t *testing.T) {
	_, err := LoadTransfers(filepath.Join("testdata", "bad_direction_transfers.csv"))

	require.Error(t, err)
	parseErr, ok := err.(*ParseError)
	require.True(t, ok, "expected a *ParseError, got %T", err)
	assert.Contains(t, parseErr.Error(), "unknown direction")
}

func TestLoadDir(t *testing.T) {
	// testdata holds one good pair (client 1), one transactions file with no
	// transfers sibling (client 2) and one unparsable pair (client 3). The
	// bad files must be skipped without aborting the load.
	store, summary, err := LoadDir("testdata")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.FilesLoaded)
	assert.Equal(t, 2, summary.FilesSkipped)
	assert.Equal(t, 4, summary.Transactions)
	assert.Equal(t, 3, summary.Transfers)

	clients := store.ListClients()
	require.Len(t, clients, 1)
	assert.Equal(t, 1, clients[0].ClientCode)

	_, _, err = store.RecordsFor(2)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	_, _, err = store.RecordsFor(3)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestLoadDir_EmptyDir(t *testing.T) {
	_, _, err := LoadDir(t.TempDir())
	assert.Error(t, err)
}
