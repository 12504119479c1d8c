package recommending

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daniyar-b/bank-recommender-api/infrastructure/recordstore/mocks"
	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/taxonomy"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/analyzing"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/notifying"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/scoring"
	"github.com/daniyar-b/bank-recommender-api/pkg/apiErrors"
	"github.com/daniyar-b/bank-recommender-api/pkg/log"
)

func newTestService(store *mocks.MockStore) Recommender {
	log.SetupTestLogger()
	tax := taxonomy.Default()
	return NewService(
		store,
		analyzing.NewService(tax),
		scoring.NewService(tax),
		notifying.NewService(),
	)
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func travelHeavyRecords(clientCode int, name string) ([]domain.TransactionRecord, []domain.TransferRecord) {
	transactions := []domain.TransactionRecord{
		{ClientCode: clientCode, Name: name, Product: "Standard card", Status: "Salaried", City: "Almaty", Date: day(1), Category: "Travel", Amount: 90000},
		{ClientCode: clientCode, Name: name, Product: "Standard card", Status: "Salaried", City: "Almaty", Date: day(5), Category: "Taxi", Amount: 30000},
		{ClientCode: clientCode, Name: name, Product: "Standard card", Status: "Salaried", City: "Almaty", Date: day(9), Category: "Groceries", Amount: 20000},
	}
	transfers := []domain.TransferRecord{
		{ClientCode: clientCode, Date: day(2), Type: "salary_in", Direction: domain.TransferIn, Amount: 500000},
	}
	return transactions, transfers
}

func TestDiagnose(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	service := newTestService(store)

	transactions, transfers := travelHeavyRecords(17, "Aigerim")
	store.EXPECT().RecordsFor(17).Return(transactions, transfers, nil)

	response, err := service.Diagnose(17)
	require.NoError(t, err)

	assert.Equal(t, "Aigerim", response.ClientName)
	require.NotEmpty(t, response.Recommendations)
	assert.LessOrEqual(t, len(response.Recommendations), DiagnoseTopN)

	for _, rec := range response.Recommendations {
		assert.True(t, strings.HasPrefix(rec.Message, "Aigerim, "))
		assert.Greater(t, rec.Confidence, 0.0)
	}
	// Travel dominates this client's spending, so the travel card must be
	// among the top recommendations.
	products := make([]domain.Product, 0, len(response.Recommendations))
	for _, rec := range response.Recommendations {
		products = append(products, rec.Product)
	}
	assert.Contains(t, products, domain.ProductTravelCard)
}

func TestDiagnose_ClientNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	service := newTestService(store)

	store.EXPECT().RecordsFor(99).Return(nil, nil, domain.ErrClientNotFound)

	response, err := service.Diagnose(99)
	assert.Nil(t, response)
	require.Error(t, err)

	// The wrapped error keeps the sentinel visible and carries the API code.
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	var recErr *RecommendationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, apiErrors.ErrClientNotFound, recErr.Code)
	assert.Equal(t, 99, recErr.ClientCode)
}

func TestExportAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	service := newTestService(store)

	clients := []domain.ClientProfile{
		{ClientCode: 1, Name: "Aigerim", Product: "Standard card", Status: "Salaried", City: "Almaty"},
		{ClientCode: 2, Name: "Daniyar", Product: "Standard card", Status: "Student", City: "Astana"},
		{ClientCode: 3, Name: "Madina", Product: "Standard card", Status: "Salaried", City: "Almaty"},
	}
	store.EXPECT().ListClients().Return(clients)

	// Client 1 recommends the travel card, client 2 fails to resolve and is
	// skipped, client 3 has no eligible products and is skipped too.
	transactions, transfers := travelHeavyRecords(1, "Aigerim")
	store.EXPECT().RecordsFor(1).Return(transactions, transfers, nil)
	store.EXPECT().RecordsFor(2).Return(nil, nil, domain.ErrClientNotFound)
	store.EXPECT().RecordsFor(3).Return([]domain.TransactionRecord{
		{ClientCode: 3, Name: "Madina", Date: day(1), Category: "Groceries", Amount: 100},
	}, nil, nil)

	var buf bytes.Buffer
	summary, err := service.ExportAll(&buf)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 2, summary.Skipped)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "1", rows[1][0])
	// The top-category add-on makes the credit card this client's single
	// best-ranked product.
	assert.Equal(t, string(domain.ProductCreditCard), rows[1][1])
	assert.True(t, strings.HasPrefix(rows[1][2], "Aigerim, "))
}

func TestExportAll_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	service := newTestService(store)

	store.EXPECT().ListClients().Return(nil)

	summary, err := service.ExportAll(&bytes.Buffer{})
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrListEmpty)
}

func TestExportAll_WriterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	service := newTestService(store)

	store.EXPECT().ListClients().Return([]domain.ClientProfile{{ClientCode: 1, Name: "Aigerim"}})
	transactions, transfers := travelHeavyRecords(1, "Aigerim")
	store.EXPECT().RecordsFor(1).Return(transactions, transfers, nil)

	// The csv writer buffers, so the failure surfaces on the final flush.
	summary, err := service.ExportAll(failingWriter{})
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrExportRow)
}

func TestListClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	service := newTestService(store)

	clients := []domain.ClientProfile{{ClientCode: 1, Name: "Aigerim"}}
	store.EXPECT().ListClients().Return(clients)

	assert.Equal(t, clients, service.ListClients())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
