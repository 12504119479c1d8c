// Package recommending orchestrates the analysis pipeline: records in,
// ranked product recommendations with notification text out.
package recommending

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/daniyar-b/bank-recommender-api/infrastructure/recordstore"
	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/analyzing"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/notifying"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/scoring"
	"github.com/daniyar-b/bank-recommender-api/pkg/apiErrors"
)

// DiagnoseTopN bounds the recommendations returned by a diagnosis.
const DiagnoseTopN = 3

var exportHeader = []string{"client_code", "product", "push_notification"}

type Recommender interface {
	ListClients() []domain.ClientProfile
	Diagnose(clientCode int) (*domain.DiagnosticResponse, error)
	ExportAll(w io.Writer) (*domain.ExportSummary, error)
}

type Service struct {
	store     recordstore.Store
	extractor analyzing.Extractor
	scorer    scoring.Scorer
	renderer  notifying.Renderer
}

func NewService(
	store recordstore.Store,
	extractor analyzing.Extractor,
	scorer scoring.Scorer,
	renderer notifying.Renderer,
) Recommender {
	return &Service{
		store:     store,
		extractor: extractor,
		scorer:    scorer,
		renderer:  renderer,
	}
}

func (s *Service) ListClients() []domain.ClientProfile {
	return s.store.ListClients()
}

// Diagnose runs the full pipeline for one client and renders the top
// recommendations. Unknown client codes surface as ErrClientNotFound.
func (s *Service) Diagnose(clientCode int) (*domain.DiagnosticResponse, error) {
	transactions, transfers, err := s.store.RecordsFor(clientCode)
	if err != nil {
		return nil, NewClientError(err, apiErrors.ErrClientNotFound, clientCode, "no transaction rows for client")
	}

	metrics := s.extractor.Extract(transactions, transfers)

	candidates, err := s.scorer.Score(metrics)
	if err != nil {
		return nil, NewClientError(ErrScoring, apiErrors.ErrInternalServer, clientCode, err.Error())
	}

	if len(candidates) > DiagnoseTopN {
		candidates = candidates[:DiagnoseTopN]
	}

	clientName := transactions[0].Name

	recommendations := make([]domain.Recommendation, 0, len(candidates))
	for _, candidate := range candidates {
		recommendations = append(recommendations, domain.Recommendation{
			Product:    candidate.Product,
			Message:    s.renderer.Render(clientName, candidate.Product, metrics),
			Confidence: candidate.Confidence,
		})
	}

	return &domain.DiagnosticResponse{
		ClientName:      clientName,
		Recommendations: recommendations,
	}, nil
}

// ExportAll writes one CSV row per client with its single best-ranked
// product and notification. Clients that fail or have no eligible products
// are logged and skipped; the summary reports both counts.
func (s *Service) ExportAll(w io.Writer) (*domain.ExportSummary, error) {
	clients := s.store.ListClients()
	if len(clients) == 0 {
		return nil, NewRecommendationError(ErrListEmpty, apiErrors.ErrDataLoad, "record store has no clients")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return nil, NewRecommendationError(ErrExportRow, apiErrors.ErrInternalServer, err.Error())
	}

	summary := &domain.ExportSummary{}

	for _, client := range clients {
		row, err := s.exportRow(client)
		if err != nil {
			logrus.WithError(err).WithField("client_code", client.ClientCode).Warn("Skipping client in export")
			summary.Skipped++
			continue
		}

		if err := writer.Write(row); err != nil {
			return nil, NewClientError(ErrExportRow, apiErrors.ErrInternalServer, client.ClientCode, err.Error())
		}
		summary.Processed++

		logrus.WithFields(logrus.Fields{
			"client_code": client.ClientCode,
			"product":     row[1],
		}).Debug("Processed client")
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, NewRecommendationError(ErrExportRow, apiErrors.ErrInternalServer, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"processed": summary.Processed,
		"skipped":   summary.Skipped,
	}).Info("Recommendation export finished")

	return summary, nil
}

func (s *Service) exportRow(client domain.ClientProfile) ([]string, error) {
	transactions, transfers, err := s.store.RecordsFor(client.ClientCode)
	if err != nil {
		return nil, err
	}

	metrics := s.extractor.Extract(transactions, transfers)

	candidates, err := s.scorer.Score(metrics)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoProducts
	}

	best := candidates[0]
	notification := s.renderer.Render(transactions[0].Name, best.Product, metrics)

	return []string{
		fmt.Sprintf("%d", client.ClientCode),
		string(best.Product),
		notification,
	}, nil
}
