// Package scheduler contains the recurring jobs of the application.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/daniyar-b/bank-recommender-api/internal/config"
	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/recommending"
	"github.com/daniyar-b/bank-recommender-api/pkg/utils"
)

type ExportConfig struct {
	CronSchedule string
	Enabled      bool
	OutputFile   string
}

// ExportStatus is a snapshot of the job state for the status endpoint.
type ExportStatus struct {
	Running         bool                  `json:"running"`
	LastRunID       string                `json:"last_run_id,omitempty"`
	LastStartedAt   time.Time             `json:"last_started_at,omitempty"`
	LastCompletedAt time.Time             `json:"last_completed_at,omitempty"`
	LastSummary     *domain.ExportSummary `json:"last_summary,omitempty"`
	LastError       string                `json:"last_error,omitempty"`
}

// RecommendationExportService periodically writes the best recommendation
// per client to a CSV file.
type RecommendationExportService struct {
	scheduler   *gocron.Scheduler
	recommender recommending.Recommender
	config      ExportConfig

	runMutex        sync.Mutex
	running         bool
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastSummary     *domain.ExportSummary
	lastError       error
}

func NewRecommendationExportService(
	recommender recommending.Recommender,
	cfg *config.Config,
) *RecommendationExportService {
	exportConfig := ExportConfig{
		CronSchedule: cfg.ExportJob.CronSchedule,
		Enabled:      cfg.ExportJob.Enabled, // default: disabled
		OutputFile:   cfg.ExportJob.OutputFile,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"output_file":   exportConfig.OutputFile,
	}).Info("Recommendation export scheduler configuration loaded")

	return &RecommendationExportService{
		scheduler:   scheduler,
		recommender: recommender,
		config:      exportConfig,
	}
}

func (s *RecommendationExportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recommendation export cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting recommendation export cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunExport(); err != nil {
			logrus.WithError(err).Error("Error running recommendation export")
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling recommendation export: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping recommendation export cron")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs the export outside its schedule, in background.
func (s *RecommendationExportService) TriggerManualSync() {
	go func() {
		if err := s.RunExport(); err != nil {
			logrus.WithError(err).Error("Error in manually triggered export")
		}
	}()
}

// RunExport performs one export run. Concurrent runs are collapsed: a run
// that finds another in flight returns immediately.
func (s *RecommendationExportService) RunExport() error {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Warn("Recommendation export already running")
		return nil
	}

	runID, err := utils.GenerateID()
	if err != nil {
		s.runMutex.Unlock()
		return fmt.Errorf("error generating export run ID: %w", err)
	}

	s.running = true
	s.lastRunID = runID
	s.lastStartedAt = time.Now()
	s.runMutex.Unlock()

	summary, runErr := s.export()

	s.runMutex.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastSummary = summary
	s.lastError = runErr
	s.runMutex.Unlock()

	if runErr != nil {
		return runErr
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"output":    s.config.OutputFile,
		"processed": summary.Processed,
		"skipped":   summary.Skipped,
	}).Info("Recommendation export run finished")

	return nil
}

func (s *RecommendationExportService) export() (*domain.ExportSummary, error) {
	out, err := os.Create(s.config.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("error creating export file %s: %w", s.config.OutputFile, err)
	}
	defer out.Close()

	return s.recommender.ExportAll(out)
}

// Status returns a consistent snapshot of the job state.
func (s *RecommendationExportService) Status() ExportStatus {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := ExportStatus{
		Running:         s.running,
		LastRunID:       s.lastRunID,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
		LastSummary:     s.lastSummary,
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}
	return status
}
