package scheduler

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daniyar-b/bank-recommender-api/internal/config"
	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/recommending/mocks"
	"github.com/daniyar-b/bank-recommender-api/pkg/log"
)

func newExportService(t *testing.T, recommender *mocks.MockRecommender, enabled bool) *RecommendationExportService {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{}
	cfg.ExportJob.CronSchedule = "0 7 * * *"
	cfg.ExportJob.Enabled = enabled
	cfg.ExportJob.OutputFile = filepath.Join(t.TempDir(), "recommendations.csv")

	return NewRecommendationExportService(recommender, cfg)
}

func TestRunExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	recommender := mocks.NewMockRecommender(ctrl)
	service := newExportService(t, recommender, false)

	recommender.EXPECT().ExportAll(gomock.Any()).DoAndReturn(
		func(w io.Writer) (*domain.ExportSummary, error) {
			_, err := w.Write([]byte("client_code,product,push_notification\n"))
			require.NoError(t, err)
			return &domain.ExportSummary{Processed: 3, Skipped: 1}, nil
		})

	require.NoError(t, service.RunExport())

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotEmpty(t, status.LastRunID)
	assert.False(t, status.LastStartedAt.IsZero())
	assert.False(t, status.LastCompletedAt.IsZero())
	assert.Empty(t, status.LastError)
	require.NotNil(t, status.LastSummary)
	assert.Equal(t, 3, status.LastSummary.Processed)
	assert.Equal(t, 1, status.LastSummary.Skipped)

	content, err := os.ReadFile(service.config.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "client_code,product,push_notification")
}

func TestRunExport_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	recommender := mocks.NewMockRecommender(ctrl)
	service := newExportService(t, recommender, false)

	recommender.EXPECT().ExportAll(gomock.Any()).Return(nil, errors.New("record store has no clients"))

	err := service.RunExport()
	require.Error(t, err)

	status := service.Status()
	assert.False(t, status.Running)
	assert.Equal(t, "record store has no clients", status.LastError)
	assert.Nil(t, status.LastSummary)
}

func TestRunExport_CollapsesConcurrentRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	recommender := mocks.NewMockRecommender(ctrl)
	service := newExportService(t, recommender, false)

	started := make(chan struct{})
	release := make(chan struct{})
	recommender.EXPECT().ExportAll(gomock.Any()).DoAndReturn(
		func(w io.Writer) (*domain.ExportSummary, error) {
			close(started)
			<-release
			return &domain.ExportSummary{}, nil
		})

	done := make(chan error, 1)
	go func() { done <- service.RunExport() }()
	<-started

	// A second run while the first is in flight is a no-op, not a second
	// ExportAll call.
	assert.NoError(t, service.RunExport())
	assert.True(t, service.Status().Running)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, service.Status().Running)
}

func TestStart_DisabledDoesNotSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	recommender := mocks.NewMockRecommender(ctrl)
	service := newExportService(t, recommender, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// No ExportAll expectation: a disabled scheduler must never run the job.
	require.NoError(t, service.Start(ctx))
	assert.False(t, service.scheduler.IsRunning())
}
