package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/daniyar-b/bank-recommender-api/infrastructure/recordstore"
	"github.com/daniyar-b/bank-recommender-api/internal/api"
	"github.com/daniyar-b/bank-recommender-api/internal/config"
	"github.com/daniyar-b/bank-recommender-api/internal/scheduler"
	"github.com/daniyar-b/bank-recommender-api/internal/taxonomy"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/analyzing"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/notifying"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/recommending"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/scoring"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tax, err := taxonomy.Load(cfg.Data.TaxonomyPath)
	if err != nil {
		logrus.WithError(err).Fatal("Error loading category taxonomy")
	}

	store, summary, err := recordstore.LoadDir(cfg.Data.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("Error loading client records")
	}

	logrus.WithFields(logrus.Fields{
		"files_loaded":  summary.FilesLoaded,
		"files_skipped": summary.FilesSkipped,
		"transactions":  summary.Transactions,
		"transfers":     summary.Transfers,
	}).Info("Client records loaded")

	extractor := analyzing.NewService(tax)
	scorer := scoring.NewService(tax)
	renderer := notifying.NewService()

	recommenderService := recommending.NewService(store, extractor, scorer, renderer)

	exportService := scheduler.NewRecommendationExportService(recommenderService, cfg)
	if err := exportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the recommendation export scheduler")
	} else {
		logrus.Info("Recommendation export scheduler started")
	}

	server, err := api.New(cfg, recommenderService, exportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format.
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
