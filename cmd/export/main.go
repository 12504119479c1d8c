// One-shot batch export: analyzes every available client and writes their
// single best-ranked recommendation to a CSV file.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/daniyar-b/bank-recommender-api/infrastructure/recordstore"
	"github.com/daniyar-b/bank-recommender-api/internal/config"
	"github.com/daniyar-b/bank-recommender-api/internal/taxonomy"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/analyzing"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/notifying"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/recommending"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/scoring"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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
	}).Info("Client records loaded")

	recommenderService := recommending.NewService(
		store,
		analyzing.NewService(tax),
		scoring.NewService(tax),
		notifying.NewService(),
	)

	out, err := os.Create(cfg.ExportJob.OutputFile)
	if err != nil {
		logrus.WithError(err).Fatalf("Error creating output file %s", cfg.ExportJob.OutputFile)
	}
	defer out.Close()

	exportSummary, err := recommenderService.ExportAll(out)
	if err != nil {
		logrus.WithError(err).Fatal("Error exporting recommendations")
	}

	logrus.WithFields(logrus.Fields{
		"output":    cfg.ExportJob.OutputFile,
		"processed": exportSummary.Processed,
		"skipped":   exportSummary.Skipped,
	}).Info("Recommendation export completed")
}
