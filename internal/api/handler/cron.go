package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/daniyar-b/bank-recommender-api/internal/scheduler"
	"github.com/daniyar-b/bank-recommender-api/pkg/apiErrors"
)

// Cron job types runnable by hand.
const (
	CronJobTypeExport = "export"
)

// CronJobServices holds the schedulers exposed for manual runs.
type CronJobServices struct {
	RecommendationExportService *scheduler.RecommendationExportService
}

// RunCronJob triggers a specific cron job outside its schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeExport:
			if services.RecommendationExportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Recommendation export service not available", nil)
				return
			}
			services.RecommendationExportService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: export", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the state of the cron jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.RecommendationExportService != nil {
			status["export"] = services.RecommendationExportService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error("Error encoding cron status response:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error sending response", nil)
		}
	}
}
