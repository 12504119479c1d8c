package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/daniyar-b/bank-recommender-api/internal/config"
	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/recommending"
	"github.com/daniyar-b/bank-recommender-api/pkg/apiErrors"
)

// DiagnoseRequest is the payload of the diagnose endpoint.
type DiagnoseRequest struct {
	ClientCode int `json:"client_code"`
}

// Diagnose runs the recommendation pipeline for one client and returns the
// top recommendations rendered as notification messages.
func Diagnose(service recommending.Recommender, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DiagnoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request payload", nil)
			return
		}

		if req.ClientCode <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "client_code is required", nil)
			return
		}

		// Demo-frontend pacing only; the analysis itself is fast.
		if cfg.Diagnose.DelaySeconds > 0 {
			time.Sleep(time.Duration(cfg.Diagnose.DelaySeconds) * time.Second)
		}

		diagnostic, err := service.Diagnose(req.ClientCode)
		if err != nil {
			if errors.Is(err, domain.ErrClientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Client not found", nil)
				return
			}

			logrus.WithError(err).WithField("client_code", req.ClientCode).Error("Error diagnosing client")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error diagnosing client", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(diagnostic); err != nil {
			logrus.Error("Error encoding diagnostic response:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error sending response", nil)
			return
		}
	}
}
