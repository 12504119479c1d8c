package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/daniyar-b/bank-recommender-api/internal/usecases/recommending"
	"github.com/daniyar-b/bank-recommender-api/pkg/apiErrors"
)

// ListClients returns every client known to the record store.
func ListClients(service recommending.Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients := service.ListClients()

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]any{
			"clients": clients,
		})
		if err != nil {
			logrus.Error("Error encoding clients response:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error sending response", nil)
			return
		}
	}
}
