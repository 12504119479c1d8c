package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/daniyar-b/bank-recommender-api/internal/api/handler/router"
	"github.com/daniyar-b/bank-recommender-api/internal/config"
	"github.com/daniyar-b/bank-recommender-api/internal/usecases/recommending"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Clients(service recommending.Recommender) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
	}
}

func Diagnostics(service recommending.Recommender, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/diagnose",
			Method:  http.MethodPost,
			Handler: Diagnose(service, cfg),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
