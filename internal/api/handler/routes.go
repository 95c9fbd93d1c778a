package handler

import (
	"net/http"

	"github.com/vfg2006/awin-report-api/internal/api/handler/router"
	"github.com/vfg2006/awin-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Merchants(runner reporting.Runner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/merchants",
			Method:  http.MethodGet,
			Handler: ListMerchants(runner),
		},
	}
}

func Reports(runner reporting.Runner, credential string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: GetReports(runner, credential),
		},
		{
			Path:    "/v1/reports/archive",
			Method:  http.MethodGet,
			Handler: GetReportsArchive(runner, credential),
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
