package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/studio-manager-api/internal/api/handler/router"
	"github.com/vfg2006/studio-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/studio-manager-api/internal/usecases/searching"
	"github.com/vfg2006/studio-manager-api/internal/usecases/studio"
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

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Clients(service studio.StudioService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:    "/v1/clients",
			Method:  http.MethodPost,
			Handler: CreateClient(service),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodPut,
			Handler: UpdateClient(service),
		},
	}
}

func Planner(service studio.StudioService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/planner",
			Method:  http.MethodGet,
			Handler: ListPlanner(service),
		},
		{
			Path:    "/v1/planner",
			Method:  http.MethodPost,
			Handler: CreatePlannerItem(service),
		},
		{
			Path:    "/v1/planner/:id/status",
			Method:  http.MethodPut,
			Handler: UpdatePlannerStatus(service),
		},
	}
}

func Efforts(service studio.StudioService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/efforts",
			Method:  http.MethodGet,
			Handler: ListEfforts(service),
		},
		{
			Path:    "/v1/efforts",
			Method:  http.MethodPost,
			Handler: CreateEffortLog(service),
		},
	}
}

func Tasks(service studio.StudioService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tasks",
			Method:  http.MethodGet,
			Handler: ListTasks(service),
		},
		{
			Path:    "/v1/tasks",
			Method:  http.MethodPost,
			Handler: CreateTask(service),
		},
		{
			Path:    "/v1/tasks/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateTaskStatus(service),
		},
	}
}

func Invoices(service studio.StudioService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/invoices",
			Method:  http.MethodGet,
			Handler: ListInvoices(service),
		},
		{
			Path:    "/v1/invoices",
			Method:  http.MethodPost,
			Handler: CreateInvoice(service),
		},
		{
			Path:    "/v1/invoices/:id/pay",
			Method:  http.MethodPost,
			Handler: PayInvoice(service),
		},
	}
}

func Projections(service studio.StudioService, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projections",
			Method:  http.MethodGet,
			Handler: ListProjections(service),
		},
		{
			Path:    "/v1/projections",
			Method:  http.MethodPost,
			Handler: CreateProjection(service),
		},
		{
			Path:    "/v1/projections/active",
			Method:  http.MethodGet,
			Handler: GetActiveProjection(reporter),
		},
	}
}

func Search(service searching.Searcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/search",
			Method:  http.MethodGet,
			Handler: SearchAll(service),
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
