package routers

import (
	"mortuary-service/internal/app/delivery/http/middlewares"
	"mortuary-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.With(middlewares.SessionAuth).Post("/", reportController.ComposeReport)
}
