package routers

import (
	"mortuary-service/internal/app/delivery/http/middlewares"
	"mortuary-service/internal/app/services/core/queueview"

	"github.com/go-chi/chi/v5"
)

func attachQueueRoutes(router chi.Router, middlewares *middlewares.Middlewares, queueController *queueview.QueueController) {
	router.With(middlewares.SessionAuth).Get("/", queueController.ListQueueEntries)
	router.With(middlewares.SessionAuth).Post("/{queueID}/release", queueController.ReleaseQueueEntry)
}
