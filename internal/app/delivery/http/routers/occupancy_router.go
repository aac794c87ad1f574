package routers

import (
	"mortuary-service/internal/app/delivery/http/middlewares"
	"mortuary-service/internal/app/services/core/occupancy"

	"github.com/go-chi/chi/v5"
)

func attachOccupancyRoutes(router chi.Router, middlewares *middlewares.Middlewares, occupancyController *occupancy.OccupancyController) {
	router.With(middlewares.SessionAuth).Get("/beds", occupancyController.GetBedLayout)
	router.With(middlewares.SessionAuth).Get("/patients/awaiting", occupancyController.ListAwaitingPatients)
	router.With(middlewares.SessionAuth).Get("/patients/admitted", occupancyController.ListAdmittedPatients)
	router.With(middlewares.SessionAuth).Get("/patients/discharged", occupancyController.ListDischargedPatients)
}
