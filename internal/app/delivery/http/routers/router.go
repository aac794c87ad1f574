package routers

import (
	"fmt"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/delivery/http/middlewares"
	"mortuary-service/internal/app/services/core/occupancy"
	"mortuary-service/internal/app/services/core/queueview"
	"mortuary-service/internal/app/services/core/reports"
	"mortuary-service/internal/app/services/core/workflows"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	occupancyController *occupancy.OccupancyController,
	workflowController *workflows.WorkflowController,
	queueController *queueview.QueueController,
	reportController *reports.ReportController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Api-Key", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.APIKeyAuth)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/occupancy", func(r chi.Router) {
				attachOccupancyRoutes(r, middlewares, occupancyController)
			})

			r.Route("/queue", func(r chi.Router) {
				attachQueueRoutes(r, middlewares, queueController)
			})

			r.Route("/workflows", func(r chi.Router) {
				attachWorkflowRoutes(r, middlewares, workflowController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})
		})
	})
}
