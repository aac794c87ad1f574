package routers

import (
	"mortuary-service/internal/app/delivery/http/middlewares"
	"mortuary-service/internal/app/services/core/workflows"

	"github.com/go-chi/chi/v5"
)

func attachWorkflowRoutes(router chi.Router, middlewares *middlewares.Middlewares, workflowController *workflows.WorkflowController) {
	router.With(middlewares.WorkflowLimiter.Limit, middlewares.SessionAuth).Post("/admit", workflowController.AdmitPatient)
	router.With(middlewares.WorkflowLimiter.Limit, middlewares.SessionAuth).Post("/discharge", workflowController.DischargePatient)
	router.With(middlewares.WorkflowLimiter.Limit, middlewares.SessionAuth).Post("/dispose", workflowController.DisposePatient)
	router.With(middlewares.WorkflowLimiter.Limit, middlewares.SessionAuth).Post("/swap", workflowController.SwapCompartment)
	router.With(middlewares.SessionAuth).Get("/sagas/{sagaID}", workflowController.GetSaga)
	router.With(middlewares.SessionAuth).Get("/patients/{patientID}/bills", workflowController.GetPatientBills)
	router.With(middlewares.SessionAuth).Get("/billable-services", workflowController.ListBillableServices)
	router.With(middlewares.SessionAuth).Get("/concepts", workflowController.SearchConcepts)
}
