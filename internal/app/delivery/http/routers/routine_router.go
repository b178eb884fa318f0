package routers

import (
	"preplan-service/internal/app/delivery/http/middlewares"
	"preplan-service/internal/app/services/core/routines"

	"github.com/go-chi/chi/v5"
)

func attachRoutineRoutes(router chi.Router, middlewares *middlewares.Middlewares, routineController *routines.RoutineController) {
	// Preview, merge and shared links work without an account.
	router.Post("/preview", routineController.PreviewSelection)
	router.Post("/merge", routineController.MergeRoutines)
	router.Get("/{routineID}", routineController.GetSharedRoutine)

	router.With(middlewares.Authenticate).Post("/", routineController.SaveRoutine)
	router.With(middlewares.Authenticate).Get("/", routineController.ListRoutines)
	router.With(middlewares.Authenticate).Get("/{routineID}/grid", routineController.GetRoutineGrid)
	router.With(middlewares.Authenticate).Delete("/{routineID}", routineController.DeleteRoutine)
}
