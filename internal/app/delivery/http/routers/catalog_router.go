package routers

import (
	"preplan-service/internal/app/delivery/http/middlewares"
	"preplan-service/internal/app/services/core/catalog"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalog.CatalogController) {
	router.Get("/sections", catalogController.ListSections)
	router.Get("/sections/{sectionID}", catalogController.GetSectionByID)

	// Refreshes hit the upstream feed, keep them to a trickle per IP.
	refreshLimiter := middlewares.NewRefreshLimiter(2, time.Minute, 10*time.Minute)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin, refreshLimiter.Limit).
		Post("/refresh", catalogController.RefreshCatalog)
}
