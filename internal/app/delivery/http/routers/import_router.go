package routers

import (
	"preplan-service/internal/app/delivery/http/middlewares"
	"preplan-service/internal/app/services/core/imports"

	"github.com/go-chi/chi/v5"
)

func attachImportRoutes(router chi.Router, middlewares *middlewares.Middlewares, importController *imports.ImportController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/faculty", importController.ImportFacultyCSV)
}
