package routers

import (
	"preplan-service/internal/app/config"
	"preplan-service/internal/app/delivery/http/middlewares"
	"preplan-service/internal/app/services/core/auth"
	"preplan-service/internal/app/services/core/catalog"
	"preplan-service/internal/app/services/core/imports"
	"preplan-service/internal/app/services/core/routines"
	"preplan-service/internal/app/services/core/swaps"
	"preplan-service/internal/app/services/core/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	catalogController *catalog.CatalogController,
	routineController *routines.RoutineController,
	swapController *swaps.SwapController,
	importController *imports.ImportController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})

		r.Route("/catalog", func(r chi.Router) {
			attachCatalogRoutes(r, middlewares, catalogController)
		})

		r.Route("/routines", func(r chi.Router) {
			attachRoutineRoutes(r, middlewares, routineController)
		})

		r.Route("/swaps", func(r chi.Router) {
			attachSwapRoutes(r, middlewares, swapController)
		})

		r.Route("/imports", func(r chi.Router) {
			attachImportRoutes(r, middlewares, importController)
		})
	})
}
