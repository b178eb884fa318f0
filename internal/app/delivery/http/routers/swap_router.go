package routers

import (
	"preplan-service/internal/app/delivery/http/middlewares"
	"preplan-service/internal/app/services/core/swaps"

	"github.com/go-chi/chi/v5"
)

func attachSwapRoutes(router chi.Router, middlewares *middlewares.Middlewares, swapController *swaps.SwapController) {
	router.Get("/", swapController.ListSwaps)
	router.With(middlewares.Authenticate).Post("/", swapController.CreateSwap)
	router.With(middlewares.Authenticate).Post("/{swapID}/interest", swapController.ExpressInterest)
	router.With(middlewares.Authenticate).Put("/{swapID}/status", swapController.UpdateSwapStatus)
	router.With(middlewares.Authenticate).Delete("/{swapID}", swapController.DeleteSwap)
}
