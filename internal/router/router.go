// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/hotelero/reservas/internal/handler"
)

// RegisterRoutes wires the health check and every reservation endpoint on
// the provided Echo instance.  The aggregate report paths are registered as
// static routes, so they never collide with the :id parameter route.
func RegisterRoutes(e *echo.Echo, h *handler.ReservationHandler) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	g := e.Group("/reservas")
	g.GET("", h.List)
	g.POST("", h.Create)

	// Aggregate reports.
	g.GET("/promedio-total", h.AverageTotal)
	g.GET("/resumen-por-habitacion", h.SummaryByRoom)

	// Single-record operations.
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
