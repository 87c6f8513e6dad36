// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sankalp69/AI-travel-planner/internal/http/handlers"
	"github.com/sankalp69/AI-travel-planner/internal/http/middleware"
	"github.com/sankalp69/AI-travel-planner/internal/modules/trip"
)

// NewRouter wires the gin engine with middleware and routes.
func NewRouter(planner *trip.Service) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/", handlers.Health)

	tripHandler := handlers.NewTripHandler(planner)
	// Both spellings are routed so clients that append the trailing slash
	// (like the bundled demo client) and those that do not both work.
	r.POST("/plan_trip/", tripHandler.PlanTrip)
	r.POST("/plan_trip", tripHandler.PlanTrip)

	return r
}
