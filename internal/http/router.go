// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripforge/internal/http/handlers"
	"tripforge/internal/http/middleware"
)

// CreditService is the full credit surface the router wires; may be nil to
// disable credit accounting.
type CreditService interface {
	handlers.CreditSpender
	handlers.CreditReader
}

// RouterDeps carries the handler dependencies.
type RouterDeps struct {
	Pipeline handlers.TripGenerator
	Trips    handlers.TripSaver
	Credits  CreditService
	Log      *zap.SugaredLogger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log), middleware.Logging(deps.Log))

	var spender handlers.CreditSpender
	if deps.Credits != nil {
		spender = deps.Credits
	}
	tripHandler := handlers.NewTripHandler(deps.Pipeline, spender)
	r.POST("/api/trips/generate", tripHandler.Generate)
	if deps.Credits != nil {
		creditsHandler := handlers.NewCreditsHandler(deps.Credits)
		r.GET("/api/credits/:userId", creditsHandler.Balance)
	}

	tripsHandler := handlers.NewTripsHandler(deps.Trips)
	r.POST("/api/trips", tripsHandler.Save)
	r.GET("/api/trips", tripsHandler.List)
	r.GET("/api/trips/:id", tripsHandler.Get)
	r.DELETE("/api/trips/:id", tripsHandler.Delete)
	r.GET("/api/trips/:id/export", tripsHandler.Export)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
