package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Arjunsuryas/Flight-Booking/api"
	"github.com/Arjunsuryas/Flight-Booking/config"
	"github.com/Arjunsuryas/Flight-Booking/internal/auth"
	"github.com/Arjunsuryas/Flight-Booking/internal/metrics"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/booking"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/flights"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/profile"
)

type Services struct {
	Auth     *auth.Service
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
	Profiles profile.ProfileUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.Default())
	router.Use(metrics.HTTPMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	authHandler := api.NewAuthHandler(svc.Auth)
	authHandler.RegisterPublic(router.Group("/auth"))

	authed := router.Group("/")
	authed.Use(auth.Middleware(svc.Auth))

	authHandler.RegisterPrivate(authed.Group("/auth"))
	api.NewFlightHandler(svc.Flights).Register(authed.Group("/flights"))
	api.NewBookingHandler(svc.Bookings).Register(authed.Group("/bookings"))
	api.NewProfileHandler(svc.Profiles).Register(authed.Group("/profile"))

	return router
}
