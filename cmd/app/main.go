package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Arjunsuryas/Flight-Booking/config"
	"github.com/Arjunsuryas/Flight-Booking/internal/auth"
	"github.com/Arjunsuryas/Flight-Booking/internal/bootstrap"
	"github.com/Arjunsuryas/Flight-Booking/internal/cache"
	"github.com/Arjunsuryas/Flight-Booking/internal/kafka"
	"github.com/Arjunsuryas/Flight-Booking/internal/repository"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/booking"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/flights"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/profile"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)

	sessionTTL := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, sessionTTL)
	authService := auth.NewService(profileRepo, redisCache, tokens, sessionTTL)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.OperationLockTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithReferenceAttempts(cfg.Booking.ReferenceAttempts),
	)
	profileService := profile.NewProfileService(profileRepo)

	err = bootstrap.Run(ctx, cfg, bootstrap.Services{
		Auth:     authService,
		Flights:  flightService,
		Bookings: bookingService,
		Profiles: profileService,
	})
	if err != nil {
		log.Fatalf("server error: %v", err)
	}
}
