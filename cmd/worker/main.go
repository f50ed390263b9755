package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/Arjunsuryas/Flight-Booking/config"
	"github.com/Arjunsuryas/Flight-Booking/internal/cache"
	"github.com/Arjunsuryas/Flight-Booking/internal/email"
	"github.com/Arjunsuryas/Flight-Booking/internal/kafka"
	"github.com/Arjunsuryas/Flight-Booking/internal/metrics"
	"github.com/Arjunsuryas/Flight-Booking/internal/repository"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/booking"
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

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)

	bookingRepo := repository.NewBookingRepository(pool)
	bookingService := booking.NewBookingService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.OperationLockTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender(cfg.SMTP)

	go func() {
		err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.BookingEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("decode event: %v", err)
				return nil
			}
			if err := emailSender.Send(ctx, event); err != nil {
				log.Printf("send notification for %s: %v", event.Reference, err)
			}
			return nil
		})
		if err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	sweep := time.NewTicker(time.Duration(cfg.Worker.CompletionSweepMinutes) * time.Minute)
	defer sweep.Stop()

	for {
		select {
		case <-sweep.C:
			completed, err := bookingService.CompleteDeparted(ctx)
			if err != nil {
				log.Printf("complete departed bookings: %v", err)
				continue
			}
			if len(completed) > 0 {
				metrics.BookingsCompleted(len(completed))
				log.Printf("completed %d bookings", len(completed))
			}
		case <-ctx.Done():
			log.Println("shutting down")
			return
		}
	}
}
