package email

import (
	"context"
	"fmt"
	"log"

	mail "github.com/wneessen/go-mail"

	"github.com/Arjunsuryas/Flight-Booking/config"
	"github.com/Arjunsuryas/Flight-Booking/internal/kafka"
)

type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.PassengerEmail == "" {
		return nil
	}
	if s.cfg.Host == "" {
		log.Printf("smtp not configured, skipping %s notification for %s", event.Type, event.Reference)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(event.PassengerEmail); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(subjectFor(event))
	msg.SetBodyString(mail.TypeTextPlain, bodyFor(event))

	opts := []mail.Option{mail.WithPort(s.cfg.Port)}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func subjectFor(event kafka.BookingEvent) string {
	switch event.Type {
	case "booking_created":
		return fmt.Sprintf("Booking %s confirmed", event.Reference)
	case "booking_cancelled":
		return fmt.Sprintf("Booking %s cancelled", event.Reference)
	default:
		return fmt.Sprintf("Booking %s update", event.Reference)
	}
}

func bodyFor(event kafka.BookingEvent) string {
	switch event.Type {
	case "booking_created":
		return fmt.Sprintf("Hello %s,\n\nYour booking %s is confirmed. Seat %s.\n", event.PassengerName, event.Reference, event.SeatNumber)
	case "booking_cancelled":
		return fmt.Sprintf("Hello %s,\n\nYour booking %s has been cancelled. The seat has been released.\n", event.PassengerName, event.Reference)
	default:
		return fmt.Sprintf("Hello %s,\n\nYour booking %s is now %s.\n", event.PassengerName, event.Reference, event.Status)
	}
}
