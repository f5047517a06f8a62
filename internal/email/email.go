package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/seatbooking/internal/kafka"
	"github.com/Domenick1991/seatbooking/internal/pkg/logger"
	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender turns booking events into user notifications. Delivery is a structured log line.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	if log == nil {
		log = logger.Get()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	msg, ok := Render(event)
	if !ok {
		s.log.Warn("skip booking event", zap.String("type", event.Type), zap.String("booking_id", event.BookingID))
		return nil
	}
	s.log.Info("send notification",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
		zap.String("booking_id", event.BookingID),
	)
	return nil
}

// Render builds the message for an event. Events without a user or of unknown type are not rendered.
func Render(event kafka.BookingEvent) (Message, bool) {
	if event.UserID == "" {
		return Message{}, false
	}
	seats := strings.Join(event.Seats, ", ")
	switch event.Type {
	case kafka.EventBookingReserved:
		return Message{
			To:      event.UserID,
			Subject: fmt.Sprintf("Booking %s confirmed", event.BookingID),
			Body:    fmt.Sprintf("Flight %d, %s class, seats %s are confirmed.", event.FlightID, event.Class, seats),
		}, true
	case kafka.EventBookingCancelled:
		return Message{
			To:      event.UserID,
			Subject: fmt.Sprintf("Booking %s cancelled", event.BookingID),
			Body:    fmt.Sprintf("Flight %d, seats %s were released.", event.FlightID, seats),
		}, true
	default:
		return Message{}, false
	}
}
