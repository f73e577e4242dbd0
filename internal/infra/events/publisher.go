package events

import (
	"context"
	"encoding/json"
	"time"

	"vehicle-booking/internal/pkg/config"
	"vehicle-booking/internal/pkg/errs"
	"vehicle-booking/internal/usecase/queries"

	"github.com/segmentio/kafka-go"
)

// envelope is the wire shape of a booking lifecycle event. Consumers key on
// kind; the booking projection rides along so they need no read-back.
type envelope struct {
	Kind       string               `json:"kind"`
	OccurredAt time.Time            `json:"occurred_at"`
	Booking    *queries.BookingView `json:"booking"`
}

// KafkaPublisher writes lifecycle events to a single topic keyed by booking
// ID, so per-booking ordering holds within a partition.
type KafkaPublisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.Topic,
			Balancer: &kafka.Hash{},
		},
		timeout: cfg.Timeout,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, kind string, b *queries.BookingView) error {
	payload, err := json.Marshal(envelope{
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
		Booking:    b,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(b.ID.String()),
		Value: payload,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
