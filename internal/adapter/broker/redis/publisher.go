package redis

import (
	"context"
	"encoding/json"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/infrastructure/metrics"
)

// Publisher emits customer lifecycle events to a Redis stream. Publishing is
// best-effort: failures are logged, never surfaced to the caller, so a broker
// outage cannot fail a customer mutation.
type Publisher struct {
	client *redis.Client
	stream string
}

// NewPublisher creates a new Publisher on the given stream.
func NewPublisher(client *redis.Client, stream string) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
	}
}

// Publish appends the event to the stream.
func (p *Publisher) Publish(ctx context.Context, event *domain.CustomerEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().
			Err(err).
			Str("event_type", event.EventType).
			Str("cliente_id", event.CustomerID).
			Msg("failed to marshal customer event")

		return
	}

	eventID := ulid.Make().String()

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"id":    eventID,
			"event": string(payload),
		},
	}).Err()
	if err != nil {
		log.Error().
			Err(err).
			Str("event_type", event.EventType).
			Str("cliente_id", event.CustomerID).
			Msg("failed to publish customer event")

		return
	}

	metrics.EventsPublished.WithLabelValues(event.EventType).Inc()

	log.Debug().
		Str("event_id", eventID).
		Str("event_type", event.EventType).
		Str("cliente_id", event.CustomerID).
		Msg("customer event published")
}
