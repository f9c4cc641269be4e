package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/infrastructure/metrics"
)

// EventApplier applies a decoded customer event.
type EventApplier interface {
	Apply(ctx context.Context, event *domain.CustomerEvent) error
}

// Consumer reads customer lifecycle events from a Redis stream through a
// consumer group and applies them. Delivery is at most once: every message is
// acknowledged whether or not its handler succeeded, and malformed or unknown
// events are logged and dropped rather than retried.
type Consumer struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
	applier  EventApplier
}

// NewConsumer creates the consumer group if needed and returns a Consumer.
func NewConsumer(ctx context.Context, client *redis.Client, stream, group string, applier EventApplier) (*Consumer, error) {
	err := client.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !isBusyGroup(err) {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Consumer{
		client:   client,
		stream:   stream,
		group:    group,
		consumer: fmt.Sprintf("%s-%d", group, time.Now().UnixNano()),
		applier:  applier,
	}, nil
}

// Run consumes events until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().
		Str("stream", c.stream).
		Str("group", c.group).
		Str("consumer", c.consumer).
		Msg("customer event consumer started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.consumer,
			Streams:  []string{c.stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}

			log.Error().Err(err).Str("stream", c.stream).Msg("error reading from stream")
			time.Sleep(time.Second)

			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				c.handle(ctx, msg)
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg redis.XMessage) {
	// Ack first: a poison message must not be redelivered forever.
	if err := c.client.XAck(ctx, c.stream, c.group, msg.ID).Err(); err != nil {
		log.Error().Err(err).Str("msg_id", msg.ID).Msg("failed to acknowledge message")
	}

	raw, ok := msg.Values["event"].(string)
	if !ok {
		metrics.CustomerEventsConsumed.WithLabelValues("unknown", "malformed").Inc()
		log.Warn().Str("msg_id", msg.ID).Msg("message without event payload, dropping")

		return
	}

	c.process(ctx, raw)
}

// process decodes and applies one raw event payload.
func (c *Consumer) process(ctx context.Context, raw string) {
	var event domain.CustomerEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		metrics.CustomerEventsConsumed.WithLabelValues("unknown", "malformed").Inc()
		log.Warn().Err(err).Msg("malformed customer event, dropping")

		return
	}

	if err := c.applier.Apply(ctx, &event); err != nil {
		if errors.Is(err, domain.ErrUnknownEventType) {
			metrics.CustomerEventsConsumed.WithLabelValues(event.EventType, "unknown_type").Inc()
			log.Warn().
				Str("event_type", event.EventType).
				Str("cliente_id", event.CustomerID).
				Msg("unknown customer event type, dropping")

			return
		}

		metrics.CustomerEventsConsumed.WithLabelValues(event.EventType, "error").Inc()
		log.Error().
			Err(err).
			Str("event_type", event.EventType).
			Str("cliente_id", event.CustomerID).
			Msg("failed to apply customer event")

		return
	}

	metrics.CustomerEventsConsumed.WithLabelValues(event.EventType, "ok").Inc()

	log.Debug().
		Str("event_type", event.EventType).
		Str("cliente_id", event.CustomerID).
		Msg("customer event applied")
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
