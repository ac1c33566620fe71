// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package events

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/models"
)

const consumerHandlerName = "recommended-movies-counter"

// Consumer counts recommended movies from RecommendationServed events.
// It implements suture.Service.
type Consumer struct {
	sub    message.Subscriber
	opts   Options
	logger zerolog.Logger

	ready     chan struct{}
	readyOnce sync.Once

	processed atomic.Int64
	rejected  atomic.Int64
}

// ConsumerStats is a snapshot of consumer counters.
type ConsumerStats struct {
	Processed int64
	Rejected  int64
}

// NewConsumer creates a consumer of TopicRecommendationServed on sub.
//
//nolint:gocritic // options and logger copied once at construction
func NewConsumer(sub message.Subscriber, opts Options, logger zerolog.Logger) *Consumer {
	return &Consumer{
		sub:    sub,
		opts:   opts,
		logger: logger.With().Str("component", "events-consumer").Logger(),
		ready:  make(chan struct{}),
	}
}

// newRouter builds a fresh router. A Watermill router runs only once, so
// every Serve call gets its own.
func (c *Consumer) newRouter() (*message.Router, error) {
	wmLogger := NewLoggerAdapter(c.logger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: c.opts.CloseTimeout}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)
	if c.opts.RetryMaxRetries > 0 {
		retry := middleware.Retry{
			MaxRetries:      c.opts.RetryMaxRetries,
			InitialInterval: c.opts.RetryInitialInterval,
			MaxInterval:     c.opts.RetryMaxInterval,
			Multiplier:      2.0,
			Logger:          wmLogger,
		}
		router.AddMiddleware(retry.Middleware)
	}

	router.AddConsumerHandler(consumerHandlerName, TopicRecommendationServed, c.sub, c.handle)
	return router, nil
}

// handle acknowledges malformed payloads after logging them. Retrying
// cannot fix them.
func (c *Consumer) handle(msg *message.Message) error {
	var event models.RecommendationServed
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		c.rejected.Add(1)
		c.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed event")
		return nil
	}

	for _, m := range event.Movies {
		metrics.RecordRecommendedMovie(m.MovieID)
	}
	c.processed.Add(1)

	c.logger.Debug().
		Str("event_id", event.EventID).
		Str("request_id", event.RequestID).
		Int("movies", len(event.Movies)).
		Msg("Recommendation event processed")
	return nil
}

// Serve runs the router until ctx is canceled.
func (c *Consumer) Serve(ctx context.Context) error {
	router, err := c.newRouter()
	if err != nil {
		return err
	}

	go func() {
		select {
		case <-router.Running():
			c.readyOnce.Do(func() { close(c.ready) })
		case <-ctx.Done():
		}
	}()

	c.logger.Info().Str("topic", TopicRecommendationServed).Msg("Event consumer started")
	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("event router: %w", err)
	}
	return ctx.Err()
}

// Ready is closed once the first router is receiving messages.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

// String implements fmt.Stringer for suture logs.
func (c *Consumer) String() string {
	return "events-consumer"
}

// Stats returns the consumer counters.
func (c *Consumer) Stats() ConsumerStats {
	return ConsumerStats{
		Processed: c.processed.Load(),
		Rejected:  c.rejected.Load(),
	}
}
