// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package textgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/metrics"
)

// BreakerOptions configures the circuit breaker.
type BreakerOptions struct {
	Name string

	// MaxRequests allowed while half-open.
	MaxRequests uint32

	// Interval resets the counts while closed.
	Interval time.Duration

	// Timeout is how long the circuit stays open.
	Timeout time.Duration

	// MinRequests and FailureRatio decide when to trip.
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerOptions returns the production breaker settings.
func DefaultBreakerOptions() BreakerOptions {
	return BreakerOptions{
		Name:         "textgen",
		MaxRequests:  2,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// BreakerClient wraps a Generator with a circuit breaker so a failing
// service is skipped quickly and callers go straight to their fallback.
type BreakerClient struct {
	next Generator
	cb   *gobreaker.CircuitBreaker[Response]
	name string
}

// NewBreakerClient wraps next.
func NewBreakerClient(next Generator, opts BreakerOptions) *BreakerClient {
	if opts.Name == "" {
		opts.Name = "textgen"
	}
	metrics.CircuitBreakerState.WithLabelValues(opts.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[Response](gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: opts.MaxRequests,
		Interval:    opts.Interval,
		Timeout:     opts.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < opts.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= opts.FailureRatio {
				logging.Warn().
					Str("breaker", opts.Name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
		// A canceled request says nothing about the service's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerClient{next: next, cb: cb, name: opts.Name}
}

// Generate implements Generator.
func (b *BreakerClient) Generate(ctx context.Context, req Request) (Response, error) {
	resp, err := b.cb.Execute(func() (Response, error) {
		return b.next.Generate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return Response{}, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return Response{}, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return resp, nil
}

// State returns the current breaker state name.
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
