// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package events

import (
	"fmt"
	"time"
)

// TopicRecommendationServed is the topic of RecommendationServed events.
const TopicRecommendationServed = "smartmatch.recommended"

// Transport drivers.
const (
	DriverGoChannel = "gochannel"
	DriverNATS      = "nats"
)

// Options configures the event transport and the consumer router.
type Options struct {
	// Driver selects the transport: "gochannel" or "nats".
	Driver string

	// NATSURL is the server URL when Driver is "nats".
	NATSURL string

	// QueueGroup load-balances consumers across instances (nats only).
	QueueGroup string

	// MaxReconnects and ReconnectWait control NATS reconnection.
	MaxReconnects int
	ReconnectWait time.Duration

	// BufferSize is the per-subscriber channel buffer (gochannel only).
	BufferSize int64

	// Handler retry policy.
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration

	// CloseTimeout bounds how long handlers may run after shutdown begins.
	CloseTimeout time.Duration
}

// DefaultOptions returns in-process defaults.
func DefaultOptions() Options {
	return Options{
		Driver:               DriverGoChannel,
		QueueGroup:           "oscarmatch",
		MaxReconnects:        -1,
		ReconnectWait:        2 * time.Second,
		BufferSize:           256,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     2 * time.Second,
		CloseTimeout:         10 * time.Second,
	}
}

// Validate checks the options.
//
//nolint:gocritic // value receiver keeps options immutable
func (o Options) Validate() error {
	switch o.Driver {
	case DriverGoChannel:
	case DriverNATS:
		if o.NATSURL == "" {
			return fmt.Errorf("events: nats_url is required for the nats driver")
		}
	default:
		return fmt.Errorf("events: unknown driver %q", o.Driver)
	}
	if o.RetryMaxRetries < 0 {
		return fmt.Errorf("events: retry_max_retries must be >= 0, got %d", o.RetryMaxRetries)
	}
	return nil
}
