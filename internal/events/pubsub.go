// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package events

import (
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
)

// PubSub is a publisher and subscriber pair over one transport.
type PubSub struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
}

// Close closes both sides.
func (p *PubSub) Close() error {
	var errs []error
	if err := p.Publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close publisher: %w", err))
	}
	// GoChannel is one object serving both sides.
	if c, ok := p.Subscriber.(message.Publisher); !ok || c != p.Publisher {
		if err := p.Subscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close subscriber: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewPubSub creates the transport selected by opts.Driver.
//
//nolint:gocritic // options copied once at construction
func NewPubSub(opts Options, logger watermill.LoggerAdapter) (*PubSub, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	switch opts.Driver {
	case DriverNATS:
		return newNATSPubSub(&opts, logger)
	default:
		ch := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: opts.BufferSize,
		}, logger)
		return &PubSub{Publisher: ch, Subscriber: ch}, nil
	}
}

// newNATSPubSub uses core NATS. Events are counters, so JetStream
// persistence is not required.
func newNATSPubSub(opts *Options, logger watermill.LoggerAdapter) (*PubSub, error) {
	natsOpts := []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(opts.MaxReconnects),
		natsgo.ReconnectWait(opts.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}
	marshaler := &wmNats.NATSMarshaler{}
	js := wmNats.JetStreamConfig{Disabled: true}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         opts.NATSURL,
		NatsOptions: natsOpts,
		Marshaler:   marshaler,
		JetStream:   js,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create nats publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              opts.NATSURL,
		QueueGroupPrefix: opts.QueueGroup,
		SubscribersCount: 1,
		CloseTimeout:     opts.CloseTimeout,
		NatsOptions:      natsOpts,
		Unmarshaler:      marshaler,
		JetStream:        js,
	}, logger)
	if err != nil {
		_ = pub.Close()
		return nil, fmt.Errorf("create nats subscriber: %w", err)
	}

	return &PubSub{Publisher: pub, Subscriber: sub}, nil
}
