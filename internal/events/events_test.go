// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/models"
)

func testEvent(ids ...string) *models.RecommendationServed {
	e := &models.RecommendationServed{
		EventID:         "evt-" + ids[0],
		RequestID:       "req-1",
		PreferencesHash: "abc123",
		TotalAnalyzed:   7,
		ServedAt:        time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC),
	}
	for i, id := range ids {
		e.Movies = append(e.Movies, models.ServedRecommended{MovieID: id, Rank: i + 1, MatchScore: 90 - i})
	}
	return e
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"nats without url", func(o *Options) { o.Driver = DriverNATS }, true},
		{"nats with url", func(o *Options) { o.Driver = DriverNATS; o.NATSURL = "nats://localhost:4222" }, false},
		{"unknown driver", func(o *Options) { o.Driver = "kafka" }, true},
		{"negative retries", func(o *Options) { o.RetryMaxRetries = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := DefaultOptions()
			tt.mutate(&opts)
			if err := opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

type recordingPublisher struct {
	topic string
	msgs  []*message.Message
	err   error
}

func (r *recordingPublisher) Publish(topic string, msgs ...*message.Message) error {
	r.topic = topic
	r.msgs = append(r.msgs, msgs...)
	return r.err
}

func (r *recordingPublisher) Close() error { return nil }

func TestPublisher_PublishRecommendationServed(t *testing.T) {
	t.Parallel()

	rec := &recordingPublisher{}
	pub := NewPublisher(rec)

	event := testEvent("m1", "m2")
	if err := pub.PublishRecommendationServed(context.Background(), event); err != nil {
		t.Fatalf("PublishRecommendationServed() error = %v", err)
	}

	if rec.topic != TopicRecommendationServed {
		t.Errorf("topic = %q, want %q", rec.topic, TopicRecommendationServed)
	}
	if len(rec.msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(rec.msgs))
	}

	msg := rec.msgs[0]
	if msg.UUID != "evt-m1" {
		t.Errorf("UUID = %q, want event id", msg.UUID)
	}
	if msg.Metadata.Get("request_id") != "req-1" || msg.Metadata.Get("preferences_hash") != "abc123" {
		t.Errorf("metadata = %v", msg.Metadata)
	}

	var decoded models.RecommendationServed
	if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if len(decoded.Movies) != 2 || decoded.Movies[1].MovieID != "m2" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestPublisher_Errors(t *testing.T) {
	t.Parallel()

	rec := &recordingPublisher{err: errors.New("nats: connection closed")}
	pub := NewPublisher(rec)

	before := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues(TopicRecommendationServed, "error"))
	if err := pub.PublishRecommendationServed(context.Background(), testEvent("m1")); err == nil {
		t.Fatal("expected transport error")
	}
	if got := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues(TopicRecommendationServed, "error")); got < before+1 {
		t.Errorf("error counter = %v, want at least %v", got, before+1)
	}

	_ = pub.Close()
	if err := pub.PublishRecommendationServed(context.Background(), testEvent("m1")); !errors.Is(err, ErrPublisherClosed) {
		t.Errorf("error = %v, want ErrPublisherClosed", err)
	}
}

func TestConsumer_Handle(t *testing.T) {
	t.Parallel()

	c := NewConsumer(nil, DefaultOptions(), logging.Nop())

	counter := metrics.SmartMatchRecommendedMovies.WithLabelValues("handle-test-movie")
	before := testutil.ToFloat64(counter)

	data, err := json.Marshal(testEvent("handle-test-movie"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.handle(message.NewMessage("1", data)); err != nil {
		t.Fatalf("handle() error = %v", err)
	}
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("counter = %v, want %v", got, before+1)
	}

	if err := c.handle(message.NewMessage("2", []byte("{not json"))); err != nil {
		t.Errorf("malformed payload must be acknowledged, got %v", err)
	}

	stats := c.Stats()
	if stats.Processed != 1 || stats.Rejected != 1 {
		t.Errorf("Stats() = %+v, want 1 processed and 1 rejected", stats)
	}
}

func TestGoChannel_EndToEnd(t *testing.T) {
	t.Parallel()

	ps, err := NewPubSub(DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewPubSub() error = %v", err)
	}
	t.Cleanup(func() { _ = ps.Close() })

	consumer := NewConsumer(ps.Subscriber, DefaultOptions(), logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Serve(ctx) }()

	select {
	case <-consumer.Ready():
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("consumer did not start")
	}

	counter := metrics.SmartMatchRecommendedMovies.WithLabelValues("e2e-movie")
	before := testutil.ToFloat64(counter)

	pub := NewPublisher(ps.Publisher)
	if err := pub.PublishRecommendationServed(context.Background(), testEvent("e2e-movie", "e2e-other")); err != nil {
		t.Fatalf("publish error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for consumer.Stats().Processed < 1 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("event was not consumed")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("counter = %v, want %v", got, before+1)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("consumer did not stop")
	}
}
