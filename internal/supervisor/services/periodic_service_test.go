// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*PeriodicService)(nil)

func TestNewPeriodicService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewPeriodicService(func(context.Context) error { return nil }, PeriodicConfig{}, zerolog.Nop())

	if svc.config.Interval != time.Hour || svc.config.Timeout != time.Hour {
		t.Errorf("interval/timeout = %v/%v, want 1h/1h", svc.config.Interval, svc.config.Timeout)
	}
	if svc.String() != "periodic" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestPeriodicService_RunsOnTicker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	svc := NewPeriodicService(func(context.Context) error {
		calls.Add(1)
		return nil
	}, PeriodicConfig{Name: "badger-gc", Interval: 10 * time.Millisecond}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want DeadlineExceeded", err)
	}
	if calls.Load() < 3 {
		t.Errorf("task ran %d times, want at least 3", calls.Load())
	}
}

func TestPeriodicService_RunOnStartAndFailures(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 1)
	svc := NewPeriodicService(func(context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		return errors.New("checkpoint failed")
	}, PeriodicConfig{Name: "duckdb-checkpoint", Interval: time.Hour, RunOnStart: true}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("task did not run on start")
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want Canceled", err)
	}
	runs, failures := svc.Stats()
	if runs != 1 || failures != 1 {
		t.Errorf("Stats() = %d/%d, want 1/1", runs, failures)
	}
}

func TestPeriodicService_TaskTimeout(t *testing.T) {
	t.Parallel()

	sawDeadline := make(chan bool, 1)
	svc := NewPeriodicService(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		sawDeadline <- ok
		return nil
	}, PeriodicConfig{Interval: time.Hour, Timeout: time.Second, RunOnStart: true}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = svc.Serve(ctx) }()
	defer cancel()

	select {
	case ok := <-sawDeadline:
		if !ok {
			t.Error("task context has no deadline")
		}
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}
