// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Task is one run of a periodic maintenance job.
type Task func(ctx context.Context) error

// PeriodicConfig holds configuration for a PeriodicService.
type PeriodicConfig struct {
	// Name identifies the service in supervisor and log output.
	Name string

	// Interval between runs. Defaults to one hour.
	Interval time.Duration

	// Timeout bounds a single run. Defaults to Interval.
	Timeout time.Duration

	// RunOnStart runs the task once before the first tick.
	RunOnStart bool
}

// PeriodicService runs a maintenance task on a ticker, such as badger value
// log GC or a DuckDB checkpoint. Task failures are logged and retried on the
// next tick; they never restart the service.
type PeriodicService struct {
	task   Task
	config PeriodicConfig
	logger zerolog.Logger

	runs     atomic.Int64
	failures atomic.Int64
}

// NewPeriodicService creates a periodic service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPeriodicService(task Task, cfg PeriodicConfig, logger zerolog.Logger) *PeriodicService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval
	}
	if cfg.Name == "" {
		cfg.Name = "periodic"
	}
	return &PeriodicService{
		task:   task,
		config: cfg,
		logger: logger.With().Str("service", cfg.Name).Logger(),
	}
}

// Serve implements suture.Service.
func (s *PeriodicService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.config.Interval).Msg("periodic service starting")

	if s.config.RunOnStart {
		s.run(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *PeriodicService) run(ctx context.Context) {
	s.runs.Add(1)

	runCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	if err := s.task(runCtx); err != nil {
		s.failures.Add(1)
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("periodic task failed")
		}
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("periodic task complete")
}

// Stats returns how many runs started and how many failed.
func (s *PeriodicService) Stats() (runs, failures int64) {
	return s.runs.Load(), s.failures.Load()
}

// String returns the service name for logging.
func (s *PeriodicService) String() string {
	return s.config.Name
}
