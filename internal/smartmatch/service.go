// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/models"
)

// Service runs the Smart Match pipeline: filter, score, select, explain.
type Service struct {
	cfg       *Config
	scorer    *Scorer
	movies    MovieSource
	reasons   ReasonResolver
	publisher Publisher
	logger    zerolog.Logger
}

// NewService creates the pipeline. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(cfg *Config, movies MovieSource, reasons ReasonResolver, logger zerolog.Logger) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if movies == nil {
		return nil, errors.New("movie source is required")
	}
	if reasons == nil {
		return nil, errors.New("reason resolver is required")
	}

	return &Service{
		cfg:     cfg,
		scorer:  NewScorer(cfg.Scoring),
		movies:  movies,
		reasons: reasons,
		logger:  logger.With().Str("component", "smartmatch").Logger(),
	}, nil
}

// SetPublisher registers the event publisher. Nil disables events.
func (s *Service) SetPublisher(p Publisher) {
	s.publisher = p
}

// Scorer returns the scorer used by the pipeline.
func (s *Service) Scorer() *Scorer {
	return s.scorer
}

// ScoreAndRecommend returns up to TopN recommendations for prefs.
//
// It fails with ErrNoCandidates when filtering leaves nothing and with
// ErrCatalogUnavailable when the catalog cannot be read. Reason lookup and
// generation failures never fail the request.
func (s *Service) ScoreAndRecommend(ctx context.Context, prefs *models.Preferences) (*Result, error) {
	start := time.Now()
	p := prefs.Normalize()
	hash := p.Hash()

	logger := logging.Annotate(ctx, s.logger.With()).Str("preferences_hash", hash).Logger()

	movies, err := s.movies.ListNominees(ctx, catalog.FilterForDecade(p.Decade))
	if err != nil {
		metrics.RecordSmartMatch(metrics.OutcomeUnavailable, 0, time.Since(start))
		logger.Error().Err(err).Msg("Failed to load nominees")
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	filtered, err := s.cfg.Thresholds.Filter(movies, p.Decade, p.Popularity)
	if err != nil {
		metrics.RecordSmartMatch(metrics.OutcomeNoMatches, 0, time.Since(start))
		logger.Info().
			Int("catalog_size", len(movies)).
			Str("decade", p.Decade).
			Str("popularity", p.Popularity).
			Msg("No candidates after filtering")
		return nil, err
	}

	scored := s.scoreAll(filtered.Candidates, &p)
	top := SelectTop(scored, s.cfg.Limits.TopN)
	recs := s.resolveReasons(ctx, top, &p)

	result := &Result{
		Recommendations: recs,
		TotalAnalyzed:   len(filtered.Candidates),
		Success:         true,
		PreferencesHash: hash,
	}

	s.publish(ctx, result, logger)
	metrics.RecordSmartMatch(metrics.OutcomeSuccess, len(filtered.Candidates), time.Since(start))

	event := logger.Info().
		Int("candidates", len(filtered.Candidates)).
		Int("returned", len(recs)).
		Dur("duration", time.Since(start))
	if filtered.Thresholds != nil {
		event = event.Int("threshold_high", filtered.Thresholds.High).Int("threshold_low", filtered.Thresholds.Low)
	}
	event.Msg("Smart Match complete")

	return result, nil
}

// scoreAll scores candidates on a bounded set of workers. Output order
// matches input order.
func (s *Service) scoreAll(candidates []models.Movie, prefs *models.Preferences) []ScoredCandidate {
	out := make([]ScoredCandidate, len(candidates))

	workers := s.cfg.Limits.ScoringWorkers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers <= 1 {
		for i := range candidates {
			out[i] = ScoredCandidate{Movie: candidates[i], MatchScore: s.scorer.Score(&candidates[i], prefs)}
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range candidates {
		g.Go(func() error {
			out[i] = ScoredCandidate{Movie: candidates[i], MatchScore: s.scorer.Score(&candidates[i], prefs)}
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// resolveReasons fetches the reason of every selected movie concurrently.
func (s *Service) resolveReasons(ctx context.Context, top []RankedCandidate, prefs *models.Preferences) []models.MovieRecommendation {
	recs := make([]models.MovieRecommendation, len(top))

	var wg sync.WaitGroup
	for i := range top {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := &top[i]
			text, source := s.reasons.Resolve(ctx, &c.Movie, prefs, c.MatchScore)
			recs[i] = models.MovieRecommendation{
				Movie:        c.Movie,
				MatchScore:   c.MatchScore,
				Reason:       text,
				Rank:         c.Rank,
				ReasonSource: source,
			}
		}(i)
	}
	wg.Wait()
	return recs
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (s *Service) publish(ctx context.Context, result *Result, logger zerolog.Logger) {
	if s.publisher == nil {
		return
	}

	event := &models.RecommendationServed{
		EventID:         uuid.NewString(),
		RequestID:       logging.RequestIDFromContext(ctx),
		PreferencesHash: result.PreferencesHash,
		TotalAnalyzed:   result.TotalAnalyzed,
		Movies:          make([]models.ServedRecommended, len(result.Recommendations)),
		ServedAt:        time.Now().UTC(),
	}
	for i, r := range result.Recommendations {
		event.Movies[i] = models.ServedRecommended{
			MovieID:      r.Movie.ID,
			Rank:         r.Rank,
			MatchScore:   r.MatchScore,
			ReasonSource: r.ReasonSource,
		}
	}

	if err := s.publisher.PublishRecommendationServed(ctx, event); err != nil {
		logger.Warn().Err(err).Str("event_id", event.EventID).Msg("Failed to publish recommendation event")
	}
}

// Explain scores one movie and returns every component of the score.
func (s *Service) Explain(ctx context.Context, movieID string, prefs *models.Preferences) (*Explanation, error) {
	movie, err := s.movies.Get(ctx, movieID)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	p := prefs.Normalize()
	return &Explanation{
		Movie:     *movie,
		Breakdown: s.scorer.Breakdown(movie, &p),
		Eligible:  movie.IsBestPictureNominee && movie.HasTags(),
	}, nil
}
