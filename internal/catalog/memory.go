// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package catalog

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/models"
)

// Memory is an in-process catalog. It backs the memory driver and tests.
type Memory struct {
	mu     sync.RWMutex
	movies map[string]models.Movie
}

// NewMemory creates a catalog holding a copy of movies.
func NewMemory(movies []models.Movie) *Memory {
	m := &Memory{movies: make(map[string]models.Movie, len(movies))}
	for i := range movies {
		m.movies[movies[i].ID] = movies[i]
	}
	return m
}

// UpsertMovies inserts or replaces movies by ID.
func (m *Memory) UpsertMovies(_ context.Context, movies []models.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range movies {
		m.movies[movies[i].ID] = movies[i]
	}
	return nil
}

// snapshot returns nominees matching keep, ordered by ID for determinism.
func (m *Memory) snapshot(keep func(*models.Movie) bool) []models.Movie {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Movie, 0, len(m.movies))
	for id := range m.movies {
		mv := m.movies[id]
		if keep(&mv) {
			out = append(out, mv)
		}
	}
	sortByID(out)
	return out
}

// ListNominees implements Catalog.
func (m *Memory) ListNominees(ctx context.Context, filter Filter) ([]models.Movie, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		metrics.RecordCatalogQuery("memory", "list_nominees", time.Since(start), err)
		return nil, err
	}

	out := m.snapshot(func(mv *models.Movie) bool {
		return mv.IsBestPictureNominee && filter.Matches(mv)
	})
	SortByVotes(out)

	metrics.RecordCatalogQuery("memory", "list_nominees", time.Since(start), nil)
	return out, nil
}

// Get implements Catalog.
func (m *Memory) Get(_ context.Context, id string) (*models.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mv, ok := m.movies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &mv, nil
}

// Random implements Catalog.
func (m *Memory) Random(_ context.Context, filter Filter) (*models.Movie, error) {
	pool := m.snapshot(func(mv *models.Movie) bool {
		return mv.IsBestPictureNominee && filter.Matches(mv)
	})
	if len(pool) == 0 {
		return nil, ErrNotFound
	}
	pick := pool[rand.IntN(len(pool))] //nolint:gosec // random pick is not security sensitive
	return &pick, nil
}

// Browse implements Catalog.
func (m *Memory) Browse(_ context.Context, filter BrowseFilter) ([]models.Movie, error) {
	f := filter.Normalize()
	out := m.snapshot(func(mv *models.Movie) bool { return browseMatches(mv, &f) })
	sortNewestFirst(out)
	return page(out, &f), nil
}

// Ping implements Catalog.
func (m *Memory) Ping(context.Context) error { return nil }

// Close implements Catalog.
func (m *Memory) Close() error { return nil }

func sortByID(movies []models.Movie) {
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
}
