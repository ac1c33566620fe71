// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/tomtom215/oscarmatch/internal/models"
)

// ErrNotFound is returned when a movie does not exist.
var ErrNotFound = errors.New("movie not found")

// Filter restricts queries by Oscar ceremony year. Zero bounds are open.
type Filter struct {
	FromYear int
	ToYear   int
}

// FilterForDecade returns the filter of a decade choice. "both" and unknown
// values return an open filter.
func FilterForDecade(decade string) Filter {
	from, to, ok := models.DecadeRange(decade)
	if !ok {
		return Filter{}
	}
	return Filter{FromYear: from, ToYear: to}
}

// Matches reports whether the movie's oscar_year lies inside the filter.
// A movie without oscar_year only matches an open filter.
func (f Filter) Matches(m *models.Movie) bool {
	if f.FromYear == 0 && f.ToYear == 0 {
		return true
	}
	if m.OscarYear == nil {
		return false
	}
	y := *m.OscarYear
	if f.FromYear != 0 && y < f.FromYear {
		return false
	}
	if f.ToYear != 0 && y > f.ToYear {
		return false
	}
	return true
}

// BrowseFilter drives the decade and mood discovery modes.
type BrowseFilter struct {
	Filter

	// Mood is a catalog mood tag such as "Humor". Empty means any mood.
	Mood string

	// WinnersOnly keeps Best Picture winners only.
	WinnersOnly bool

	Limit  int
	Offset int
}

// Browse limits.
const (
	DefaultBrowseLimit = 20
	MaxBrowseLimit     = 100
)

// Normalize clamps Limit and Offset into their allowed ranges.
func (b BrowseFilter) Normalize() BrowseFilter {
	if b.Limit <= 0 {
		b.Limit = DefaultBrowseLimit
	}
	if b.Limit > MaxBrowseLimit {
		b.Limit = MaxBrowseLimit
	}
	if b.Offset < 0 {
		b.Offset = 0
	}
	return b
}

// Catalog is the read side of the movie store.
type Catalog interface {
	// ListNominees returns every Best Picture nominee inside filter, ordered
	// by vote_count descending with unknown counts last.
	ListNominees(ctx context.Context, filter Filter) ([]models.Movie, error)

	// Get returns one movie by ID or ErrNotFound.
	Get(ctx context.Context, id string) (*models.Movie, error)

	// Random returns a random nominee inside filter or ErrNotFound.
	Random(ctx context.Context, filter Filter) (*models.Movie, error)

	// Browse returns nominees for the discovery views, newest ceremony first.
	Browse(ctx context.Context, filter BrowseFilter) ([]models.Movie, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// Writer is implemented by catalogs that can import movies.
type Writer interface {
	UpsertMovies(ctx context.Context, movies []models.Movie) error
}

// SortByVotes orders movies by vote_count descending, unknown counts last.
// The sort is stable so equal counts keep their relative order.
func SortByVotes(movies []models.Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		a, b := movies[i].VoteCount, movies[j].VoteCount
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}

// sortNewestFirst orders movies by oscar_year descending, then title.
func sortNewestFirst(movies []models.Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		yi, yj := oscarYear(&movies[i]), oscarYear(&movies[j])
		if yi != yj {
			return yi > yj
		}
		return movies[i].Title < movies[j].Title
	})
}

func oscarYear(m *models.Movie) int {
	if m.OscarYear == nil {
		return 0
	}
	return *m.OscarYear
}

// browseMatches applies the non-year parts of a browse filter.
func browseMatches(m *models.Movie, f *BrowseFilter) bool {
	if !m.IsBestPictureNominee || !f.Matches(m) {
		return false
	}
	if f.WinnersOnly && !m.IsBestPictureWinner {
		return false
	}
	if f.Mood != "" && !m.HasMood(f.Mood) {
		return false
	}
	return true
}

// page slices movies according to Offset and Limit.
func page(movies []models.Movie, f *BrowseFilter) []models.Movie {
	if f.Offset >= len(movies) {
		return []models.Movie{}
	}
	end := f.Offset + f.Limit
	if end > len(movies) {
		end = len(movies)
	}
	return movies[f.Offset:end]
}
