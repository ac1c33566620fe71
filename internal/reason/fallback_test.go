// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reason

import (
	"testing"

	"github.com/tomtom215/oscarmatch/internal/models"
)

func TestFallback(t *testing.T) {
	t.Parallel()

	lowRated := parasite()
	lowRated.VoteAverage = models.Float64Ptr(7.4)
	lowRated.IsBestPictureWinner = false
	lowRated.OscarYear = models.IntPtr(2004)

	noYear := parasite()
	noYear.OscarYear = nil
	noYear.VoteAverage = nil

	tests := []struct {
		name  string
		movie *models.Movie
		prefs models.Preferences
		want  string
	}{
		{
			name:  "genre with high rating",
			movie: parasite(),
			prefs: models.Preferences{Genres: []string{"Dramat", "Thriller"}},
			want:  "Doskonały wybór dla miłośników gatunku Thriller, z wysoką oceną 8.5/10.",
		},
		{
			name:  "genre only",
			movie: lowRated,
			prefs: models.Preferences{Genres: []string{"Dramat"}},
			want:  "Ten film świetnie pasuje do Twojego zamiłowania do gatunku Dramat.",
		},
		{
			name:  "no matching genre, blockbuster",
			movie: parasite(),
			prefs: models.Preferences{Genres: []string{"Western"}, Popularity: models.PopularityBlockbuster},
			want:  "Zdobywca Oscara za najlepszy film (lata 2011-2020) z oceną 8.5/10, jeden z najpopularniejszych oscarowych hitów.",
		},
		{
			name:  "surprise, hidden gem",
			movie: lowRated,
			prefs: models.Preferences{Genres: []string{models.GenreSurprise}, Popularity: models.PopularityHiddenGem},
			want:  "Nominowany do Oscara za najlepszy film (lata 2000-2010), mniej znana, ale wysoko ceniona perełka.",
		},
		{
			name:  "classic",
			movie: lowRated,
			prefs: models.Preferences{Popularity: models.PopularityClassic},
			want:  "Nominowany do Oscara za najlepszy film (lata 2000-2010), uznany klasyk o średniej popularności.",
		},
		{
			name:  "any popularity, no year, no rating",
			movie: noYear,
			prefs: models.Preferences{},
			want:  "Zdobywca Oscara za najlepszy film.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fallback(tt.movie, &tt.prefs); got != tt.want {
				t.Errorf("Fallback() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestFallback_Deterministic(t *testing.T) {
	t.Parallel()

	prefs := &models.Preferences{Genres: []string{"Thriller"}}
	first := Fallback(parasite(), prefs)
	for range 10 {
		if got := Fallback(parasite(), prefs); got != first {
			t.Fatalf("Fallback() not deterministic: %q vs %q", got, first)
		}
	}
}
