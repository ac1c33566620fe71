// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import (
	"testing"

	"github.com/tomtom215/oscarmatch/internal/models"
)

// tagged returns a scoreable nominee.
func tagged(id string, oscarYear int, votes *int) models.Movie {
	return models.Movie{
		ID:                   id,
		Title:                "Movie " + id,
		OscarYear:            models.IntPtr(oscarYear),
		VoteCount:            votes,
		VoteAverage:          models.Float64Ptr(7.0),
		Runtime:              models.IntPtr(120),
		IsBestPictureNominee: true,
		ThematicTags:         []models.ThematicTag{{Tag: "Dramat", Importance: 0.6}},
		MoodTags:             []string{"Głębokie emocje"},
	}
}

func ids(movies []models.Movie) []string {
	out := make([]string, len(movies))
	for i := range movies {
		out[i] = movies[i].ID
	}
	return out
}

func checkIDs(t *testing.T, got []models.Movie, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("ids = %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("ids = %v, want %v", g, want)
		}
	}
}
