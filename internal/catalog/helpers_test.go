// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package catalog

import (
	"testing"

	"github.com/tomtom215/oscarmatch/internal/models"
)

func nominee(id string, oscarYear int, votes *int, winner bool, moods ...string) models.Movie {
	return models.Movie{
		ID:                   id,
		Title:                "Title " + id,
		OscarYear:            models.IntPtr(oscarYear),
		VoteCount:            votes,
		VoteAverage:          models.Float64Ptr(7.5),
		Runtime:              models.IntPtr(120),
		IsBestPictureNominee: true,
		IsBestPictureWinner:  winner,
		ThematicTags:         []models.ThematicTag{{Tag: "Dramat", Importance: 0.8}},
		MoodTags:             moods,
	}
}

func fixtureMovies() []models.Movie {
	notNominee := nominee("not-nominee", 2005, models.IntPtr(99999), false, "Humor")
	notNominee.IsBestPictureNominee = false

	return []models.Movie{
		nominee("a", 2003, models.IntPtr(5000), false, "Humor"),
		nominee("b", 2008, models.IntPtr(20000), true, "Adrenalina"),
		nominee("c", 2015, nil, false, "Humor"),
		nominee("d", 2019, models.IntPtr(12000), true, "Głębokie emocje"),
		nominee("e", 2021, models.IntPtr(3000), false, "Humor"),
		notNominee,
	}
}

func movieIDs(movies []models.Movie) []string {
	ids := make([]string, len(movies))
	for i := range movies {
		ids[i] = movies[i].ID
	}
	return ids
}

func checkIDs(t *testing.T, got []models.Movie, want ...string) {
	t.Helper()
	ids := movieIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}
