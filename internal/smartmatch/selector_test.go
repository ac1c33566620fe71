// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import (
	"testing"

	"github.com/tomtom215/oscarmatch/internal/models"
)

func scoredList(pairs ...any) []ScoredCandidate {
	out := make([]ScoredCandidate, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, ScoredCandidate{
			Movie:      models.Movie{ID: pairs[i].(string)},
			MatchScore: pairs[i+1].(int),
		})
	}
	return out
}

func TestSelectTop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scored []ScoredCandidate
		n      int
		want   []string
	}{
		{"highest first", scoredList("a", 40, "b", 90, "c", 70, "d", 10), 3, []string{"b", "c", "a"}},
		{"ties keep input order", scoredList("a", 50, "b", 80, "c", 50, "d", 50), 3, []string{"b", "a", "c"}},
		{"fewer than n", scoredList("a", 12), 3, []string{"a"}},
		{"zero n", scoredList("a", 12), 0, nil},
		{"negative n", scoredList("a", 12), -1, nil},
		{"empty", nil, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SelectTop(tt.scored, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Movie.ID != tt.want[i] {
					t.Errorf("[%d] = %s, want %s", i, got[i].Movie.ID, tt.want[i])
				}
				if got[i].Rank != i+1 {
					t.Errorf("[%d] rank = %d, want %d", i, got[i].Rank, i+1)
				}
			}
		})
	}
}

func TestSelectTop_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	in := scoredList("a", 1, "b", 2, "c", 3)
	SelectTop(in, 2)
	if in[0].Movie.ID != "a" || in[2].Movie.ID != "c" {
		t.Errorf("input reordered: %+v", in)
	}
}
