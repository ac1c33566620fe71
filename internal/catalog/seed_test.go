// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinSeed(t *testing.T) {
	t.Parallel()

	movies, err := BuiltinSeed()
	if err != nil {
		t.Fatalf("BuiltinSeed() error = %v", err)
	}
	if len(movies) < 20 {
		t.Fatalf("BuiltinSeed() returned %d movies, want at least 20", len(movies))
	}

	var tagged, untagged int
	for i := range movies {
		m := &movies[i]
		if !m.IsBestPictureNominee {
			t.Errorf("%s is not marked as a nominee", m.ID)
		}
		if m.OscarYear == nil {
			t.Errorf("%s has no oscar_year", m.ID)
		}
		if m.HasTags() {
			tagged++
		} else {
			untagged++
		}
	}
	if tagged == 0 || untagged == 0 {
		t.Errorf("seed should mix tagged (%d) and untagged (%d) movies", tagged, untagged)
	}
}

func TestParseSeed_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"not json", `{`, "decode seed"},
		{"unknown field", `[{"id":"a","title":"A","bogus":1}]`, "decode seed"},
		{"missing id", `[{"title":"A"}]`, "id is required"},
		{"missing title", `[{"id":"a"}]`, "title is required"},
		{"duplicate", `[{"id":"a","title":"A"},{"id":"a","title":"B"}]`, "duplicate id"},
		{"importance range", `[{"id":"a","title":"A","thematic_tags":[{"tag":"Dramat","importance":1.5}]}]`, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSeed([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseSeed() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSeed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "movies.json")
	data := `[{"id":"a","title":"A","is_best_picture_nominee":true,"vote_count":42}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	movies, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	if len(movies) != 1 || movies[0].VoteCountValue() != 42 {
		t.Errorf("LoadSeed() = %+v", movies)
	}

	if _, err := LoadSeed(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadSeed(missing) expected error")
	}

	builtin, err := LoadSeed("")
	if err != nil || len(builtin) == 0 {
		t.Errorf("LoadSeed(\"\") = %d movies, err %v", len(builtin), err)
	}
}
