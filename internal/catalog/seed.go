// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/oscarmatch/internal/models"
)

//go:embed seed/nominees.json
var builtinSeed []byte

// BuiltinSeed returns the nominees bundled with the binary.
func BuiltinSeed() ([]models.Movie, error) {
	return ParseSeed(builtinSeed)
}

// LoadSeed reads a JSON array of movies from path. An empty path returns
// the bundled seed.
func LoadSeed(path string) ([]models.Movie, error) {
	if path == "" {
		return BuiltinSeed()
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a JSON array of movies and validates each entry.
func ParseSeed(data []byte) ([]models.Movie, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var movies []models.Movie
	if err := dec.Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[string]struct{}, len(movies))
	for i := range movies {
		m := &movies[i]
		if strings.TrimSpace(m.ID) == "" {
			return nil, fmt.Errorf("seed entry %d: id is required", i)
		}
		if strings.TrimSpace(m.Title) == "" {
			return nil, fmt.Errorf("seed entry %q: title is required", m.ID)
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("seed entry %q: duplicate id", m.ID)
		}
		seen[m.ID] = struct{}{}

		for _, tag := range m.ThematicTags {
			if tag.Importance < 0.1 || tag.Importance > 1.0 {
				return nil, fmt.Errorf("seed entry %q: tag %q importance %.2f out of range [0.1, 1.0]",
					m.ID, tag.Tag, tag.Importance)
			}
		}
	}
	return movies, nil
}
