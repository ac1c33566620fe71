// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reason

import (
	"fmt"
	"strings"

	"github.com/tomtom215/oscarmatch/internal/models"
)

// highRating is the minimum vote average quoted in fallback sentences.
const highRating = 8.0

var popularityPhrases = map[string]string{
	models.PopularityBlockbuster: "jeden z najpopularniejszych oscarowych hitów",
	models.PopularityHiddenGem:   "mniej znana, ale wysoko ceniona perełka",
	models.PopularityClassic:     "uznany klasyk o średniej popularności",
}

// Fallback returns a deterministic reason. It needs no network and never
// returns an empty string.
func Fallback(movie *models.Movie, prefs *models.Preferences) string {
	if tag, ok := bestMatchingTag(movie, prefs); ok {
		if rating, ok := movie.Rating(); ok && rating >= highRating {
			return fmt.Sprintf("Doskonały wybór dla miłośników gatunku %s, z wysoką oceną %.1f/10.", tag, rating)
		}
		return fmt.Sprintf("Ten film świetnie pasuje do Twojego zamiłowania do gatunku %s.", tag)
	}
	return genericSentence(movie, prefs)
}

// bestMatchingTag returns the movie's highest-importance tag among the
// requested genres. Ties keep the first requested genre.
func bestMatchingTag(movie *models.Movie, prefs *models.Preferences) (string, bool) {
	var (
		best      string
		bestScore float64
		found     bool
	)
	for _, g := range prefs.ConcreteGenres() {
		importance, ok := movie.TagImportance(g)
		if !ok {
			continue
		}
		if !found || importance > bestScore {
			best, bestScore, found = g, importance, true
		}
	}
	return best, found
}

func genericSentence(movie *models.Movie, prefs *models.Preferences) string {
	var b strings.Builder

	if movie.IsBestPictureWinner {
		b.WriteString("Zdobywca Oscara za najlepszy film")
	} else {
		b.WriteString("Nominowany do Oscara za najlepszy film")
	}
	if movie.OscarYear != nil {
		if decade := models.DecadeOf(*movie.OscarYear); decade != "" {
			fmt.Fprintf(&b, " (%s)", models.DecadeLabel(decade))
		}
	}
	if rating, ok := movie.Rating(); ok && rating >= highRating {
		fmt.Fprintf(&b, " z oceną %.1f/10", rating)
	}
	if phrase, ok := popularityPhrases[prefs.PopularityOrDefault()]; ok {
		b.WriteString(", ")
		b.WriteString(phrase)
	}
	b.WriteString(".")
	return b.String()
}
