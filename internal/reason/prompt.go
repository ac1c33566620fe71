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

// Vote count limits of the popularity level shown in prompts.
const (
	popularityVeryHighAbove = 100000
	popularityLowBelow      = 20000
)

const systemInstruction = "Jesteś ekspertem filmowym, który poleca filmy nominowane do Oscara " +
	"w kategorii Najlepszy Film. Odpowiadasz po polsku, w 1-2 zdaniach, ciepło i konkretnie. " +
	"Wyjaśnij, dlaczego ten film pasuje do preferencji widza. Nie zdradzaj fabuły."

// Prompt is the text sent to the generator.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt renders the user's preferences and the movie's attributes.
func BuildPrompt(movie *models.Movie, prefs *models.Preferences, score int) Prompt {
	var b strings.Builder

	b.WriteString("Preferencje widza:\n")
	if label, ok := models.MoodLabel(prefs.Mood); ok {
		fmt.Fprintf(&b, "- Nastrój: %s\n", label)
	}
	fmt.Fprintf(&b, "- Gatunki: %s\n", genresLabel(prefs))
	fmt.Fprintf(&b, "- Dekada: %s\n", models.DecadeLabel(prefs.DecadeOrDefault()))
	fmt.Fprintf(&b, "- Popularność: %s\n", models.PopularityLabel(prefs.PopularityOrDefault()))
	fmt.Fprintf(&b, "- Czas: %s\n", models.TimeLabel(prefs.Time))

	fmt.Fprintf(&b, "\nFilm: %s", movie.Title)
	if movie.Year > 0 {
		fmt.Fprintf(&b, " (%d)", movie.Year)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Gatunki: %s\n", movieGenres(movie))
	if len(movie.MoodTags) > 0 {
		fmt.Fprintf(&b, "- Nastroje: %s\n", strings.Join(movie.MoodTags, ", "))
	}
	if movie.Runtime != nil {
		fmt.Fprintf(&b, "- Czas trwania: %d min\n", *movie.Runtime)
	}
	if rating, ok := movie.Rating(); ok {
		fmt.Fprintf(&b, "- Ocena: %.1f/10\n", rating)
	}
	fmt.Fprintf(&b, "- Popularność: %s\n", PopularityLevel(movie.VoteCount))
	if movie.OscarYear != nil {
		if decade := models.DecadeOf(*movie.OscarYear); decade != "" {
			fmt.Fprintf(&b, "- Dekada: %s\n", models.DecadeLabel(decade))
		}
	}
	fmt.Fprintf(&b, "- Oscar: %s\n", oscarStatus(movie))

	fmt.Fprintf(&b, "\nDopasowanie: %d%%. Napisz 1-2 zdania, dlaczego ten film pasuje do widza.", score)

	return Prompt{System: systemInstruction, User: b.String()}
}

// PopularityLevel labels a vote count for prompts.
func PopularityLevel(voteCount *int) string {
	if voteCount == nil {
		return "nieznana"
	}
	switch {
	case *voteCount > popularityVeryHighAbove:
		return "bardzo wysoka"
	case *voteCount < popularityLowBelow:
		return "niska"
	default:
		return "średnia"
	}
}

func genresLabel(prefs *models.Preferences) string {
	if prefs.IsSurprise() {
		return "zaskocz mnie"
	}
	genres := prefs.ConcreteGenres()
	if len(genres) == 0 {
		return "bez preferencji"
	}
	return strings.Join(genres, ", ")
}

func movieGenres(movie *models.Movie) string {
	if len(movie.ThematicTags) == 0 {
		return "brak danych"
	}
	parts := make([]string, len(movie.ThematicTags))
	for i, t := range movie.ThematicTags {
		parts[i] = fmt.Sprintf("%s (%.0f%%)", t.Tag, t.Importance*100)
	}
	return strings.Join(parts, ", ")
}

func oscarStatus(movie *models.Movie) string {
	if movie.IsBestPictureWinner {
		return "zwycięzca w kategorii Najlepszy Film"
	}
	return "nominacja w kategorii Najlepszy Film"
}
