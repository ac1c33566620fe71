// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package models

// moodLabels maps quiz mood identifiers to the mood_tags stored in the catalog.
var moodLabels = map[string]string{
	MoodInspiration: "Inspiracja",
	MoodAdrenaline:  "Adrenalina",
	MoodDeepEmotion: "Głębokie emocje",
	MoodHumor:       "Humor",
	MoodAmbitious:   "Coś ambitnego",
	MoodRomantic:    "Romantyczny wieczór",
}

var timeLabels = map[string]string{
	TimeShort:  "krótki film (do 2 godzin)",
	TimeNormal: "standardowa długość (1,5-3 godziny)",
	TimeLong:   "długi seans (ponad 2,5 godziny)",
	TimeAny:    "długość nie ma znaczenia",
}

var decadeLabels = map[string]string{
	Decade2000s: "lata 2000-2010",
	Decade2010s: "lata 2011-2020",
	DecadeBoth:  "obie dekady",
}

var popularityLabels = map[string]string{
	PopularityBlockbuster: "popularne hity",
	PopularityClassic:     "uznane klasyki",
	PopularityHiddenGem:   "mniej znane perełki",
	PopularityAny:         "popularność nie ma znaczenia",
}

// MoodLabel returns the catalog mood tag for a quiz mood identifier.
func MoodLabel(mood string) (string, bool) {
	label, ok := moodLabels[mood]
	return label, ok
}

// MoodLabels returns all mood tags in quiz order.
func MoodLabels() []string {
	return []string{
		moodLabels[MoodInspiration],
		moodLabels[MoodAdrenaline],
		moodLabels[MoodDeepEmotion],
		moodLabels[MoodHumor],
		moodLabels[MoodAmbitious],
		moodLabels[MoodRomantic],
	}
}

// TimeLabel returns the human-readable time bucket, or the raw value if unknown.
func TimeLabel(t string) string { return labelOr(timeLabels, t) }

// DecadeLabel returns the human-readable decade choice.
func DecadeLabel(d string) string { return labelOr(decadeLabels, d) }

// PopularityLabel returns the human-readable popularity choice.
func PopularityLabel(p string) string { return labelOr(popularityLabels, p) }

func labelOr(table map[string]string, key string) string {
	if label, ok := table[key]; ok {
		return label
	}
	return key
}
