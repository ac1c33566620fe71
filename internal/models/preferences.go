// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Mood identifiers accepted by the Smart Match quiz.
const (
	MoodInspiration = "inspiration"
	MoodAdrenaline  = "adrenaline"
	MoodDeepEmotion = "deep-emotion"
	MoodHumor       = "humor"
	MoodAmbitious   = "ambitious"
	MoodRomantic    = "romantic"
)

// Available time buckets.
const (
	TimeShort  = "short"
	TimeNormal = "normal"
	TimeLong   = "long"
	TimeAny    = "any"
)

// Decade choices.
const (
	Decade2000s = "2000s"
	Decade2010s = "2010s"
	DecadeBoth  = "both"
)

// Popularity brackets.
const (
	PopularityBlockbuster = "blockbuster"
	PopularityClassic     = "classic"
	PopularityHiddenGem   = "hidden-gem"
	PopularityAny         = "any"
)

// GenreSurprise is the sentinel meaning "no genre preference".
const GenreSurprise = "surprise"

// MaxGenres is the number of concrete genres a user may select.
const MaxGenres = 3

// Preferences is the answer set of the five-question Smart Match quiz.
//
// Validation is the caller's job. Scoring treats unknown or missing values as
// "no contribution" so that new quiz options never break the pipeline.
type Preferences struct {
	Mood       string   `json:"mood" validate:"required,oneof=inspiration adrenaline deep-emotion humor ambitious romantic"`
	Time       string   `json:"time" validate:"required,oneof=short normal long any"`
	Genres     []string `json:"genres" validate:"genres"`
	Decade     string   `json:"decade,omitempty" validate:"omitempty,oneof=2000s 2010s both"`
	Popularity string   `json:"popularity,omitempty" validate:"omitempty,oneof=blockbuster classic hidden-gem any"`
}

// IsSurprise reports whether the genre answer is the "surprise me" sentinel.
func (p *Preferences) IsSurprise() bool {
	for _, g := range p.Genres {
		if g == GenreSurprise {
			return true
		}
	}
	return false
}

// ConcreteGenres returns the selected genres, or nil when the user chose surprise.
func (p *Preferences) ConcreteGenres() []string {
	if p.IsSurprise() {
		return nil
	}
	out := make([]string, 0, len(p.Genres))
	for _, g := range p.Genres {
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}

// DecadeOrDefault returns the decade choice, defaulting to "both".
func (p *Preferences) DecadeOrDefault() string {
	if p.Decade == "" {
		return DecadeBoth
	}
	return p.Decade
}

// PopularityOrDefault returns the popularity choice, defaulting to "any".
func (p *Preferences) PopularityOrDefault() string {
	if p.Popularity == "" {
		return PopularityAny
	}
	return p.Popularity
}

// Normalize returns a copy with defaults applied and the surprise sentinel made
// exclusive: if surprise is present, the genre list becomes exactly [surprise].
func (p Preferences) Normalize() Preferences {
	p.Decade = p.DecadeOrDefault()
	p.Popularity = p.PopularityOrDefault()
	if p.IsSurprise() {
		p.Genres = []string{GenreSurprise}
	} else {
		p.Genres = p.ConcreteGenres()
	}
	return p
}

// DecadeRange returns the inclusive Oscar ceremony year range for a decade
// choice. ok is false for "both" and for unknown values.
func DecadeRange(decade string) (from, to int, ok bool) {
	switch decade {
	case Decade2000s:
		return 2001, 2010, true
	case Decade2010s:
		return 2011, 2020, true
	default:
		return 0, 0, false
	}
}

// DecadeOf returns the decade choice containing an Oscar ceremony year, or
// "" when the year lies outside both decades.
func DecadeOf(oscarYear int) string {
	for _, d := range []string{Decade2000s, Decade2010s} {
		if from, to, _ := DecadeRange(d); oscarYear >= from && oscarYear <= to {
			return d
		}
	}
	return ""
}

// signature is the canonical, user-independent form of a preference set.
// Field order is fixed so that serialization is deterministic.
type signature struct {
	Mood       string `json:"mood"`
	Time       string `json:"time"`
	Genres     string `json:"genres"`
	Decade     string `json:"decade"`
	Popularity string `json:"popularity"`
}

// Signature returns the canonical serialization of the preferences. Genres
// are sorted and joined, decade defaults to "both" and popularity to "any",
// so semantically identical answers always produce the same string.
func (p *Preferences) Signature() string {
	n := p.Normalize()
	genres := make([]string, len(n.Genres))
	copy(genres, n.Genres)
	sort.Strings(genres)

	data, err := json.Marshal(signature{
		Mood:       n.Mood,
		Time:       n.Time,
		Genres:     strings.Join(genres, ","),
		Decade:     n.Decade,
		Popularity: n.Popularity,
	})
	if err != nil {
		// Marshaling a struct of strings cannot fail.
		panic(fmt.Sprintf("marshal preference signature: %v", err))
	}
	return string(data)
}

// Hash returns the hex encoded SHA-256 of Signature.
func (p *Preferences) Hash() string {
	sum := sha256.Sum256([]byte(p.Signature()))
	return hex.EncodeToString(sum[:])
}
