// Package patterns holds the static, genre-keyed rhythm template catalogs
// the part generators draw from. All entries are read-only after package
// initialization; callers must never mutate returned patterns.
package patterns

import (
	"fmt"
	"strings"
)

// General MIDI percussion note numbers used by the drum catalogs.
const (
	DrumKick      = 36
	DrumSnare     = 38
	DrumClosedHat = 42
	DrumOpenHat   = 46
	DrumCrash     = 49
	DrumRide      = 51
)

// Genre tags a pattern catalog.
type Genre string

const (
	GenreRock    Genre = "rock"
	GenrePop     Genre = "pop"
	GenreJazz    Genre = "jazz"
	GenreBlues   Genre = "blues"
	GenreFunk    Genre = "funk"
	GenreCountry Genre = "country"
)

// Genres returns the supported genres in catalog order.
func Genres() []Genre {
	return []Genre{GenreRock, GenrePop, GenreJazz, GenreBlues, GenreFunk, GenreCountry}
}

// Valid reports whether the genre has a registered catalog.
func (g Genre) Valid() bool {
	_, drums := drumCatalog[g]
	_, bass := bassCatalog[g]
	return drums || bass
}

// ParseGenre resolves a case-insensitive genre name.
func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("unsupported genre %q", s)
	}
	return g, nil
}

// DrumHit is one pattern stroke: a beat offset within the bar, a percussion
// note number, and a velocity.
type DrumHit struct {
	Position float64 `json:"position"` // beats from bar start
	Drum     int     `json:"drum"`     // percussion note number
	Velocity int     `json:"velocity"` // 0-127
}

// DrumPattern is a one-bar rhythm template.
type DrumPattern struct {
	Name string    `json:"name"`
	Bars int       `json:"bars"`
	Hits []DrumHit `json:"hits"`
}

// BassNote is one pattern note relative to the current chord root.
type BassNote struct {
	Position     float64 `json:"position"`      // beats from bar start
	RootOffset   int     `json:"root_offset"`   // semitones above the chord root
	OctaveOffset int     `json:"octave_offset"` // added as 12 * OctaveOffset
	Velocity     int     `json:"velocity"`      // 0-127
	Duration     float64 `json:"duration"`      // beats
}

// BassPattern is a one-bar bass line template.
type BassPattern struct {
	Name  string     `json:"name"`
	Bars  int        `json:"bars"`
	Notes []BassNote `json:"notes"`
}

// DrumGrooves returns the genre's groove patterns. The first entry is the
// default groove; the second, when present, is preferred for choruses.
// An unknown genre yields nil.
func DrumGrooves(g Genre) []DrumPattern {
	return drumCatalog[g].grooves
}

// DrumFills returns the genre's fill patterns, or nil for an unknown genre.
func DrumFills(g Genre) []DrumPattern {
	return drumCatalog[g].fills
}

// BassLines returns the genre's bass patterns. The first entry is the
// primary pattern; the second, when present, is the alternate.
// An unknown genre yields nil.
func BassLines(g Genre) []BassPattern {
	return bassCatalog[g]
}

type drumEntry struct {
	grooves []DrumPattern
	fills   []DrumPattern
}
