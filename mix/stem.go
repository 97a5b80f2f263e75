// Package mix combines the original recording and synthesized stems into a
// final mix, honoring per-stem level, mute, and solo settings.
package mix

import (
	"sync"

	"github.com/backline-audio/backline/transcode"
)

// Level bounds for stems and the master fader.
const (
	MinLevel = 0.0
	MaxLevel = 2.0
)

// Stem is one instrument's isolated audio within the mix. Its mutable mixer
// state (level, mute, solo) is guarded by the owning StemCollection.
type Stem struct {
	Name   string               `json:"name"`
	Buffer *transcode.AudioData `json:"-"`
	Source string               `json:"source,omitempty"` // originating file, when applicable

	Level  float64 `json:"level"`
	Muted  bool    `json:"muted"`
	Soloed bool    `json:"soloed"`
}

// NewStem creates a stem at unity level.
func NewStem(name string, buffer *transcode.AudioData) *Stem {
	return &Stem{Name: name, Buffer: buffer, Level: 1.0}
}

// StemCollection is an ordered set of stems plus a master level. Flag
// mutation may race with playback-volume queries, so every access goes
// through the collection's lock and effective levels are recomputed on
// every query, never cached.
type StemCollection struct {
	mu     sync.RWMutex
	stems  []*Stem
	master float64
}

// NewStemCollection creates an empty collection at unity master level.
func NewStemCollection() *StemCollection {
	return &StemCollection{master: 1.0}
}

// Add appends a stem to the collection.
func (sc *StemCollection) Add(stem *Stem) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.stems = append(sc.stems, stem)
}

// Len returns the number of stems.
func (sc *StemCollection) Len() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.stems)
}

// Stems returns a snapshot of the stem list in order.
func (sc *StemCollection) Stems() []*Stem {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make([]*Stem, len(sc.stems))
	copy(out, sc.stems)
	return out
}

// SetMaster sets the master level, clamped to the valid range.
func (sc *StemCollection) SetMaster(level float64) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.master = clampLevel(level)
}

// Master returns the master level.
func (sc *StemCollection) Master() float64 {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.master
}

// SetLevel sets a stem's level by name, clamped to the valid range.
func (sc *StemCollection) SetLevel(name string, level float64) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if s := sc.find(name); s != nil {
		s.Level = clampLevel(level)
	}
}

// SetMuted sets a stem's mute flag by name.
func (sc *StemCollection) SetMuted(name string, muted bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if s := sc.find(name); s != nil {
		s.Muted = muted
	}
}

// SetSoloed sets a stem's solo flag by name.
func (sc *StemCollection) SetSoloed(name string, soloed bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if s := sc.find(name); s != nil {
		s.Soloed = soloed
	}
}

// EffectiveLevel computes a stem's final gain under the mute/solo rules:
// a muted stem contributes nothing regardless of solo; when any stem is
// soloed, every non-soloed stem contributes nothing. The master level is
// applied multiplicatively on top.
func (sc *StemCollection) EffectiveLevel(name string) float64 {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	s := sc.find(name)
	if s == nil {
		return 0
	}
	return sc.effectiveLevelLocked(s) * sc.master
}

// effectiveLevels returns every stem's gain (master applied) in stem order.
func (sc *StemCollection) effectiveLevels() []float64 {
	levels := make([]float64, len(sc.stems))
	for i, s := range sc.stems {
		levels[i] = sc.effectiveLevelLocked(s) * sc.master
	}
	return levels
}

func (sc *StemCollection) effectiveLevelLocked(s *Stem) float64 {
	if s.Muted {
		return 0
	}
	if sc.anySoloedLocked() && !s.Soloed {
		return 0
	}
	return s.Level
}

func (sc *StemCollection) anySoloedLocked() bool {
	for _, s := range sc.stems {
		if s.Soloed {
			return true
		}
	}
	return false
}

func (sc *StemCollection) find(name string) *Stem {
	for _, s := range sc.stems {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func clampLevel(level float64) float64 {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
