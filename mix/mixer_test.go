package mix

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/backline-audio/backline/transcode"
)

// constStem builds a stereo stem holding a constant sample value.
func constStem(name string, value float64, frames int) *Stem {
	buf, err := transcode.NewAudioData(frames, 44100, 2)
	if err != nil {
		panic(err)
	}
	for i := range buf.PCM {
		buf.PCM[i] = value
	}
	return NewStem(name, buf)
}

// --------------------------------------------------------------------
// Effective level rules
// --------------------------------------------------------------------

func TestEffectiveLevel(t *testing.T) {
	tests := []struct {
		name  string
		setup func(sc *StemCollection)
		query string
		want  float64
	}{
		{
			name:  "unity by default",
			setup: func(sc *StemCollection) {},
			query: "a",
			want:  1.0,
		},
		{
			name:  "level scales",
			setup: func(sc *StemCollection) { sc.SetLevel("a", 0.5) },
			query: "a",
			want:  0.5,
		},
		{
			name:  "muted is silent",
			setup: func(sc *StemCollection) { sc.SetMuted("a", true) },
			query: "a",
			want:  0.0,
		},
		{
			name:  "solo gates others",
			setup: func(sc *StemCollection) { sc.SetSoloed("b", true) },
			query: "a",
			want:  0.0,
		},
		{
			name:  "soloed stem passes",
			setup: func(sc *StemCollection) { sc.SetSoloed("b", true) },
			query: "b",
			want:  1.0,
		},
		{
			name: "muted wins over solo",
			setup: func(sc *StemCollection) {
				sc.SetSoloed("a", true)
				sc.SetMuted("a", true)
			},
			query: "a",
			want:  0.0,
		},
		{
			name:  "master multiplies",
			setup: func(sc *StemCollection) { sc.SetLevel("a", 0.5); sc.SetMaster(0.5) },
			query: "a",
			want:  0.25,
		},
		{
			name:  "level clamps to range",
			setup: func(sc *StemCollection) { sc.SetLevel("a", 5.0) },
			query: "a",
			want:  MaxLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewStemCollection()
			sc.Add(constStem("a", 0.1, 100))
			sc.Add(constStem("b", 0.1, 100))
			tt.setup(sc)
			if got := sc.EffectiveLevel(tt.query); got != tt.want {
				t.Errorf("EffectiveLevel(%q) = %f, want %f", tt.query, got, tt.want)
			}
		})
	}
}

func TestEffectiveLevel_RecomputedAfterChange(t *testing.T) {
	sc := NewStemCollection()
	sc.Add(constStem("a", 0.1, 100))
	sc.Add(constStem("b", 0.1, 100))

	sc.SetSoloed("b", true)
	if got := sc.EffectiveLevel("a"); got != 0 {
		t.Fatalf("EffectiveLevel(a) = %f while b soloed, want 0", got)
	}
	sc.SetSoloed("b", false)
	if got := sc.EffectiveLevel("a"); got != 1.0 {
		t.Errorf("EffectiveLevel(a) = %f after unsolo, want 1.0", got)
	}
}

// --------------------------------------------------------------------
// MixDown
// --------------------------------------------------------------------

func TestMixDown_SumsStems(t *testing.T) {
	sc := NewStemCollection()
	sc.Add(constStem("a", 0.2, 100))
	sc.Add(constStem("b", 0.3, 100))

	mixed, err := NewMixer().MixDown(sc)
	if err != nil {
		t.Fatalf("MixDown: %v", err)
	}
	if math.Abs(mixed.PCM[0]-0.5) > 1e-12 {
		t.Errorf("mixed sample = %f, want 0.5", mixed.PCM[0])
	}
}

func TestMixDown_LongestStemWins(t *testing.T) {
	sc := NewStemCollection()
	sc.Add(constStem("short", 0.2, 100))
	sc.Add(constStem("long", 0.3, 250))

	mixed, err := NewMixer().MixDown(sc)
	if err != nil {
		t.Fatalf("MixDown: %v", err)
	}
	if mixed.Frames() != 250 {
		t.Fatalf("Frames() = %d, want 250", mixed.Frames())
	}
	// Past the short stem's end only the long stem contributes.
	if math.Abs(mixed.PCM[200*2]-0.3) > 1e-12 {
		t.Errorf("tail sample = %f, want 0.3", mixed.PCM[200*2])
	}
}

func TestMixDown_RespectsMuteAndSolo(t *testing.T) {
	sc := NewStemCollection()
	sc.Add(constStem("a", 0.2, 100))
	sc.Add(constStem("b", 0.3, 100))
	sc.SetSoloed("b", true)

	mixed, err := NewMixer().MixDown(sc)
	if err != nil {
		t.Fatalf("MixDown: %v", err)
	}
	if math.Abs(mixed.PCM[0]-0.3) > 1e-12 {
		t.Errorf("mixed sample = %f, want 0.3 (only the soloed stem)", mixed.PCM[0])
	}
}

func TestMixDown_MonoStemUpmixed(t *testing.T) {
	mono, err := transcode.NewAudioData(100, 44100, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range mono.PCM {
		mono.PCM[i] = 0.4
	}
	sc := NewStemCollection()
	sc.Add(NewStem("mono", mono))

	mixed, err := NewMixer().MixDown(sc)
	if err != nil {
		t.Fatalf("MixDown: %v", err)
	}
	if mixed.Channels != 2 {
		t.Fatalf("Channels = %d, want 2", mixed.Channels)
	}
	if mixed.PCM[0] != 0.4 || mixed.PCM[1] != 0.4 {
		t.Errorf("upmixed frame = (%f, %f), want (0.4, 0.4)", mixed.PCM[0], mixed.PCM[1])
	}
}

func TestMixDown_EmptyCollection(t *testing.T) {
	_, err := NewMixer().MixDown(NewStemCollection())
	if !errors.Is(err, ErrEmptyStemCollection) {
		t.Errorf("error = %v, want ErrEmptyStemCollection", err)
	}
}

// --------------------------------------------------------------------
// Export
// --------------------------------------------------------------------

func TestExportStems(t *testing.T) {
	dir := t.TempDir()
	sc := NewStemCollection()
	sc.Add(constStem("Melody", 0.2, 1000))
	sc.Add(constStem("Drums", 0.1, 1000))

	paths, err := NewMixer().ExportStems(sc, dir)
	if err != nil {
		t.Fatalf("ExportStems: %v", err)
	}
	want := []string{
		filepath.Join(dir, "melody_stem.wav"),
		filepath.Join(dir, "drums_stem.wav"),
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d", len(paths), len(want))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, paths[i], want[i])
		}
		if _, err := transcode.ReadWAV(paths[i]); err != nil {
			t.Errorf("exported stem unreadable: %v", err)
		}
	}
}

func TestExportStems_EmptyCollection(t *testing.T) {
	_, err := NewMixer().ExportStems(NewStemCollection(), t.TempDir())
	if !errors.Is(err, ErrEmptyStemCollection) {
		t.Errorf("error = %v, want ErrEmptyStemCollection", err)
	}
}

func TestExportMix(t *testing.T) {
	dir := t.TempDir()
	sc := NewStemCollection()
	sc.Add(constStem("a", 0.2, 1000))

	path := filepath.Join(dir, "mix.wav")
	if err := NewMixer().ExportMix(sc, path); err != nil {
		t.Fatalf("ExportMix: %v", err)
	}
	data, err := transcode.ReadWAV(path)
	if err != nil {
		t.Fatalf("reading exported mix: %v", err)
	}
	if data.Frames() != 1000 {
		t.Errorf("Frames() = %d, want 1000", data.Frames())
	}
}
