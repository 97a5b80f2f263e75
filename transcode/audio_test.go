package transcode

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

// --------------------------------------------------------------------
// AudioData
// --------------------------------------------------------------------

func TestNewAudioData(t *testing.T) {
	tests := []struct {
		name     string
		frames   int
		rate     int
		channels int
		wantErr  bool
	}{
		{"stereo second", 44100, 44100, 2, false},
		{"mono buffer", 1000, 22050, 1, false},
		{"zero frames", 0, 44100, 2, true},
		{"negative frames", -10, 44100, 2, true},
		{"zero sample rate", 44100, 0, 2, true},
		{"zero channels", 44100, 44100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NewAudioData(tt.frames, tt.rate, tt.channels)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewAudioData error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if data.Frames() != tt.frames {
				t.Errorf("Frames() = %d, want %d", data.Frames(), tt.frames)
			}
			if len(data.PCM) != tt.frames*tt.channels {
				t.Errorf("len(PCM) = %d, want %d", len(data.PCM), tt.frames*tt.channels)
			}
		})
	}
}

func TestAudioData_Mono(t *testing.T) {
	stereo, err := NewAudioData(2, 44100, 2)
	if err != nil {
		t.Fatal(err)
	}
	stereo.PCM = []float64{0.2, 0.4, -0.6, -0.2}

	mono := stereo.Mono()
	if len(mono) != 2 {
		t.Fatalf("len = %d, want 2", len(mono))
	}
	if math.Abs(mono[0]-0.3) > 1e-12 || math.Abs(mono[1]+0.4) > 1e-12 {
		t.Errorf("mono = %v, want [0.3, -0.4]", mono)
	}
}

func TestAudioData_ToStereo(t *testing.T) {
	mono, err := NewAudioData(2, 44100, 1)
	if err != nil {
		t.Fatal(err)
	}
	mono.PCM = []float64{0.5, -0.5}

	stereo := mono.ToStereo()
	if stereo.Channels != 2 {
		t.Fatalf("Channels = %d, want 2", stereo.Channels)
	}
	want := []float64{0.5, 0.5, -0.5, -0.5}
	for i, v := range want {
		if stereo.PCM[i] != v {
			t.Errorf("PCM[%d] = %f, want %f", i, stereo.PCM[i], v)
		}
	}

	// Stereo input passes through untouched.
	if again := stereo.ToStereo(); again != stereo {
		t.Error("ToStereo on stereo input should return the same buffer")
	}
}

func TestAudioData_Seconds(t *testing.T) {
	data, err := NewAudioData(22050, 44100, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := data.Seconds(); got != 0.5 {
		t.Errorf("Seconds() = %f, want 0.5", got)
	}
}

// --------------------------------------------------------------------
// WAV round trip
// --------------------------------------------------------------------

func TestWAVRoundTrip(t *testing.T) {
	original, err := NewAudioData(4410, 44100, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := range original.PCM {
		original.PCM[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i/2)/44100)
	}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	if err := WriteWAV(path, original); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	decoded, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}
	if decoded.SampleRate != 44100 || decoded.Channels != 2 {
		t.Fatalf("format = %d Hz / %d ch, want 44100 / 2", decoded.SampleRate, decoded.Channels)
	}
	if decoded.Frames() != original.Frames() {
		t.Fatalf("Frames() = %d, want %d", decoded.Frames(), original.Frames())
	}
	for i := range decoded.PCM {
		// 16-bit quantization error bound.
		if math.Abs(decoded.PCM[i]-original.PCM[i]) > 1.0/32000.0 {
			t.Fatalf("sample %d = %f, want %f", i, decoded.PCM[i], original.PCM[i])
		}
	}
}

func TestWriteWAV_ClipsOutOfRange(t *testing.T) {
	data, err := NewAudioData(10, 44100, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range data.PCM {
		data.PCM[i] = 3.0 // far out of range
	}

	path := filepath.Join(t.TempDir(), "clipped.wav")
	if err := WriteWAV(path, data); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}
	decoded, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}
	for i, s := range decoded.PCM {
		if s > 1.0001 {
			t.Errorf("sample %d = %f, want clipped to full scale", i, s)
		}
	}
}

func TestReadWAV_InvalidInput(t *testing.T) {
	_, err := ReadWAV(filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, ErrInvalidAudioInput) {
		t.Errorf("error = %v, want ErrInvalidAudioInput", err)
	}
}
