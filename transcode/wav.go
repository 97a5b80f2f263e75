package transcode

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ReadWAV decodes a WAV file natively into normalized float64 PCM.
func ReadWAV(path string) (*AudioData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAudioInput, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: %s is not a valid WAV file", ErrInvalidAudioInput, path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAudioInput, err)
	}

	bitDepth := int(decoder.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	pcm := make([]float64, len(buf.Data))
	for i, s := range buf.Data {
		pcm[i] = float64(s) / scale
	}

	channels := buf.Format.NumChannels
	sampleRate := buf.Format.SampleRate
	frames := 0
	if channels > 0 {
		frames = len(pcm) / channels
	}

	return &AudioData{
		PCM:        pcm,
		SampleRate: sampleRate,
		Channels:   channels,
		Duration:   time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second)),
	}, nil
}

// WriteWAV writes the audio as uncompressed 16-bit linear PCM. Samples are
// clipped into [-1, 1] before quantization.
func WriteWAV(path string, data *AudioData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := wav.NewEncoder(f, data.SampleRate, 16, data.Channels, 1)

	ints := make([]int, len(data.PCM))
	for i, s := range data.PCM {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		ints[i] = int(math.Round(s * 32767.0))
	}

	buf := &audio.IntBuffer{
		Data: ints,
		Format: &audio.Format{
			NumChannels: data.Channels,
			SampleRate:  data.SampleRate,
		},
		SourceBitDepth: 16,
	}

	if err := encoder.Write(buf); err != nil {
		f.Close()
		return err
	}
	if err := encoder.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
