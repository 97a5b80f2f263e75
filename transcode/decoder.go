package transcode

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/backline-audio/backline/logging"
)

// DecoderConfig holds decoder configuration.
type DecoderConfig struct {
	// TargetSampleRate resamples the input when > 0; 0 keeps the file's
	// native rate end to end.
	TargetSampleRate int           `json:"target_sample_rate"`
	TargetChannels   int           `json:"target_channels"`
	FFmpegPath       string        `json:"ffmpeg_path"`
	FFprobePath      string        `json:"ffprobe_path"`
	Timeout          time.Duration `json:"timeout"`
}

// DefaultDecoderConfig returns default decoder configuration: mono output at
// the source's native sample rate, ffmpeg binaries resolved from PATH.
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		TargetSampleRate: 0,
		TargetChannels:   1,
		FFmpegPath:       "ffmpeg",
		FFprobePath:      "ffprobe",
		Timeout:          60 * time.Second,
	}
}

// Decoder turns audio files into normalized PCM. WAV files decode natively;
// anything else goes through an FFmpeg subprocess.
type Decoder struct {
	config *DecoderConfig
}

// NewDecoder creates a new audio decoder.
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{config: config}
}

// audioMetadata holds detected audio properties from FFprobe.
type audioMetadata struct {
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Codec      string  `json:"codec"`
	Duration   float64 `json:"duration"`
}

// DecodeFile decodes an audio file and returns PCM data.
func (d *Decoder) DecodeFile(filename string) (*AudioData, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "audio_decoder",
		"filename":  filename,
	})

	if strings.EqualFold(filepath.Ext(filename), ".wav") {
		data, err := ReadWAV(filename)
		if err == nil {
			logger.Debug("decoded WAV natively", logging.Fields{
				"sample_rate": data.SampleRate,
				"channels":    data.Channels,
				"frames":      data.Frames(),
			})
			return d.conform(data), nil
		}
		logger.Warn("native WAV decode failed, falling back to ffmpeg", logging.Fields{
			"error": err.Error(),
		})
	}

	metadata, err := d.probeAudioFile(filename)
	if err != nil {
		logger.Error(err, "failed to probe audio file")
		return nil, err
	}

	logger.Debug("audio metadata detected", logging.Fields{
		"input_sample_rate": metadata.SampleRate,
		"input_channels":    metadata.Channels,
		"input_codec":       metadata.Codec,
		"input_duration":    metadata.Duration,
	})

	return d.decodeWithFFmpeg(filename, metadata)
}

// probeAudioFile queries ffprobe for the file's stream parameters.
func (d *Decoder) probeAudioFile(filename string) (*audioMetadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, d.config.FFprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "a:0",
		filename,
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: ffprobe failed for %s: %v", ErrInvalidAudioInput, filename, err)
	}

	var probe struct {
		Streams []struct {
			CodecName  string `json:"codec_name"`
			SampleRate string `json:"sample_rate"`
			Channels   int    `json:"channels"`
			Duration   string `json:"duration"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(output, &probe); err != nil {
		return nil, fmt.Errorf("%w: cannot parse ffprobe output: %v", ErrInvalidAudioInput, err)
	}
	if len(probe.Streams) == 0 {
		return nil, fmt.Errorf("%w: no audio stream in %s", ErrInvalidAudioInput, filename)
	}

	stream := probe.Streams[0]
	sampleRate, _ := strconv.Atoi(stream.SampleRate)
	duration, _ := strconv.ParseFloat(stream.Duration, 64)

	return &audioMetadata{
		SampleRate: sampleRate,
		Channels:   stream.Channels,
		Codec:      stream.CodecName,
		Duration:   duration,
	}, nil
}

// decodeWithFFmpeg shells out to ffmpeg for raw little-endian float64 PCM.
func (d *Decoder) decodeWithFFmpeg(filename string, metadata *audioMetadata) (*AudioData, error) {
	sampleRate := metadata.SampleRate
	if d.config.TargetSampleRate > 0 {
		sampleRate = d.config.TargetSampleRate
	}
	channels := d.config.TargetChannels
	if channels <= 0 {
		channels = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, d.config.FFmpegPath,
		"-i", filename,
		"-f", "f64le",
		"-acodec", "pcm_f64le",
		"-ac", strconv.Itoa(channels),
		"-ar", strconv.Itoa(sampleRate),
		"-v", "quiet",
		"pipe:1",
	)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg decode failed for %s: %v", ErrInvalidAudioInput, filename, err)
	}

	raw := stdout.Bytes()
	sampleCount := len(raw) / 8
	if sampleCount == 0 {
		return nil, fmt.Errorf("%w: ffmpeg produced no samples for %s", ErrInvalidAudioInput, filename)
	}

	pcm := make([]float64, sampleCount)
	for i := 0; i < sampleCount; i++ {
		bits := binary.LittleEndian.Uint64(raw[i*8:])
		pcm[i] = math.Float64frombits(bits)
	}

	frames := sampleCount / channels
	return &AudioData{
		PCM:        pcm,
		SampleRate: sampleRate,
		Channels:   channels,
		Duration:   time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second)),
	}, nil
}

// conform applies the configured channel layout to natively decoded audio.
func (d *Decoder) conform(data *AudioData) *AudioData {
	if d.config.TargetChannels == 1 && data.Channels > 1 {
		mono := data.Mono()
		return &AudioData{
			PCM:        mono,
			SampleRate: data.SampleRate,
			Channels:   1,
			Duration:   data.Duration,
		}
	}
	return data
}
