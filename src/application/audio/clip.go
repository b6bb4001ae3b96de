package audio

import (
	"audio-joiner/src/lib/cerr"
	"encoding/binary"
	"time"
)

// BitDepth is the sample width of every decoded clip; the codec always decodes to signed 16 bit PCM
const BitDepth = 16

const bytesPerSample = BitDepth / 8

type Format struct {
	SampleRate int
	Channels   int
}

func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return cerr.Field("sample_rate", f.SampleRate).Error("Sample rate must be positive")
	}

	if f.Channels <= 0 {
		return cerr.Field("channels", f.Channels).Error("Channel count must be positive")
	}

	return nil
}

// Clip is decoded audio held in memory. Samples are interleaved by channel.
type Clip struct {
	Format
	Samples []int16
}

func NewClip(format Format, samples []int16) (Clip, error) {
	if err := format.Validate(); err != nil {
		return Clip{}, err
	}

	if len(samples)%format.Channels != 0 {
		return Clip{}, cerr.Field("samples", len(samples)).
			Field("channels", format.Channels).
			Error("Sample count is not a whole number of frames")
	}

	return Clip{
		Format:  format,
		Samples: samples,
	}, nil
}

// FromPCM builds a clip from raw little endian s16 bytes. A trailing partial frame is dropped.
func FromPCM(format Format, pcm []byte) (Clip, error) {
	if err := format.Validate(); err != nil {
		return Clip{}, err
	}

	frameBytes := bytesPerSample * format.Channels
	usable := len(pcm) - len(pcm)%frameBytes

	samples := make([]int16, usable/bytesPerSample)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*bytesPerSample:]))
	}

	return NewClip(format, samples)
}

// PCM encodes the samples as raw little endian s16 bytes
func (c Clip) PCM() []byte {
	buf := make([]byte, len(c.Samples)*bytesPerSample)
	for i, s := range c.Samples {
		binary.LittleEndian.PutUint16(buf[i*bytesPerSample:], uint16(s))
	}
	return buf
}

func (c Clip) BitDepth() int {
	return BitDepth
}

func (c Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

func (c Clip) Duration() time.Duration {
	if c.SampleRate == 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// Concat joins clips end to end. Every clip must share the first clip's format.
func Concat(clips ...Clip) (Clip, error) {
	if len(clips) == 0 {
		return Clip{}, cerr.Error("Nothing to concatenate")
	}

	format := clips[0].Format
	total := 0
	for i, clip := range clips {
		if clip.Format != format {
			return Clip{}, cerr.Field("index", i).
				Field("expected_format", format).
				Field("actual_format", clip.Format).
				Error("Cannot concatenate clips with different formats")
		}
		total += len(clip.Samples)
	}

	samples := make([]int16, 0, total)
	for _, clip := range clips {
		samples = append(samples, clip.Samples...)
	}

	return NewClip(format, samples)
}
