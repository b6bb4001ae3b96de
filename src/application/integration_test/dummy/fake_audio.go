package dummy

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const fakeAudioMagic = "FAKEAUDIO"

// FakeAudio is the stand-in file format understood by FFmpegExecutor. The
// whole file is a single header line; the "audio" is silence of that length.
type FakeAudio struct {
	SampleRate int
	Channels   int
	Frames     int
	Muxer      string
}

func (f FakeAudio) DurationSeconds() float64 {
	return float64(f.Frames) / float64(f.SampleRate)
}

func WriteFakeAudio(path string, audio FakeAudio) error {
	header := fmt.Sprintf("%s rate=%d channels=%d frames=%d", fakeAudioMagic, audio.SampleRate, audio.Channels, audio.Frames)
	if audio.Muxer != "" {
		header += " muxer=" + audio.Muxer
	}

	return os.WriteFile(path, []byte(header+"\n"), 0644)
}

func ReadFakeAudio(path string) (FakeAudio, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return FakeAudio{}, err
	}

	fields := strings.Fields(string(contents))
	if len(fields) == 0 || fields[0] != fakeAudioMagic {
		return FakeAudio{}, InvalidData
	}

	audio := FakeAudio{}
	for _, field := range fields[1:] {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return FakeAudio{}, InvalidData
		}

		switch key {
		case "muxer":
			audio.Muxer = value
		case "rate", "channels", "frames":
			n, err := strconv.Atoi(value)
			if err != nil {
				return FakeAudio{}, InvalidData
			}
			switch key {
			case "rate":
				audio.SampleRate = n
			case "channels":
				audio.Channels = n
			case "frames":
				audio.Frames = n
			}
		}
	}

	if audio.SampleRate <= 0 || audio.Channels <= 0 {
		return FakeAudio{}, InvalidData
	}

	return audio, nil
}
