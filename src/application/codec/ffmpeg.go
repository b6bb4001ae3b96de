package codec

import (
	"audio-joiner/src/application/audio"
	"audio-joiner/src/application/executor"
	"audio-joiner/src/lib/cerr"
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
)

var _ Codec = FFmpeg{}

// lossless muxers ignore the bitrate setting
var losslessMuxers = map[string]bool{
	"wav": true,
}

type ffprobeOutput struct {
	Streams []struct {
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
}

// FFprobePathFor guesses the ffprobe binary that ships next to an ffmpeg binary
func FFprobePathFor(ffmpegPath string) string {
	dir, base := filepath.Split(ffmpegPath)
	return dir + strings.Replace(base, "ffmpeg", "ffprobe", 1)
}

func NewFFmpeg(ffmpegPath string, ffprobePath string, bitrate string, commandExecutor executor.Executor) FFmpeg {
	if ffprobePath == "" {
		ffprobePath = FFprobePathFor(ffmpegPath)
	}

	return FFmpeg{
		ffmpegPath:      ffmpegPath,
		ffprobePath:     ffprobePath,
		bitrate:         bitrate,
		commandExecutor: commandExecutor,
	}
}

// FFmpeg decodes and encodes audio by running the ffmpeg and ffprobe binaries
type FFmpeg struct {
	ffmpegPath      string
	ffprobePath     string
	bitrate         string
	commandExecutor executor.Executor
}

func (f FFmpeg) Available() bool {
	for _, bin := range []string{f.ffmpegPath, f.ffprobePath} {
		if _, err := f.commandExecutor.LookPath(bin); err != nil {
			log.WithField("binary", bin).Debug("Binary not found")
			return false
		}
	}

	return true
}

func (f FFmpeg) Probe(path string) (audio.Format, error) {
	errctx := cerr.Field("path", path)

	cmd := f.commandExecutor.Command(f.ffprobePath,
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=codec_name,sample_rate,channels",
		"-of", "json",
		path,
	)

	output, err := cmd.Output()
	if err != nil {
		return audio.Format{}, errctx.Wrap(err).Error("Failed to run ffprobe")
	}

	var probeData ffprobeOutput
	if err := json.Unmarshal(output, &probeData); err != nil {
		return audio.Format{}, errctx.Field("ffprobe_output", string(output)).
			Wrap(err).Error("Failed to unmarshal ffprobe output")
	}

	if len(probeData.Streams) == 0 {
		return audio.Format{}, errctx.Error("No audio streams found in file")
	}

	stream := probeData.Streams[0]
	sampleRate, err := strconv.Atoi(stream.SampleRate)
	if err != nil {
		return audio.Format{}, errctx.Field("sample_rate", stream.SampleRate).
			Wrap(err).Error("Failed to parse sample rate")
	}

	format := audio.Format{
		SampleRate: sampleRate,
		Channels:   stream.Channels,
	}
	if err := format.Validate(); err != nil {
		return audio.Format{}, errctx.Wrap(err).Error("ffprobe reported an unusable format")
	}

	log.WithFields(log.Fields{
		"path":        path,
		"codec":       stream.CodecName,
		"sample_rate": format.SampleRate,
		"channels":    format.Channels,
	}).Debug("Probed audio file")

	return format, nil
}

func (f FFmpeg) Decode(path string, format audio.Format) (audio.Clip, error) {
	errctx := cerr.Field("path", path).Field("format", format)

	if err := format.Validate(); err != nil {
		return audio.Clip{}, errctx.Wrap(err).Error("Invalid decode format")
	}

	cmd := f.commandExecutor.Command(f.ffmpegPath,
		"-v", "error",
		"-i", path,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(format.SampleRate),
		"-ac", strconv.Itoa(format.Channels),
		"pipe:1",
	)

	pcm, err := cmd.Output()
	if err != nil {
		return audio.Clip{}, errctx.Wrap(err).Error("Failed to decode with ffmpeg")
	}

	clip, err := audio.FromPCM(format, pcm)
	if err != nil {
		return audio.Clip{}, errctx.Wrap(err).Error("Failed to read decoded PCM")
	}

	return clip, nil
}

func (f FFmpeg) Encode(clip audio.Clip, outputPath string, muxer string) error {
	errctx := cerr.Field("output_path", outputPath).Field("muxer", muxer)

	args := []string{
		"-v", "error",
		"-y",
		"-f", "s16le",
		"-ar", strconv.Itoa(clip.SampleRate),
		"-ac", strconv.Itoa(clip.Channels),
		"-i", "pipe:0",
	}

	if f.bitrate != "" && !losslessMuxers[muxer] {
		args = append(args, "-b:a", f.bitrate)
	}

	args = append(args, "-f", muxer, outputPath)

	cmd := f.commandExecutor.Command(f.ffmpegPath, args...)
	cmd.SetStdin(bytes.NewReader(clip.PCM()))

	log.WithFields(log.Fields{
		"output_path": outputPath,
		"muxer":       muxer,
		"duration":    clip.Duration(),
	}).Debug("Running ffmpeg encode")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return errctx.Field("ffmpeg_output", string(output)).
			Wrap(err).Error("Error occurred while running ffmpeg - output: " + strings.TrimSpace(string(output)))
	}

	return nil
}
