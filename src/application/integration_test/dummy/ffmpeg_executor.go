package dummy

import (
	"audio-joiner/src/application/executor"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

var _ executor.Executor = &FFmpegExecutor{}
var _ executor.Command = &FFmpegCommand{}

func NewDummyFFmpegExecutor() *FFmpegExecutor {
	return &FFmpegExecutor{
		Unavailable:   false,
		FailingMuxers: map[string]bool{},
		decodeCounts:  map[string]int{},
	}
}

// FFmpegExecutor imitates ffmpeg and ffprobe over FakeAudio files
type FFmpegExecutor struct {
	Unavailable   bool
	FailingMuxers map[string]bool

	mutex        sync.Mutex
	decodeCounts map[string]int
}

func (f *FFmpegExecutor) Command(name string, arg ...string) executor.Command {
	return &FFmpegCommand{
		executor: f,
		Name:     name,
		Args:     arg,
	}
}

func (f *FFmpegExecutor) LookPath(file string) (string, error) {
	if f.Unavailable {
		return "", NotFound
	}

	return filepath.Join("/usr/bin", filepath.Base(file)), nil
}

func (f *FFmpegExecutor) DecodeCount(path string) int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.decodeCounts[path]
}

func (f *FFmpegExecutor) recordDecode(path string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.decodeCounts[path]++
}

type FFmpegCommand struct {
	executor *FFmpegExecutor
	Name     string
	Args     []string
	stdin    io.Reader
}

func (c *FFmpegCommand) SetStdin(stdin io.Reader) {
	c.stdin = stdin
}

func getOptionValue(args []string, key string) (string, error) {
	for i, arg := range args {
		if arg == key && i+1 < len(args) {
			return args[i+1], nil
		}
	}

	return "", UnexpectedInput
}

func getLastOptionValue(args []string, key string) (string, error) {
	for i := len(args) - 2; i >= 0; i-- {
		if args[i] == key {
			return args[i+1], nil
		}
	}

	return "", UnexpectedInput
}

func getIntOption(args []string, key string) (int, error) {
	value, err := getOptionValue(args, key)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(value)
}

func (c *FFmpegCommand) Output() ([]byte, error) {
	if c.executor.Unavailable {
		return nil, NotFound
	}

	if strings.Contains(filepath.Base(c.Name), "ffprobe") {
		return c.probe()
	}

	return c.decode()
}

func (c *FFmpegCommand) probe() ([]byte, error) {
	path := c.Args[len(c.Args)-1]

	audio, err := ReadFakeAudio(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	type stream struct {
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	}

	return json.Marshal(map[string][]stream{
		"streams": {{
			CodecName:  "pcm_s16le",
			SampleRate: strconv.Itoa(audio.SampleRate),
			Channels:   audio.Channels,
		}},
	})
}

func (c *FFmpegCommand) decode() ([]byte, error) {
	path, err := getOptionValue(c.Args, "-i")
	if err != nil {
		return nil, err
	}

	if format, _ := getOptionValue(c.Args, "-f"); format != "s16le" {
		return nil, UnexpectedInput
	}

	sampleRate, err := getIntOption(c.Args, "-ar")
	if err != nil {
		return nil, err
	}

	channels, err := getIntOption(c.Args, "-ac")
	if err != nil {
		return nil, err
	}

	audio, err := ReadFakeAudio(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.executor.recordDecode(path)

	frames := audio.Frames * sampleRate / audio.SampleRate
	return make([]byte, frames*channels*2), nil
}

// CombinedOutput imitates an encode from PCM on stdin
func (c *FFmpegCommand) CombinedOutput() ([]byte, error) {
	if c.executor.Unavailable {
		return nil, NotFound
	}

	if input, _ := getOptionValue(c.Args, "-i"); input != "pipe:0" || c.stdin == nil {
		return nil, UnexpectedInput
	}

	sampleRate, err := getIntOption(c.Args, "-ar")
	if err != nil {
		return nil, err
	}

	channels, err := getIntOption(c.Args, "-ac")
	if err != nil {
		return nil, err
	}

	muxer, err := getLastOptionValue(c.Args, "-f")
	if err != nil {
		return nil, err
	}

	outputPath := c.Args[len(c.Args)-1]

	pcm, err := io.ReadAll(c.stdin)
	if err != nil {
		return nil, err
	}

	if c.executor.FailingMuxers[muxer] {
		return []byte("Unknown encoder for muxer " + muxer), EncoderFailure
	}

	audio := FakeAudio{
		SampleRate: sampleRate,
		Channels:   channels,
		Frames:     len(pcm) / (2 * channels),
		Muxer:      muxer,
	}

	if err := WriteFakeAudio(outputPath, audio); err != nil {
		return nil, err
	}

	return []byte{}, nil
}
