package processor

import (
	"audio-joiner/src/application/audio"
	"audio-joiner/src/application/codec"
	"audio-joiner/src/lib/cerr"
	"audio-joiner/src/lib/werror"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// SpeedRatio is the playback rate applied to every input
const SpeedRatio = 1.1

type tailKey struct {
	path   string
	format audio.Format
}

// NewFileProcessor returns a processor with an empty tail cache. Use one per batch.
func NewFileProcessor(audioCodec codec.Codec) FileProcessor {
	return FileProcessor{
		codec: audioCodec,
		tails: map[tailKey]audio.Clip{},
	}
}

// FileProcessor is not safe for concurrent use
type FileProcessor struct {
	codec codec.Codec
	tails map[tailKey]audio.Clip
}

// Process never returns an error; failures are reported in the result
func (f FileProcessor) Process(job ProcessingJob) ProcessingResult {
	fileName := job.FileName()
	logger := log.WithFields(log.Fields{
		"input_path": job.InputPath,
		"tail_path":  job.TailPath,
		"output_dir": job.OutputDir,
	})

	outputPath, err := f.process(job)
	if err != nil {
		cerr.LogTo(logger, err)
		return failed(fileName, err)
	}

	logger.WithField("output_path", outputPath).Info("Processed file")
	return succeeded(fileName, outputPath)
}

func (f FileProcessor) process(job ProcessingJob) (string, error) {
	fileName := job.FileName()
	ext := filepath.Ext(fileName)

	muxer, err := MuxerForExtension(ext)
	if err != nil {
		return "", err
	}

	format, err := f.codec.Probe(job.InputPath)
	if err != nil {
		return "", werror.WrapError("Failed to read input format", err)
	}

	input, err := f.codec.Decode(job.InputPath, format)
	if err != nil {
		return "", werror.WrapError("Failed to decode input", err)
	}

	tail, err := f.tail(job.TailPath, format)
	if err != nil {
		return "", werror.WrapError("Failed to decode tail", err)
	}

	sped, err := audio.SpeedUp(input, SpeedRatio)
	if err != nil {
		return "", werror.WrapError("Failed to speed up input", err)
	}

	combined, err := audio.Concat(sped, sped, tail)
	if err != nil {
		return "", werror.WrapError("Failed to join clips", err)
	}

	outputPath := filepath.Join(job.OutputDir, OutputFileName(fileName))
	if err := f.encode(combined, outputPath, muxer); err != nil {
		return "", err
	}

	return outputPath, nil
}

func (f FileProcessor) tail(path string, format audio.Format) (audio.Clip, error) {
	key := tailKey{path: path, format: format}
	if clip, ok := f.tails[key]; ok {
		return clip, nil
	}

	clip, err := f.codec.Decode(path, format)
	if err != nil {
		return audio.Clip{}, err
	}

	f.tails[key] = clip
	return clip, nil
}

// encode writes to a hidden file beside the destination and renames it into
// place, so a failed encode never leaves a partial output behind
func (f FileProcessor) encode(clip audio.Clip, outputPath string, muxer string) error {
	dir, name := filepath.Split(outputPath)
	partialPath := filepath.Join(dir, "."+name+".partial")

	if err := f.codec.Encode(clip, partialPath, muxer); err != nil {
		_ = os.Remove(partialPath)
		return werror.WrapError("Failed to encode output", err)
	}

	if err := os.Rename(partialPath, outputPath); err != nil {
		_ = os.Remove(partialPath)
		return cerr.Field("partial_path", partialPath).
			Field("output_path", outputPath).
			Wrap(err).Error("Failed to move encoded output into place")
	}

	return nil
}
