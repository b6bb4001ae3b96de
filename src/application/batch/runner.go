package batch

import (
	"audio-joiner/src/application/codec"
	"audio-joiner/src/application/processor"
	"audio-joiner/src/application/scanner"
	"audio-joiner/src/lib/cerr"
	"audio-joiner/src/lib/werror"
	"audio-joiner/src/lib/working_dir"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	OutputDirName  = "processed_output"
	NoFilesMessage = "No audio files found in the input directory."
)

func NewRunner(audioCodec codec.Codec) Runner {
	return Runner{
		codec: audioCodec,
		now:   time.Now,
	}
}

type Runner struct {
	codec codec.Codec
	now   func() time.Time
}

func (r Runner) CheckPreconditions(request Request) error {
	if err := scanner.CheckDirectory(request.InputDir); err != nil {
		return newPreconditionError("Please select a valid input directory", err)
	}

	info, err := os.Stat(request.TailPath)
	if err != nil {
		return newPreconditionError("Please select a valid tail file", err)
	}

	if !info.Mode().IsRegular() {
		return newPreconditionError("Please select a valid tail file", cerr.Field("tail_path", request.TailPath).Error("Tail path is not a regular file"))
	}

	if !scanner.IsSupported(request.TailPath) {
		return newPreconditionError("Tail file is not a supported audio file", cerr.Field("tail_path", request.TailPath).Error("Unsupported extension"))
	}

	if !r.codec.Available() {
		return newPreconditionError("Audio toolchain unavailable", ErrToolchainMissing)
	}

	return nil
}

// Run processes every file of the batch in order. Per-file failures are
// reported in the summary; the returned error is reserved for preconditions
// and for failures that stop the whole batch. ctx is checked between files.
func (r Runner) Run(ctx context.Context, request Request, sink EventSink) (Summary, error) {
	if err := r.CheckPreconditions(request); err != nil {
		return Summary{}, err
	}

	if request.BatchID == "" {
		request.BatchID = uuid.New().String()
	}

	outputDirPath := filepath.Join(request.InputDir, OutputDirName)
	summary := Summary{
		BatchID:   request.BatchID,
		InputDir:  request.InputDir,
		OutputDir: outputDirPath,
		Results:   []processor.ProcessingResult{},
		StartedAt: r.now(),
	}

	sink.Emit(Event{Type: ScanStartedEvent, Message: "Starting processing..."})

	outputDir, err := working_dir.NewWorkingDir(outputDirPath)
	if err != nil {
		return summary, werror.WrapError("Failed to create output directory", err)
	}
	summary.OutputDir = outputDir.Root()

	if outputDir.Created() {
		sink.Emit(Event{
			Type:    OutputDirCreatedEvent,
			Message: fmt.Sprintf("Created output directory: %s", outputDir.Root()),
		})
	}

	fileNames := request.Files
	if fileNames == nil {
		fileNames, err = scanner.Scan(request.InputDir)
		if err != nil {
			return summary, werror.WrapError("Failed to scan input directory", err)
		}
	}

	if len(fileNames) == 0 {
		sink.Emit(Event{Type: NoFilesEvent, Message: NoFilesMessage})
		summary.FinishedAt = r.now()
		return summary, nil
	}

	fileProcessor := processor.NewFileProcessor(r.codec)

	for _, fileName := range fileNames {
		if ctx.Err() != nil {
			summary.FinishedAt = r.now()
			return summary, werror.Wrapf(ctx.Err(), "Batch stopped before %s", fileName)
		}

		sink.Emit(Event{
			Type:     FileStartedEvent,
			FileName: fileName,
			Message:  fmt.Sprintf("Processing: %s...", fileName),
		})

		result := fileProcessor.Process(processor.ProcessingJob{
			InputPath: filepath.Join(request.InputDir, fileName),
			TailPath:  request.TailPath,
			OutputDir: outputDir.Root(),
		})
		summary.add(result)

		sink.Emit(Event{
			Type:     FileFinishedEvent,
			FileName: fileName,
			Message:  result.Message,
			Result:   &result,
		})
	}

	summary.FinishedAt = r.now()
	sink.Emit(Event{Type: BatchFinishedEvent, Message: summary.String()})

	return summary, nil
}
