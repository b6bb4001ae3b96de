package process_batch

import (
	"audio-joiner/src/application/archive"
	"audio-joiner/src/application/batch"
	"audio-joiner/src/lib/cerr"
	"context"
	"encoding/json"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

const (
	JobType       = "process_batch"
	CompletedType = "batch_completed"
	ErrorMessage  = "Failed to process the batch"
)

type JobParams struct {
	BatchID  string `json:"batch_id"`
	InputDir string `json:"input_dir"`
	TailPath string `json:"tail_path"`
}

type CompletedMessage struct {
	Summary batch.Summary  `json:"summary"`
	Archive archive.Report `json:"archive"`
}

type BatchRunner interface {
	Run(ctx context.Context, request batch.Request, sink batch.EventSink) (batch.Summary, error)
}

type OutputArchiver interface {
	Archive(ctx context.Context, summary batch.Summary) archive.Report
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . ProcessBatchJobHandler
type ProcessBatchJobHandler interface {
	HandleProcessBatchJob(ctx context.Context, message []byte) (JobParams, CompletedMessage, error)
}

var _ ProcessBatchJobHandler = JobHandler{}

type JobHandler struct {
	runner   BatchRunner
	archiver OutputArchiver
}

func NewJobHandler(runner BatchRunner, archiver OutputArchiver) JobHandler {
	return JobHandler{
		runner:   runner,
		archiver: archiver,
	}
}

// HandleProcessBatchJob runs the batch under ctx. A cancelled ctx stops the
// batch between files and skips archiving.
func (h JobHandler) HandleProcessBatchJob(ctx context.Context, message []byte) (JobParams, CompletedMessage, error) {
	params := JobParams{}
	if err := json.Unmarshal(message, &params); err != nil {
		return JobParams{}, CompletedMessage{}, cerr.Wrap(err).Error("Failed to unmarshal message")
	}

	errctx := cerr.Field("batch_id", params.BatchID).Field("input_dir", params.InputDir)

	logger := log.WithFields(log.Fields{
		"batch_id":  params.BatchID,
		"input_dir": params.InputDir,
	})

	summary, err := h.runner.Run(ctx, batch.Request{
		BatchID:  params.BatchID,
		InputDir: params.InputDir,
		TailPath: params.TailPath,
	}, batch.LogSink{Logger: logger})
	if err != nil {
		return params, CompletedMessage{}, errctx.Wrap(err).Error("Failed to run batch")
	}

	params.BatchID = summary.BatchID
	if err = ctx.Err(); err != nil {
		return params, CompletedMessage{}, errctx.Wrap(err).Error("Batch cancelled before archiving")
	}

	report := h.archiver.Archive(ctx, summary)

	return params, CompletedMessage{
		Summary: summary,
		Archive: report,
	}, nil
}

func CreateJobMessage(batchID string, inputDir string, tailPath string) (amqp.Publishing, error) {
	return createMessage(JobType, JobParams{
		BatchID:  batchID,
		InputDir: inputDir,
		TailPath: tailPath,
	})
}

func CreateCompletedMessage(completed CompletedMessage) (amqp.Publishing, error) {
	return createMessage(CompletedType, completed)
}

func createMessage(messageType string, message interface{}) (amqp.Publishing, error) {
	jsonBytes, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, cerr.Wrap(err).Error("Failed to marshal message")
	}

	return amqp.Publishing{
		Type: messageType,
		Body: jsonBytes,
	}, nil
}
