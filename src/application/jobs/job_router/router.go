package job_router

import (
	"audio-joiner/src/application/history/entity"
	"audio-joiner/src/application/jobs/process_batch"
	"audio-joiner/src/application/publish"
	"audio-joiner/src/lib/cerr"
	"context"
	"encoding/json"
	"time"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

func NewJobRouter(
	batchStore entity.BatchStore,
	publisher publish.Publisher,
	processBatchHandler process_batch.ProcessBatchJobHandler,
) JobRouter {
	return JobRouter{
		batchStore:          batchStore,
		publisher:           publisher,
		processBatchHandler: processBatchHandler,
	}
}

type JobRouter struct {
	publisher  publish.Publisher
	batchStore entity.BatchStore

	processBatchHandler process_batch.ProcessBatchJobHandler
}

// HandleMessage routes message to its job handler. A job interrupted by ctx is
// not recorded as failed since it will be redelivered.
func (j JobRouter) HandleMessage(ctx context.Context, message amqp.Delivery) error {
	err := j.handleMessageWithoutErrorHandling(ctx, message)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}

		if reportErr := j.handleError(ctx, message, err); reportErr != nil {
			cerr.Log(reportErr)
		}
		return err
	}

	return nil
}

func (j JobRouter) handleMessageWithoutErrorHandling(ctx context.Context, message amqp.Delivery) error {
	switch message.Type {
	case process_batch.JobType:
		params, completed, err := j.processBatchHandler.HandleProcessBatchJob(ctx, message.Body)
		if err != nil {
			return cerr.Field("message_body", string(message.Body)).Wrap(err).Error("Failed to handle process batch job")
		}

		record := entity.CompletedRecord(completed.Summary, completed.Archive.Locations)
		if err = j.batchStore.SaveBatch(ctx, record); err != nil {
			// the outputs are already written, so a history failure doesn't fail the job
			cerr.Log(cerr.Field("batch_id", params.BatchID).Wrap(err).Error("Failed to save batch history"))
		}

		completedMsg, err := process_batch.CreateCompletedMessage(completed)
		if err != nil {
			return cerr.Field("batch_id", params.BatchID).Wrap(err).Error("Failed to create batch completed message")
		}

		if err = j.publisher.Publish(completedMsg); err != nil {
			return cerr.Field("batch_id", params.BatchID).
				Wrap(err).Error("Failed to publish batch completed message")
		}

		log.WithFields(log.Fields{
			"batch_id":  params.BatchID,
			"succeeded": completed.Summary.SucceededCount,
			"total":     completed.Summary.Total,
		}).Info(completed.Summary.String())

	default:
		return cerr.Field("job_type", message.Type).Error("Unrecognized amqp job type")
	}

	return nil
}

func (j JobRouter) handleError(ctx context.Context, message amqp.Delivery, jobError error) error {
	if message.Type != process_batch.JobType {
		return nil
	}

	var params process_batch.JobParams
	err := json.Unmarshal(message.Body, &params)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to report error to batch history")
	}

	if params.BatchID == "" {
		return cerr.Error("Batch without an id can't be recorded in history")
	}

	record := entity.ErrorRecord(params.BatchID, params.InputDir, jobError, time.Now())
	err = j.batchStore.SaveBatch(ctx, record)
	if err != nil {
		return cerr.Field("batch_id", params.BatchID).Wrap(err).Error("Failed to save failed batch")
	}

	return nil
}
