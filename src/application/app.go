package application

import (
	"audio-joiner/src/application/archive"
	filestore "audio-joiner/src/application/archive/store"
	"audio-joiner/src/application/batch"
	"audio-joiner/src/application/codec"
	"audio-joiner/src/application/config"
	"audio-joiner/src/application/executor"
	historyentity "audio-joiner/src/application/history/entity"
	batchstore "audio-joiner/src/application/history/store"
	"audio-joiner/src/application/jobs/job_router"
	"audio-joiner/src/application/jobs/process_batch"
	"audio-joiner/src/application/publish"
	"audio-joiner/src/application/worker"
	"audio-joiner/src/lib/cerr"
	"context"

	"github.com/apex/log"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config config.Config
	codec  codec.FFmpeg
}

func NewApp(cfg config.Config) App {
	return App{
		config: cfg,
		codec:  codec.NewFFmpeg(cfg.FFmpegPath, cfg.FFprobePath, cfg.AudioBitrate, executor.BinaryFileExecutor{}),
	}
}

func (a App) Codec() codec.FFmpeg {
	return a.codec
}

// NewRunner returns a batch runner; each Run gets a fresh processor so tails are never cached across batches
func (a App) NewRunner() batch.Runner {
	return batch.NewRunner(a.codec)
}

// StartWorkers consumes batch jobs until ctx is done or a worker fails. ctx
// reaches the running batch, and an interrupted job is requeued.
func (a App) StartWorkers(ctx context.Context) error {
	if err := a.config.ValidateWorker(); err != nil {
		return err
	}

	consumerConn, err := amqp.Dial(a.config.RabbitMQURL)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to connect to RabbitMQ")
	}
	defer consumerConn.Close()

	producerConn, err := amqp.Dial(a.config.RabbitMQURL)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to connect to RabbitMQ")
	}
	defer producerConn.Close()

	router, err := a.newJobRouter(producerConn)
	if err != nil {
		return err
	}

	workers := []worker.QueueWorker{}
	for i := 0; i < a.config.NumWorkers; i++ {
		queueWorker, err := worker.NewQueueWorkerFromConnection(i+1, consumerConn, a.config.QueueName, router)
		if err != nil {
			return err
		}
		workers = append(workers, queueWorker)
	}

	// a failing worker cancels groupCtx, which stops the others
	group, groupCtx := errgroup.WithContext(ctx)
	for _, queueWorker := range workers {
		queueWorker := queueWorker
		group.Go(func() error {
			return queueWorker.Start(groupCtx)
		})
	}

	err = group.Wait()
	log.Info("Workers stopped")
	return err
}

func (a App) newJobRouter(producerConn *amqp.Connection) (job_router.JobRouter, error) {
	publisher, err := publish.NewRabbitMQPublisher(producerConn, a.config.ResultsQueueName)
	if err != nil {
		return job_router.JobRouter{}, err
	}

	archiver, err := a.newArchiver()
	if err != nil {
		return job_router.JobRouter{}, err
	}

	handler := process_batch.NewJobHandler(a.NewRunner(), archiver)
	return job_router.NewJobRouter(a.newBatchStore(), publisher, handler), nil
}

func (a App) newArchiver() (process_batch.OutputArchiver, error) {
	switch a.config.ArchiveBackend {
	case config.GCSArchive:
		fileStore, err := filestore.NewGoogleFileStore(a.config.GoogleCloudKey, a.config.GoogleCloudBucket)
		if err != nil {
			return nil, err
		}
		return archive.NewArchiver(fileStore, a.config.ArchivePrefix, a.config.ArchiveConcurrency), nil

	case config.MinioArchive:
		fileStore, err := filestore.NewMinioFileStore(filestore.MinioConfig{
			Endpoint:  a.config.MinioEndpoint,
			AccessKey: a.config.MinioAccessKey,
			SecretKey: a.config.MinioSecretKey,
			Bucket:    a.config.MinioBucket,
			Region:    a.config.MinioRegion,
			UseSSL:    a.config.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return archive.NewArchiver(fileStore, a.config.ArchivePrefix, a.config.ArchiveConcurrency), nil

	default:
		return archive.Disabled{}, nil
	}
}

func (a App) newBatchStore() historyentity.BatchStore {
	if a.config.BatchTableName == "" {
		return batchstore.NoopBatchStore{}
	}

	return batchstore.NewDynamoDBBatchStore(a.config.Environment, a.config.AWSRegion, a.config.BatchTableName)
}
