package config

import (
	"audio-joiner/src/lib/env"
	"audio-joiner/src/lib/logging"
	"audio-joiner/src/lib/werror"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ArchiveBackend string

const (
	NoArchive    ArchiveBackend = ""
	GCSArchive   ArchiveBackend = "gcs"
	MinioArchive ArchiveBackend = "minio"
)

type Config struct {
	Environment env.Environment

	FFmpegPath   string
	FFprobePath  string // derived from FFmpegPath when empty
	AudioBitrate string

	Log logging.Config

	RabbitMQURL      string
	QueueName        string
	ResultsQueueName string
	NumWorkers       int

	ArchiveBackend     ArchiveBackend
	ArchivePrefix      string
	ArchiveConcurrency int

	GoogleCloudKey    string
	GoogleCloudBucket string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioRegion    string
	MinioUseSSL    bool

	BatchTableName string
	AWSRegion      string
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// LoadDotEnv reads .env files into the process environment without overriding variables that are already set.
// Missing files are not an error.
func LoadDotEnv(files ...string) error {
	existing := []string{}
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return werror.WrapError("Failed to load .env file", err)
	}

	return nil
}

func Load() (Config, error) {
	environment, err := env.Parse(getEnv("ENVIRONMENT", string(env.Production)))
	if err != nil {
		return Config{}, err
	}

	archiveBackend := ArchiveBackend(getEnv("ARCHIVE_BACKEND", string(NoArchive)))
	switch archiveBackend {
	case NoArchive, GCSArchive, MinioArchive:
	default:
		return Config{}, werror.Wrapf(nil, "Unknown archive backend: %s", archiveBackend)
	}

	return Config{
		Environment: environment,

		FFmpegPath:   getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:  getEnv("FFPROBE_PATH", ""),
		AudioBitrate: getEnv("AUDIO_BITRATE", "192k"),

		Log: logging.Config{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     logging.Format(getEnv("LOG_FORMAT", string(logging.CLIFormat))),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 28),
		},

		RabbitMQURL:      getEnv("RABBITMQ_URL", ""),
		QueueName:        getEnv("RABBITMQ_QUEUE_NAME", "audio-joiner"),
		ResultsQueueName: getEnv("RABBITMQ_RESULTS_QUEUE_NAME", "audio-joiner-results"),
		NumWorkers:       getEnvInt("NUM_WORKERS", 1),

		ArchiveBackend:     archiveBackend,
		ArchivePrefix:      getEnv("ARCHIVE_PREFIX", "processed"),
		ArchiveConcurrency: getEnvInt("ARCHIVE_CONCURRENCY", 4),

		GoogleCloudKey:    getEnv("GOOGLE_CLOUD_KEY", ""),
		GoogleCloudBucket: getEnv("GOOGLE_CLOUD_STORAGE_BUCKET_NAME", ""),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", ""),
		MinioRegion:    getEnv("MINIO_REGION", "us-east-1"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", true),

		BatchTableName: getEnv("BATCH_TABLE_NAME", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-2"),
	}, nil
}

// ValidateWorker checks the settings the queue worker cannot run without
func (c Config) ValidateWorker() error {
	if c.RabbitMQURL == "" {
		return werror.WrapError("RABBITMQ_URL is required to run the worker", nil)
	}

	if c.NumWorkers < 1 {
		return werror.WrapError("NUM_WORKERS must be at least 1", nil)
	}

	switch c.ArchiveBackend {
	case GCSArchive:
		if c.GoogleCloudKey == "" || c.GoogleCloudBucket == "" {
			return werror.WrapError("GOOGLE_CLOUD_KEY and GOOGLE_CLOUD_STORAGE_BUCKET_NAME are required for the gcs archive", nil)
		}
	case MinioArchive:
		if c.MinioEndpoint == "" || c.MinioBucket == "" {
			return werror.WrapError("MINIO_ENDPOINT and MINIO_BUCKET are required for the minio archive", nil)
		}
	}

	return nil
}
