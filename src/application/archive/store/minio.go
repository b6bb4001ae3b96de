package store

import (
	"audio-joiner/src/application/archive/entity"
	"audio-joiner/src/lib/cerr"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var _ entity.FileStore = MinioFileStore{}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

type MinioFileStore struct {
	client *minio.Client
	bucket string
}

// NewMinioFileStore connects to an S3 compatible endpoint and creates the bucket if it is missing
func NewMinioFileStore(config MinioConfig) (MinioFileStore, error) {
	errctx := cerr.Field("endpoint", config.Endpoint).Field("bucket", config.Bucket)

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return MinioFileStore{}, errctx.Wrap(err).Error("Failed to create MinIO client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return MinioFileStore{}, errctx.Wrap(err).Error("Failed to check bucket")
	}

	if !exists {
		err = client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{Region: config.Region})
		if err != nil {
			return MinioFileStore{}, errctx.Wrap(err).Error("Failed to create bucket")
		}
		log.WithField("bucket", config.Bucket).Info("Created archive bucket")
	}

	return MinioFileStore{
		client: client,
		bucket: config.Bucket,
	}, nil
}

func (m MinioFileStore) WriteFile(ctx context.Context, key string, fileContent []byte) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(fileContent), int64(len(fileContent)), minio.PutObjectOptions{
		ContentType: contentType(key),
	})
	if err != nil {
		return "", cerr.Field("bucket", m.bucket).Field("key", key).Wrap(err).Error("Failed to upload object")
	}

	return fmt.Sprintf("s3://%s/%s", m.bucket, key), nil
}
