package store

import (
	"audio-joiner/src/application/archive/entity"
	"audio-joiner/src/lib/werror"
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var _ entity.FileStore = GoogleFileStore{}

const GOOGLE_STORAGE_HOST = "https://storage.googleapis.com"

type GoogleFileStore struct {
	storageClient *storage.Client
	bucket        string
}

func NewGoogleFileStore(jsonKey string, bucket string) (GoogleFileStore, error) {
	googleStorageClient, err := storage.NewClient(context.Background(), option.WithCredentialsJSON([]byte(jsonKey)))

	if err != nil {
		return GoogleFileStore{}, werror.WrapError("Failed to create Google Cloud Storage client", err)
	}

	return GoogleFileStore{
		storageClient: googleStorageClient,
		bucket:        bucket,
	}, nil
}

func (g GoogleFileStore) WriteFile(ctx context.Context, key string, fileContent []byte) (url string, err error) {
	objectHandle := g.storageClient.Bucket(g.bucket).Object(key)
	writer := objectHandle.NewWriter(ctx)
	writer.ContentType = contentType(key)
	defer func() {
		closeErr := writer.Close()
		if err == nil && closeErr != nil {
			err = werror.WrapError("Error occurred when closing the upload stream", closeErr)
		}
	}()

	if _, err = writer.Write(fileContent); err != nil {
		return "", werror.WrapError("Error occurred when uploading file", err)
	}

	return fmt.Sprintf("%s/%s/%s", GOOGLE_STORAGE_HOST, g.bucket, key), nil
}
