package entity

import "context"

type FileStore interface {
	// WriteFile stores content under key and returns where it ended up
	WriteFile(ctx context.Context, key string, fileContent []byte) (string, error)
}
