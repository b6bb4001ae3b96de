package dummy

import (
	"audio-joiner/src/application/archive/entity"
	"context"
	"fmt"
	"sync"
)

var _ entity.FileStore = &FileStore{}

func NewDummyFileStore() *FileStore {
	return &FileStore{
		Unavailable: false,
		FailingKeys: map[string]bool{},
		State:       make(map[string][]byte),
	}
}

type FileStore struct {
	Unavailable bool
	FailingKeys map[string]bool
	State       map[string][]byte
	mutex       sync.Mutex
}

func (f *FileStore) WriteFile(_ context.Context, key string, fileContent []byte) (string, error) {
	if f.Unavailable || f.FailingKeys[key] {
		return "", NetworkFailure
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.State[key] = append([]byte{}, fileContent...)

	return fmt.Sprintf("dummy://%s", key), nil
}

func (f *FileStore) Get(key string) ([]byte, bool) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	content, ok := f.State[key]
	return content, ok
}
