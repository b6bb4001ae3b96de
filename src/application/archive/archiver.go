package archive

import (
	"audio-joiner/src/application/archive/entity"
	"audio-joiner/src/application/batch"
	"audio-joiner/src/lib/cerr"
	"context"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

type Report struct {
	// Locations maps a source file name to where its output was uploaded
	Locations map[string]string `json:"locations,omitempty"`
	// Failures maps a source file name to the upload error text
	Failures map[string]string `json:"failures,omitempty"`
}

func (r Report) UploadedCount() int {
	return len(r.Locations)
}

type Archiver struct {
	fileStore   entity.FileStore
	prefix      string
	concurrency int
}

func NewArchiver(fileStore entity.FileStore, prefix string, concurrency int) Archiver {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return Archiver{
		fileStore:   fileStore,
		prefix:      prefix,
		concurrency: concurrency,
	}
}

func (a Archiver) ObjectKey(batchID string, outputPath string) string {
	return path.Join(a.prefix, batchID, filepath.Base(outputPath))
}

// Archive uploads every succeeded output of the batch. Upload failures are
// collected in the report and never stop the other uploads.
func (a Archiver) Archive(ctx context.Context, summary batch.Summary) Report {
	report := Report{
		Locations: map[string]string{},
		Failures:  map[string]string{},
	}
	var mutex sync.Mutex

	group := errgroup.Group{}
	group.SetLimit(a.concurrency)

	for _, result := range summary.Results {
		if !result.Succeeded || result.OutputPath == "" {
			continue
		}

		result := result
		group.Go(func() error {
			location, err := a.upload(ctx, summary.BatchID, result.OutputPath)

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				cerr.Log(err)
				report.Failures[result.SourceFileName] = err.Error()
				return nil
			}

			report.Locations[result.SourceFileName] = location
			return nil
		})
	}

	_ = group.Wait()

	log.WithFields(log.Fields{
		"batch_id": summary.BatchID,
		"uploaded": len(report.Locations),
		"failed":   len(report.Failures),
	}).Info("Archived batch outputs")

	return report
}

func (a Archiver) upload(ctx context.Context, batchID string, outputPath string) (string, error) {
	key := a.ObjectKey(batchID, outputPath)
	errctx := cerr.Field("output_path", outputPath).Field("key", key)

	if err := ctx.Err(); err != nil {
		return "", errctx.Wrap(err).Error("Archive cancelled")
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		return "", errctx.Wrap(err).Error("Failed to read output file")
	}

	location, err := a.fileStore.WriteFile(ctx, key, content)
	if err != nil {
		return "", errctx.Wrap(err).Error("Failed to upload output file")
	}

	return location, nil
}

// Disabled is used when no archive backend is configured
type Disabled struct{}

func (Disabled) Archive(_ context.Context, _ batch.Summary) Report {
	return Report{}
}
