package watch

import (
	"audio-joiner/src/application/batch"
	"audio-joiner/src/application/scanner"
	"audio-joiner/src/lib/cerr"
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/apex/log"
	"github.com/fsnotify/fsnotify"
)

const DefaultSettleTime = 500 * time.Millisecond

type BatchRunner interface {
	CheckPreconditions(request batch.Request) error
	Run(ctx context.Context, request batch.Request, sink batch.EventSink) (batch.Summary, error)
}

// Watcher processes the files already in a directory and then every
// supported file that appears in it afterwards.
type Watcher struct {
	runner     BatchRunner
	inputDir   string
	tailPath   string
	sink       batch.EventSink
	settleTime time.Duration
}

func NewWatcher(runner BatchRunner, inputDir string, tailPath string, sink batch.EventSink, settleTime time.Duration) *Watcher {
	if settleTime <= 0 {
		settleTime = DefaultSettleTime
	}

	return &Watcher{
		runner:     runner,
		inputDir:   inputDir,
		tailPath:   tailPath,
		sink:       sink,
		settleTime: settleTime,
	}
}

// Run blocks until ctx is done. Only a failure of the initial batch or of the
// watcher itself is returned.
func (w *Watcher) Run(ctx context.Context) error {
	errctx := cerr.Field("input_dir", w.inputDir)

	request := batch.Request{
		InputDir: w.inputDir,
		TailPath: w.tailPath,
	}
	if err := w.runner.CheckPreconditions(request); err != nil {
		return err
	}

	// watch before the initial batch so files arriving while it runs are not missed
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errctx.Wrap(err).Error("Failed to create file watcher")
	}
	defer watcher.Close()

	if err = watcher.Add(w.inputDir); err != nil {
		return errctx.Wrap(err).Error("Failed to watch input directory")
	}

	if _, err = w.runner.Run(ctx, request, w.sink); err != nil {
		return errctx.Wrap(err).Error("Initial batch failed")
	}

	log.WithField("input_dir", w.inputDir).Info("Watching for new audio files")

	// last event time per file; a file is processed once it has been quiet for settleTime
	pendingFiles := map[string]time.Time{}
	checkTicker := time.NewTicker(w.settleTime / 2)
	defer checkTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.WithField("input_dir", w.inputDir).Info("Stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			// processed_output is a sub-directory, so writes of outputs never show up here
			fileName := filepath.Base(event.Name)
			if !scanner.IsSupported(fileName) {
				continue
			}
			pendingFiles[fileName] = time.Now()

		case <-checkTicker.C:
			settled := w.settledFiles(pendingFiles, time.Now())
			for _, fileName := range settled {
				delete(pendingFiles, fileName)
			}
			if len(settled) > 0 {
				w.process(ctx, settled)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("File watcher error")
		}
	}
}

func (w *Watcher) settledFiles(pendingFiles map[string]time.Time, now time.Time) []string {
	settled := []string{}
	for fileName, lastEvent := range pendingFiles {
		if now.Sub(lastEvent) < w.settleTime {
			continue
		}

		info, err := os.Stat(filepath.Join(w.inputDir, fileName))
		if err != nil || !info.Mode().IsRegular() {
			// removed or replaced by something else before it settled
			delete(pendingFiles, fileName)
			continue
		}

		settled = append(settled, fileName)
	}

	sort.Strings(settled)
	return settled
}

func (w *Watcher) process(ctx context.Context, fileNames []string) {
	_, err := w.runner.Run(ctx, batch.Request{
		InputDir: w.inputDir,
		TailPath: w.tailPath,
		Files:    fileNames,
	}, w.sink)
	if err != nil {
		cerr.Log(cerr.Field("files", fileNames).Wrap(err).Error("Failed to process new files"))
	}
}
