package batch

import (
	"audio-joiner/src/application/processor"

	"github.com/apex/log"
)

type EventType string

const (
	ScanStartedEvent      EventType = "scan_started"
	OutputDirCreatedEvent EventType = "output_dir_created"
	NoFilesEvent          EventType = "no_files"
	FileStartedEvent      EventType = "file_started"
	FileFinishedEvent     EventType = "file_finished"
	BatchFinishedEvent    EventType = "batch_finished"
)

type Event struct {
	Type     EventType
	FileName string
	Message  string
	// Result is set on FileFinishedEvent only
	Result *processor.ProcessingResult
}

type EventSink interface {
	Emit(event Event)
}

type EventSinkFunc func(event Event)

func (f EventSinkFunc) Emit(event Event) {
	f(event)
}

var _ EventSink = LogSink{}

// LogSink writes every event as a log line
type LogSink struct {
	Logger log.Interface
}

func (l LogSink) Emit(event Event) {
	logger := l.Logger
	if logger == nil {
		logger = log.Log
	}

	entry := logger.WithField("event", event.Type)
	if event.FileName != "" {
		entry = entry.WithField("file", event.FileName)
	}

	if event.Result != nil && !event.Result.Succeeded {
		entry.Warn(event.Message)
		return
	}

	entry.Info(event.Message)
}

type multiSink []EventSink

func (m multiSink) Emit(event Event) {
	for _, sink := range m {
		sink.Emit(event)
	}
}

// Sinks fans each event out to every sink in order
func Sinks(sinks ...EventSink) EventSink {
	return multiSink(sinks)
}
