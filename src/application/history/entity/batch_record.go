package entity

import (
	"audio-joiner/src/application/batch"
	"time"
)

type BatchStatus string

const (
	CompletedStatus BatchStatus = "completed"
	ErrorStatus     BatchStatus = "error"
)

type FileRecord struct {
	SourceFileName string `dynamodbav:"source_file_name"`
	Succeeded      bool   `dynamodbav:"succeeded"`
	Message        string `dynamodbav:"message"`
	OutputPath     string `dynamodbav:"output_path,omitempty"`
	ArchiveURL     string `dynamodbav:"archive_url,omitempty"`
}

type BatchRecord struct {
	BatchID        string       `dynamodbav:"batch_id"`
	Status         BatchStatus  `dynamodbav:"status"`
	StatusMessage  string       `dynamodbav:"status_message"`
	InputDir       string       `dynamodbav:"input_dir"`
	OutputDir      string       `dynamodbav:"output_dir,omitempty"`
	SucceededCount int          `dynamodbav:"succeeded_count"`
	Total          int          `dynamodbav:"total"`
	Files          []FileRecord `dynamodbav:"files"`
	StartedAt      time.Time    `dynamodbav:"started_at"`
	FinishedAt     time.Time    `dynamodbav:"finished_at"`
}

// CompletedRecord records a batch that ran to the end, whatever its per-file outcome.
// archiveURLs maps a source file name to its uploaded location and may be nil.
func CompletedRecord(summary batch.Summary, archiveURLs map[string]string) BatchRecord {
	files := make([]FileRecord, 0, len(summary.Results))
	for _, result := range summary.Results {
		files = append(files, FileRecord{
			SourceFileName: result.SourceFileName,
			Succeeded:      result.Succeeded,
			Message:        result.Message,
			OutputPath:     result.OutputPath,
			ArchiveURL:     archiveURLs[result.SourceFileName],
		})
	}

	return BatchRecord{
		BatchID:        summary.BatchID,
		Status:         CompletedStatus,
		StatusMessage:  summary.String(),
		InputDir:       summary.InputDir,
		OutputDir:      summary.OutputDir,
		SucceededCount: summary.SucceededCount,
		Total:          summary.Total,
		Files:          files,
		StartedAt:      summary.StartedAt,
		FinishedAt:     summary.FinishedAt,
	}
}

func ErrorRecord(batchID string, inputDir string, jobError error, at time.Time) BatchRecord {
	return BatchRecord{
		BatchID:       batchID,
		Status:        ErrorStatus,
		StatusMessage: jobError.Error(),
		InputDir:      inputDir,
		Files:         []FileRecord{},
		StartedAt:     at,
		FinishedAt:    at,
	}
}
