package batch

import (
	"audio-joiner/src/application/processor"
	"fmt"
	"time"
)

type Request struct {
	BatchID  string
	InputDir string
	TailPath string
	// Files restricts the batch to these entries of InputDir. Nil means scan the directory.
	Files []string
}

type Summary struct {
	BatchID        string                       `json:"batch_id"`
	InputDir       string                       `json:"input_dir"`
	OutputDir      string                       `json:"output_dir"`
	Results        []processor.ProcessingResult `json:"results"`
	SucceededCount int                          `json:"succeeded_count"`
	Total          int                          `json:"total"`
	StartedAt      time.Time                    `json:"started_at"`
	FinishedAt     time.Time                    `json:"finished_at"`
}

func (s Summary) FailedCount() int {
	return s.Total - s.SucceededCount
}

func (s Summary) String() string {
	return fmt.Sprintf("Processing complete. %d/%d files processed successfully.", s.SucceededCount, s.Total)
}

// Report is the closing text shown to the user once a batch returns
func (s Summary) Report() string {
	if s.Total == 0 {
		return NoFilesMessage
	}

	return fmt.Sprintf("%s\nOutput saved to: %s", s.String(), s.OutputDir)
}

func (s *Summary) add(result processor.ProcessingResult) {
	s.Results = append(s.Results, result)
	s.Total++
	if result.Succeeded {
		s.SucceededCount++
	}
}
