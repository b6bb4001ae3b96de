package processor

import (
	"fmt"
	"path/filepath"
)

type ProcessingJob struct {
	InputPath string
	TailPath  string
	OutputDir string
}

func (p ProcessingJob) FileName() string {
	return filepath.Base(p.InputPath)
}

type ProcessingResult struct {
	SourceFileName string `json:"source_file_name"`
	Succeeded      bool   `json:"succeeded"`
	Message        string `json:"message"`
	// OutputPath is empty unless the job succeeded
	OutputPath string `json:"output_path,omitempty"`
}

func succeeded(fileName string, outputPath string) ProcessingResult {
	return ProcessingResult{
		SourceFileName: fileName,
		Succeeded:      true,
		Message:        fmt.Sprintf("Successfully processed: %s", fileName),
		OutputPath:     outputPath,
	}
}

func failed(fileName string, err error) ProcessingResult {
	return ProcessingResult{
		SourceFileName: fileName,
		Succeeded:      false,
		Message:        fmt.Sprintf("Error processing %s: %s", fileName, err.Error()),
	}
}
