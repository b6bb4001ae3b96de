package batch

import (
	"audio-joiner/src/lib/werror"
	"errors"
)

var ErrToolchainMissing = errors.New("FFmpeg was not found on your system. This tool requires FFmpeg to process audio files. Please install FFmpeg and add it to your PATH")

var _ error = PreconditionError{}

// PreconditionError aborts a batch before any file is touched
type PreconditionError struct {
	werror.WError
}

func newPreconditionError(message string, cause error) PreconditionError {
	return PreconditionError{
		WError: werror.WrapError(message, cause),
	}
}

func IsPreconditionError(err error) bool {
	var preconditionErr PreconditionError
	return errors.As(err, &preconditionErr)
}
