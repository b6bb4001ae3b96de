package cerr

import (
	"errors"

	"github.com/apex/log"
)

func Log(err error) {
	LogTo(log.Log, err)
}

func LogTo(logger log.Interface, err error) {
	var ctxErr ContextualError
	if !errors.As(err, &ctxErr) {
		logger.Error(err.Error())
		return
	}

	logger.WithFields(log.Fields(ctxErr.Fields())).Error(err.Error())
}
