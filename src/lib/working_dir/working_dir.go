package working_dir

import (
	"audio-joiner/src/lib/cerr"
	"os"
	"path/filepath"
)

// WorkingDir is a directory the application writes into. It is created on
// construction if it doesn't exist yet.
type WorkingDir struct {
	root    string
	created bool
}

func NewWorkingDir(root string) (WorkingDir, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return WorkingDir{}, cerr.Field("root", root).Wrap(err).Error("Failed to generate absolute path for working directory")
	}

	info, err := os.Stat(absRoot)
	switch {
	case err == nil && !info.IsDir():
		return WorkingDir{}, cerr.Field("root", absRoot).Error("Working directory path exists but is not a directory")
	case err == nil:
		return WorkingDir{root: absRoot}, nil
	case !os.IsNotExist(err):
		return WorkingDir{}, cerr.Field("root", absRoot).Wrap(err).Error("Failed to stat working directory")
	}

	if err := os.MkdirAll(absRoot, os.ModePerm); err != nil {
		return WorkingDir{}, cerr.Field("root", absRoot).Wrap(err).Error("Failed to create working directory")
	}

	return WorkingDir{
		root:    absRoot,
		created: true,
	}, nil
}

func (w WorkingDir) Root() string {
	return w.root
}

// Created reports whether this call made the directory, as opposed to finding it already there
func (w WorkingDir) Created() bool {
	return w.created
}
