package scanner

import (
	"audio-joiner/src/lib/cerr"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrDirectoryNotFound = errors.New("directory not found")

// SupportedExtensions is the allow-list of audio file extensions, lowercased with the leading dot
var SupportedExtensions = []string{".mp3", ".m4a", ".wav", ".ogg"}

// IsSupported reports whether fileName has an allow-listed extension and a
// non-empty name before it. A bare ".mp3" has no base name to build an output from.
func IsSupported(fileName string) bool {
	base := filepath.Base(fileName)
	ext := filepath.Ext(base)
	if ext == "" || len(ext) == len(base) {
		return false
	}

	ext = strings.ToLower(ext)
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// CheckDirectory returns ErrDirectoryNotFound, wrapped, unless dir exists and is a directory
func CheckDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return cerr.Field("dir", dir).Wrap(ErrDirectoryNotFound).Error("Input directory does not exist")
		}
		return cerr.Field("dir", dir).Wrap(err).Error("Failed to stat input directory")
	}

	if !info.IsDir() {
		return cerr.Field("dir", dir).Wrap(ErrDirectoryNotFound).Error("Input path is not a directory")
	}

	return nil
}

// Scan lists the supported audio files directly inside dir, sorted by name.
// Sub-directories are never returned, whatever their names.
func Scan(dir string) ([]string, error) {
	if err := CheckDirectory(dir); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, cerr.Field("dir", dir).Wrap(err).Error("Error reading input directory")
	}

	fileNames := []string{}
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}

		if IsSupported(dirEntry.Name()) {
			fileNames = append(fileNames, dirEntry.Name())
		}
	}

	return fileNames, nil
}
