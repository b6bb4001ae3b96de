package processor

import (
	"audio-joiner/src/lib/cerr"
	"path/filepath"
	"strings"
)

const OutputSuffix = "_processed"

// muxers maps a lowercased extension to the ffmpeg muxer that writes it.
// ffmpeg has no "m4a" muxer; "ipod" writes the same MPEG-4 audio container.
var muxers = map[string]string{
	".mp3": "mp3",
	".m4a": "ipod",
	".wav": "wav",
	".ogg": "ogg",
}

// OutputFileName maps song.mp3 to song_processed.mp3, keeping the extension's case
func OutputFileName(inputFileName string) string {
	base := filepath.Base(inputFileName)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + OutputSuffix + ext
}

func MuxerForExtension(ext string) (string, error) {
	muxer, ok := muxers[strings.ToLower(ext)]
	if !ok {
		return "", cerr.Field("extension", ext).Error("No output format for extension")
	}
	return muxer, nil
}
