package codec

import "audio-joiner/src/application/audio"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Codec
type Codec interface {
	// Probe reads the native format of the first audio stream in a file
	Probe(path string) (audio.Format, error)
	// Decode reads a file into memory, converted to the requested format
	Decode(path string, format audio.Format) (audio.Clip, error)
	// Encode writes a clip to outputPath using the named container muxer
	Encode(clip audio.Clip, outputPath string, muxer string) error
	// Available reports whether the external toolchain can be found
	Available() bool
}
