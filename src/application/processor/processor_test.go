package processor_test

import (
	"audio-joiner/src/application/audio"
	"audio-joiner/src/application/codec/codecfakes"
	"audio-joiner/src/application/processor"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

func silence(format audio.Format, frames int) audio.Clip {
	clip, err := audio.NewClip(format, make([]int16, frames*format.Channels))
	Expect(err).NotTo(HaveOccurred())
	return clip
}

var _ = Describe("Naming", func() {
	It("adds the suffix before the extension", func() {
		Expect(processor.OutputFileName("song.mp3")).To(Equal("song_processed.mp3"))
		Expect(processor.OutputFileName("clip.m4a")).To(Equal("clip_processed.m4a"))
		Expect(processor.OutputFileName("/in/my.song.WAV")).To(Equal("my.song_processed.WAV"))
	})

	It("maps m4a to the ipod muxer", func() {
		muxer, err := processor.MuxerForExtension(".M4A")
		Expect(err).NotTo(HaveOccurred())
		Expect(muxer).To(Equal("ipod"))
	})

	It("maps the other extensions to their own muxer", func() {
		for ext, want := range map[string]string{".mp3": "mp3", ".wav": "wav", ".ogg": "ogg"} {
			muxer, err := processor.MuxerForExtension(ext)
			Expect(err).NotTo(HaveOccurred())
			Expect(muxer).To(Equal(want))
		}
	})

	It("rejects unknown extensions", func() {
		_, err := processor.MuxerForExtension(".flac")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("FileProcessor", func() {
	var (
		outputDir string
		format    audio.Format
		fakeCodec *codecfakes.FakeCodec
		fp        processor.FileProcessor
		job       processor.ProcessingJob

		inputFrames int
		tailFrames  int
	)

	BeforeEach(func() {
		var err error
		outputDir, err = os.MkdirTemp("", "processor-test-*")
		Expect(err).NotTo(HaveOccurred())

		format = audio.Format{SampleRate: 1000, Channels: 2}
		inputFrames = 1100
		tailFrames = 250

		fakeCodec = &codecfakes.FakeCodec{}
		fakeCodec.ProbeReturns(format, nil)
		fakeCodec.DecodeCalls(func(path string, f audio.Format) (audio.Clip, error) {
			if path == "/in/outro.wav" {
				return silence(f, tailFrames), nil
			}
			return silence(f, inputFrames), nil
		})
		fakeCodec.EncodeCalls(func(_ audio.Clip, path string, _ string) error {
			return os.WriteFile(path, []byte("encoded"), 0644)
		})

		fp = processor.NewFileProcessor(fakeCodec)
		job = processor.ProcessingJob{
			InputPath: "/in/song.mp3",
			TailPath:  "/in/outro.wav",
			OutputDir: outputDir,
		}
	})

	AfterEach(func() {
		_ = os.RemoveAll(outputDir)
	})

	Describe("Happy path", func() {
		var result processor.ProcessingResult

		JustBeforeEach(func() {
			result = fp.Process(job)
		})

		It("succeeds with a confirmation message", func() {
			Expect(result.Succeeded).To(BeTrue())
			Expect(result.SourceFileName).To(Equal("song.mp3"))
			Expect(result.Message).To(Equal("Successfully processed: song.mp3"))
		})

		It("writes the output under the processed name", func() {
			expected := filepath.Join(outputDir, "song_processed.mp3")
			Expect(result.OutputPath).To(Equal(expected))
			Expect(expected).To(BeAnExistingFile())
		})

		It("leaves no partial file behind", func() {
			entries, err := os.ReadDir(outputDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})

		It("decodes the tail in the input's format", func() {
			path, f := fakeCodec.DecodeArgsForCall(1)
			Expect(path).To(Equal("/in/outro.wav"))
			Expect(f).To(Equal(format))
		})

		It("joins sped up, sped up and tail", func() {
			clip, _, muxer := fakeCodec.EncodeArgsForCall(0)
			Expect(muxer).To(Equal("mp3"))

			sped := audio.SpedUpFrames(inputFrames, processor.SpeedRatio)
			Expect(sped).To(Equal(1000))
			Expect(clip.Frames()).To(Equal(2*sped + tailFrames))
		})
	})

	Describe("Tail caching", func() {
		It("decodes the tail once per format", func() {
			fp.Process(job)
			job.InputPath = "/in/other.mp3"
			fp.Process(job)

			Expect(fakeCodec.DecodeCallCount()).To(Equal(3))
		})

		It("decodes the tail again for a different format", func() {
			fp.Process(job)
			fakeCodec.ProbeReturns(audio.Format{SampleRate: 1000, Channels: 1}, nil)
			job.InputPath = "/in/mono.wav"
			fp.Process(job)

			Expect(fakeCodec.DecodeCallCount()).To(Equal(4))
		})
	})

	Describe("m4a input", func() {
		It("encodes with the ipod muxer but keeps the m4a name", func() {
			job.InputPath = "/in/clip.m4a"

			result := fp.Process(job)
			Expect(result.Succeeded).To(BeTrue())
			Expect(result.OutputPath).To(Equal(filepath.Join(outputDir, "clip_processed.m4a")))

			_, _, muxer := fakeCodec.EncodeArgsForCall(0)
			Expect(muxer).To(Equal("ipod"))
		})
	})

	Describe("Failures", func() {
		It("reports an unreadable input", func() {
			fakeCodec.ProbeReturns(audio.Format{}, errors.New("Invalid data found when processing input"))

			result := fp.Process(job)
			Expect(result.Succeeded).To(BeFalse())
			Expect(result.Message).To(HavePrefix("Error processing song.mp3: "))
			Expect(result.Message).To(ContainSubstring("Invalid data found when processing input"))
			Expect(result.OutputPath).To(BeEmpty())
		})

		It("reports a tail that cannot be decoded", func() {
			fakeCodec.DecodeReturnsOnCall(0, silence(format, 10), nil)
			fakeCodec.DecodeReturnsOnCall(1, audio.Clip{}, errors.New("tail is broken"))

			result := fp.Process(job)
			Expect(result.Succeeded).To(BeFalse())
			Expect(result.Message).To(ContainSubstring("tail is broken"))
		})

		It("reports an encoder failure and cleans up", func() {
			fakeCodec.EncodeCalls(func(_ audio.Clip, path string, _ string) error {
				Expect(os.WriteFile(path, []byte("half"), 0644)).To(Succeed())
				return errors.New("Unknown encoder")
			})

			result := fp.Process(job)
			Expect(result.Succeeded).To(BeFalse())
			Expect(result.Message).To(ContainSubstring("Unknown encoder"))

			entries, err := os.ReadDir(outputDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		It("reports an unsupported extension", func() {
			job.InputPath = "/in/notes.txt"

			result := fp.Process(job)
			Expect(result.Succeeded).To(BeFalse())
			Expect(fakeCodec.ProbeCallCount()).To(BeZero())
		})
	})
})
