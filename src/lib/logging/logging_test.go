package logging_test

import (
	"audio-joiner/src/lib/logging"
	"bytes"
	"os"
	"path/filepath"

	"github.com/apex/log"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Setup", func() {
	var console *bytes.Buffer

	BeforeEach(func() {
		console = &bytes.Buffer{}
	})

	It("writes json lines to the console", func() {
		closer, err := logging.Setup(logging.Config{Level: "info", Format: logging.JSONFormat}, console)
		Expect(err).NotTo(HaveOccurred())
		defer closer.Close()

		log.WithField("file", "a.wav").Info("Processing: a.wav...")

		Expect(console.String()).To(ContainSubstring(`"message":"Processing: a.wav..."`))
		Expect(console.String()).To(ContainSubstring(`"file":"a.wav"`))
	})

	It("drops entries below the level", func() {
		closer, err := logging.Setup(logging.Config{Level: "WARN", Format: logging.TextFormat}, console)
		Expect(err).NotTo(HaveOccurred())
		defer closer.Close()

		log.Info("quiet")
		Expect(console.String()).To(BeEmpty())
	})

	It("also writes to the log file when one is set", func() {
		dir, err := os.MkdirTemp("", "logging-*")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)

		logFile := filepath.Join(dir, "logs", "audio-joiner.log")
		closer, err := logging.Setup(logging.Config{Level: "debug", Format: logging.CLIFormat, File: logFile, MaxSizeMB: 1}, console)
		Expect(err).NotTo(HaveOccurred())

		log.Info("Starting processing...")
		Expect(closer.Close()).To(Succeed())

		content, err := os.ReadFile(logFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("Starting processing..."))
	})

	It("rejects unknown formats", func() {
		_, err := logging.Setup(logging.Config{Level: "info", Format: "xml"}, console)
		Expect(err).To(HaveOccurred())
	})

	It("rejects unknown levels", func() {
		_, err := logging.Setup(logging.Config{Level: "loud", Format: logging.CLIFormat}, console)
		Expect(err).To(HaveOccurred())
	})
})
