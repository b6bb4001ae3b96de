package working_dir_test

import (
	"audio-joiner/src/lib/working_dir"
	"os"
	"path/filepath"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("WorkingDir", func() {
	var parent string

	BeforeEach(func() {
		var err error
		parent, err = os.MkdirTemp("", "working-dir-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(parent)
	})

	It("creates a missing directory and says so", func() {
		root := filepath.Join(parent, "nested", "out")

		dir, err := working_dir.NewWorkingDir(root)
		Expect(err).NotTo(HaveOccurred())
		Expect(dir.Created()).To(BeTrue())
		Expect(dir.Root()).To(BeADirectory())
	})

	It("reuses an existing directory", func() {
		dir, err := working_dir.NewWorkingDir(parent)
		Expect(err).NotTo(HaveOccurred())
		Expect(dir.Created()).To(BeFalse())
		Expect(dir.Root()).To(Equal(parent))
	})

	It("refuses a path that is a file", func() {
		filePath := filepath.Join(parent, "file")
		Expect(os.WriteFile(filePath, []byte("x"), 0644)).To(Succeed())

		_, err := working_dir.NewWorkingDir(filePath)
		Expect(err).To(HaveOccurred())
	})
})
