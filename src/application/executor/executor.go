package executor

import (
	"audio-joiner/src/lib/werror"
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

var _ Executor = BinaryFileExecutor{}
var _ Command = &binaryCommand{}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Executor
type Executor interface {
	Command(name string, arg ...string) Command
	LookPath(file string) (string, error)
}

//counterfeiter:generate . Command
type Command interface {
	SetStdin(stdin io.Reader)
	// Output returns stdout. On failure the error carries whatever the process wrote to stderr.
	Output() ([]byte, error)
	CombinedOutput() ([]byte, error)
}

// the only reason this is here is to create an interface for testing
type BinaryFileExecutor struct{}

func (b BinaryFileExecutor) Command(name string, arg ...string) Command {
	return &binaryCommand{cmd: exec.Command(name, arg...)}
}

func (b BinaryFileExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

type binaryCommand struct {
	cmd *exec.Cmd
}

func (b *binaryCommand) SetStdin(stdin io.Reader) {
	b.cmd.Stdin = stdin
}

func (b *binaryCommand) Output() ([]byte, error) {
	var stdout, stderr bytes.Buffer
	b.cmd.Stdout = &stdout
	b.cmd.Stderr = &stderr

	if err := b.cmd.Run(); err != nil {
		errMsg := fmt.Sprintf("%s failed - stderr: %s", b.cmd.Path, strings.TrimSpace(stderr.String()))
		return stdout.Bytes(), werror.WrapError(errMsg, err)
	}

	return stdout.Bytes(), nil
}

func (b *binaryCommand) CombinedOutput() ([]byte, error) {
	return b.cmd.CombinedOutput()
}
