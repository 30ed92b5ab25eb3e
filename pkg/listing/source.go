package listing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/matzehuels/depdot/pkg/errors"
)

// Source produces the raw text of a dependency listing. The core does
// not care how the listing was produced; files, stdin, and external
// producer processes are all sources.
type Source interface {
	// Listing returns the complete listing text. The call blocks until
	// the whole listing is available; there is no streaming.
	Listing(ctx context.Context) (string, error)

	// Describe returns a short human-readable description for logging.
	Describe() string
}

// FileSource reads the listing from a file.
type FileSource struct {
	Path string
}

func (s FileSource) Listing(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSourceFailed, err, "read %s", s.Path)
	}
	return string(data), nil
}

func (s FileSource) Describe() string { return s.Path }

// ReaderSource reads the listing from an io.Reader, typically stdin.
type ReaderSource struct {
	Reader io.Reader
	Name   string
}

func (s ReaderSource) Listing(ctx context.Context) (string, error) {
	data, err := io.ReadAll(s.Reader)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSourceFailed, err, "read %s", s.Describe())
	}
	return string(data), nil
}

func (s ReaderSource) Describe() string {
	if s.Name != "" {
		return s.Name
	}
	return "stdin"
}

// CommandSource runs an external producer process and captures its
// stdout as the listing. The call blocks until the process exits; a
// non-zero exit status is an error and the captured stderr is included
// in the message rather than handing partial output to the parser.
type CommandSource struct {
	Name string
	Args []string
}

// ParseCommand splits a shell-ish command string on whitespace into a
// CommandSource. No quoting is supported; producers needing shell
// features should be wrapped in a script.
func ParseCommand(cmdline string) (CommandSource, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return CommandSource{}, errors.New(errors.ErrCodeSourceFailed, "empty command")
	}
	return CommandSource{Name: fields[0], Args: fields[1:]}, nil
}

func (s CommandSource) Listing(ctx context.Context) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, s.Name, s.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", errors.Wrap(errors.ErrCodeSourceFailed, err, "run %s", s.Describe())
	}
	return stdout.String(), nil
}

func (s CommandSource) Describe() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	return s.Name + " " + strings.Join(s.Args, " ")
}
