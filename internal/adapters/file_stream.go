package adapters

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"snyk-scan-eval/internal/ports"
)

// FileStreamAdapter opens the debug log and the report destination. An
// empty path or "-" selects stdin or stdout.
type FileStreamAdapter struct {
	Stdin  io.Reader
	Stdout io.Writer
}

func NewFileStreamAdapter() FileStreamAdapter {
	return FileStreamAdapter{Stdin: os.Stdin, Stdout: os.Stdout}
}

func (a FileStreamAdapter) OpenLog(path string) (io.ReadCloser, error) {
	if isStdStream(path) {
		return io.NopCloser(a.Stdin), nil
	}
	file, err := os.Open(strings.TrimSpace(path))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("debug log not found").
			WithCause(err)
	}
	return file, nil
}

func (a FileStreamAdapter) OpenReport(path string) (io.WriteCloser, error) {
	if isStdStream(path) {
		return nopWriteCloser{Writer: a.Stdout}, nil
	}
	trimmed := strings.TrimSpace(path)
	if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	file, err := os.Create(trimmed)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report file").
			WithCause(err)
	}
	return file, nil
}

func isStdStream(path string) bool {
	trimmed := strings.TrimSpace(path)
	return trimmed == "" || trimmed == "-"
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

var _ ports.StreamPort = FileStreamAdapter{}
