package ports

import "io"

type StreamPort interface {
	OpenLog(path string) (io.ReadCloser, error)
	OpenReport(path string) (io.WriteCloser, error)
}
