package ports

import (
	"io"

	"snyk-scan-eval/internal/types"
)

type ReportWriterPort interface {
	Write(w io.Writer, format types.OutputFormat, result types.ScanResult) error
}
