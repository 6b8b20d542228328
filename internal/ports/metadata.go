package ports

import (
	"context"
	"io"

	"snyk-scan-eval/internal/types"
)

//go:generate mockgen -destination=../app/mock_ports_test.go -package=app snyk-scan-eval/internal/ports MetadataSourcePort,StreamPort,ReportWriterPort

// MetadataSourcePort extracts the analytics metadata document from a CLI
// debug log stream.
type MetadataSourcePort interface {
	Extract(ctx context.Context, r io.Reader) (types.Metadata, error)
}
