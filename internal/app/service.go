package app

import (
	"github.com/google/uuid"

	"snyk-scan-eval/internal/adapters"
	"snyk-scan-eval/internal/ports"
)

// MetadataSourceFactory builds the debug-log reader for one request.
type MetadataSourceFactory func(prefix string, cliVersion string, repairVersions string) (ports.MetadataSourcePort, error)

type Service struct {
	Streams        ports.StreamPort
	ReportWriter   ports.ReportWriterPort
	MetadataSource MetadataSourceFactory
	NewID          func() string
}

func NewService() Service {
	return Service{
		Streams:        adapters.NewFileStreamAdapter(),
		ReportWriter:   adapters.NewReportWriterAdapter(),
		MetadataSource: newLogMetadataSource,
		NewID:          uuid.NewString,
	}
}

func newLogMetadataSource(prefix string, cliVersion string, repairVersions string) (ports.MetadataSourcePort, error) {
	source, err := adapters.NewLogMetadataSource(prefix, cliVersion, repairVersions)
	if err != nil {
		return nil, err
	}
	return source, nil
}
