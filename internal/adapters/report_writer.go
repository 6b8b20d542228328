package adapters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"snyk-scan-eval/internal/ports"
	"snyk-scan-eval/internal/types"
)

type ReportWriterAdapter struct{}

func NewReportWriterAdapter() ReportWriterAdapter {
	return ReportWriterAdapter{}
}

// reportDocument fixes the key order of the printed summary. Nil fields
// are omitted so that the empty result prints as {}.
type reportDocument struct {
	ScannedManifests *[]types.ManifestPath `json:"scanned_manifests,omitempty" yaml:"scanned_manifests,omitempty"`
	SkippedManifests *[]types.ManifestPath `json:"skipped_manifests,omitempty" yaml:"skipped_manifests,omitempty"`
	ErrorIndicator   *bool                 `json:"error_indicator,omitempty" yaml:"error_indicator,omitempty"`
	ErrorMessage     *string               `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	Status           *types.ScanStatus     `json:"status,omitempty" yaml:"status,omitempty"`
	DurationSec      *float64              `json:"duration_sec,omitempty" yaml:"duration_sec,omitempty"`
}

func newReportDocument(result types.ScanResult) reportDocument {
	doc := reportDocument{}
	if m := result.Measurement; m != nil {
		scanned := nonNil(m.ScannedManifests)
		skipped := nonNil(m.SkippedManifests)
		indicator := m.ErrorIndicator
		message := m.ErrorMessage
		doc.ScannedManifests = &scanned
		doc.SkippedManifests = &skipped
		doc.ErrorIndicator = &indicator
		doc.ErrorMessage = &message
	} else if result.ErrorMessage != "" {
		message := result.ErrorMessage
		doc.ErrorMessage = &message
	}
	if result.Status != "" {
		status := result.Status
		doc.Status = &status
	}
	if result.HasDuration {
		duration := result.DurationSec
		doc.DurationSec = &duration
	}
	return doc
}

func (a ReportWriterAdapter) Write(w io.Writer, format types.OutputFormat, result types.ScanResult) error {
	doc := newReportDocument(result)
	switch format {
	case types.OutputFormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write json report").
				WithCause(err)
		}
		return nil
	case types.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write yaml report").
				WithCause(err)
		}
		if err := encoder.Close(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to flush yaml report").
				WithCause(err)
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", format))
	}
}

func nonNil(paths []types.ManifestPath) []types.ManifestPath {
	if paths == nil {
		return []types.ManifestPath{}
	}
	return paths
}

var _ ports.ReportWriterPort = ReportWriterAdapter{}
