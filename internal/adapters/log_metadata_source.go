package adapters

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"snyk-scan-eval/internal/ports"
	"snyk-scan-eval/internal/shared"
	"snyk-scan-eval/internal/types"
)

const (
	DefaultAnalyticsPrefix = "analytics.report:2 - [0] Data: "
	// DefaultRepairVersions matches the CLI release that truncates the
	// analytics payload after a sanitized branch name.
	DefaultRepairVersions = "==1.1297.3"

	durationMsMarker      = `"durationMs": `
	scannedProjectsMarker = `"scannedProjects": `
	truncatedSuffix       = "***"
	truncatedCloser       = `"}}}}}`
	sanitizedToken        = "****"
	sanitizedReplacement  = "data"
	maxLogLineBytes       = 16 * 1024 * 1024
)

// LogMetadataSource reads a CLI debug log and produces the analytics
// metadata document. The analytics line, the duration fallback and the
// scanned-projects fallback are located by independent extractors.
type LogMetadataSource struct {
	Analytics       AnalyticsLineExtractor
	Duration        IntFieldExtractor
	ScannedProjects IntFieldExtractor
	// CLIVersion is the version of the CLI that produced the log, when
	// known. An empty version does not block payload repair.
	CLIVersion     string
	repairVersions pep440.Specifiers
}

func NewLogMetadataSource(prefix string, cliVersion string, repairVersions string) (LogMetadataSource, error) {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultAnalyticsPrefix
	}
	if strings.TrimSpace(repairVersions) == "" {
		repairVersions = DefaultRepairVersions
	}
	specs, err := pep440.NewSpecifiers(repairVersions)
	if err != nil {
		return LogMetadataSource{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid repair version specifier %q", repairVersions)).
			WithCause(err)
	}
	return LogMetadataSource{
		Analytics:       AnalyticsLineExtractor{Prefix: prefix},
		Duration:        IntFieldExtractor{Marker: durationMsMarker},
		ScannedProjects: IntFieldExtractor{Marker: scannedProjectsMarker},
		CLIVersion:      strings.TrimSpace(cliVersion),
		repairVersions:  specs,
	}, nil
}

func (s LogMetadataSource) Extract(ctx context.Context, r io.Reader) (types.Metadata, error) {
	lines, err := readLines(ctx, r)
	if err != nil {
		return nil, err
	}
	payload, at, ok := s.Analytics.Extract(lines)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("cli scan metadata line not found")
	}

	repaired := false
	if strings.HasSuffix(payload, truncatedSuffix) && s.repairAllowed() {
		payload += truncatedCloser
		repaired = true
		log.Debug().Str("cli_version", s.CLIVersion).Msg("repairing truncated analytics payload")
	}
	payload = strings.ReplaceAll(payload, sanitizedToken, sanitizedReplacement)

	doc, err := decodePayload(payload)
	if err != nil {
		return nil, err
	}

	if repaired {
		durationMs, _ := s.Duration.Extract(lines[:at])
		if attributes, ok := objectPath(doc, types.MetadataKeyData, types.MetadataKeyAttributes); ok {
			attributes[types.MetadataKeyRuntime] = map[string]any{
				types.MetadataKeyPerformance: map[string]any{types.MetadataKeyDurationMs: durationMs},
			}
		}
	}
	if extension, ok := objectPath(doc,
		types.MetadataKeyData,
		types.MetadataKeyAttributes,
		types.MetadataKeyInteraction,
		types.MetadataKeyExtension,
	); ok {
		if _, present := extension[types.ExtensionKeyScannedProjects]; !present {
			scannedProjects, _ := s.ScannedProjects.Extract(lines[:at])
			extension[types.ExtensionKeyScannedProjects] = scannedProjects
		}
	}
	return doc, nil
}

func (s LogMetadataSource) repairAllowed() bool {
	if s.CLIVersion == "" {
		return true
	}
	version, err := pep440.Parse(s.CLIVersion)
	if err != nil {
		log.Debug().Str("cli_version", s.CLIVersion).Err(err).Msg("unparseable cli version, allowing repair")
		return true
	}
	return s.repairVersions.Check(version)
}

// AnalyticsLineExtractor returns the payload after Prefix on the first
// line containing it, together with that line's index. Fallback
// extractors only look at lines before the index.
type AnalyticsLineExtractor struct {
	Prefix string
}

func (e AnalyticsLineExtractor) Extract(lines []string) (string, int, bool) {
	for idx, line := range lines {
		if payload, ok := shared.TrailingAfter(strings.TrimSpace(line), e.Prefix); ok {
			return payload, idx, true
		}
	}
	return "", 0, false
}

// IntFieldExtractor returns the integer following Marker on the last of
// the given lines containing it. Pretty-printed JSON lines end with a comma, which is
// dropped.
type IntFieldExtractor struct {
	Marker string
}

func (e IntFieldExtractor) Extract(lines []string) (int, bool) {
	value, found := 0, false
	for _, line := range lines {
		if parsed, ok := shared.TrailingInt(line, e.Marker); ok {
			value, found = parsed, true
		}
	}
	return value, found
}

func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLineBytes)
	var lines []string
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read cli debug log").
			WithCause(err)
	}
	return lines, nil
}

func decodePayload(payload string) (types.Metadata, error) {
	var doc types.Metadata
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		msg := "failed to decode analytics metadata"
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			msg = fmt.Sprintf("failed to decode analytics metadata at position %d", syntaxErr.Offset)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(msg).
			WithCause(err)
	}
	if doc == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("analytics metadata is not a json object")
	}
	return doc, nil
}

func objectPath(doc map[string]any, path ...string) (map[string]any, bool) {
	current := doc
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

var _ ports.MetadataSourcePort = LogMetadataSource{}
