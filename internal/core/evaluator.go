package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"snyk-scan-eval/internal/shared"
	"snyk-scan-eval/internal/types"
)

const (
	executionErrorMessage   = "error at snyk test cli execution, examine the debug logs"
	noSupportedFilesMessage = "failure due to no supported manifests detected"
	requiredFlagsHint       = "ensure snyk cli cmd includes --all-projects --debug"
)

// ScanEvaluator turns the analytics metadata of one CLI run into a
// ScanResult.
type ScanEvaluator struct {
	Reconciler SequenceReconciler
	Dedup      Deduplicator
	// ExitCodeOverride replaces the exit code recorded in the metadata,
	// for hosts that observed the CLI process directly.
	ExitCodeOverride *types.CLIExitCode
}

func NewScanEvaluator(reconciler SequenceReconciler, dedup Deduplicator) ScanEvaluator {
	return ScanEvaluator{Reconciler: reconciler, Dedup: dedup}
}

// Evaluate never fails on missing metadata keys: it logs the key and
// returns the empty result. Errors are reserved for reconciliation
// failures.
func (e ScanEvaluator) Evaluate(ctx context.Context, doc types.Metadata) (types.ScanResult, error) {
	extension, err := extensionObject(doc)
	if err != nil {
		return emptyOnMissingKey(err)
	}
	exitCode, err := e.exitCode(extension)
	if err != nil {
		return emptyOnMissingKey(err)
	}

	result := types.ScanResult{}
	switch {
	case exitCode.Completed():
		scan, err := DecodeScanExtension(extension)
		if err != nil {
			return emptyOnMissingKey(err)
		}
		measurement, err := e.Measure(scan)
		if err != nil {
			return types.ScanResult{}, err
		}
		assert.Assert(ctx,
			len(measurement.ScannedManifests)+len(measurement.SkippedManifests) == len(scan.TargetFiles),
			"every declared manifest must be classified exactly once")
		result.Measurement = &measurement
	case exitCode == types.CLIExitCodeExecutionError:
		result.ErrorMessage = executionErrorMessage
	case exitCode == types.CLIExitCodeNoSupportedFiles:
		result.ErrorMessage = noSupportedFilesMessage
	default:
		log.Debug().Int("exit_code", int(exitCode)).Msg("unrecognised cli exit code")
	}

	durationMs, err := durationMillis(doc)
	if err != nil {
		return emptyOnMissingKey(err)
	}
	result.Status = EvalScanStatus(exitCode, result.Skipped())
	result.DurationSec = durationMs / 1000
	result.HasDuration = true

	log.Debug().
		Int("exit_code", int(exitCode)).
		Str("status", string(result.Status)).
		Float64("duration_sec", result.DurationSec).
		Msg("scan evaluated")
	return result, nil
}

// Measure reconciles the declared manifests against the scanned package
// managers, collapsing multi-project reports first when more projects
// were scanned than manifests declared.
func (e ScanEvaluator) Measure(scan types.ScanExtension) (types.ManifestMeasurement, error) {
	scanned := scan.ScannedPackageManagers
	if scan.MultiProjectBuild() {
		scanned = e.Dedup.Dedup(scanned)
		log.Debug().
			Int("scanned_projects", scan.ScannedProjects).
			Int("target_files", len(scan.TargetFiles)).
			Int("deduplicated", len(scan.ScannedPackageManagers)-len(scanned)).
			Msg("multi-project build detected")
	}
	return e.Reconciler.Reconcile(scan.PackageManagers, scanned, scan.TargetFiles)
}

func (e ScanEvaluator) exitCode(extension map[string]any) (types.CLIExitCode, error) {
	if e.ExitCodeOverride != nil {
		return *e.ExitCodeOverride, nil
	}
	value, err := intValue(extension, types.ExtensionKeyExitCode)
	if err != nil {
		return 0, err
	}
	return types.CLIExitCode(value), nil
}

// DecodeScanExtension reads the scan fields of the extension object,
// decoding the CLI's bracket-encoded lists.
func DecodeScanExtension(extension map[string]any) (types.ScanExtension, error) {
	packageManagers, err := listValue(extension, types.ExtensionKeyPackageManagers)
	if err != nil {
		return types.ScanExtension{}, err
	}
	targetFiles, err := listValue(extension, types.ExtensionKeyTargetFiles)
	if err != nil {
		return types.ScanExtension{}, err
	}
	scannedProjects, err := intValue(extension, types.ExtensionKeyScannedProjects)
	if err != nil {
		return types.ScanExtension{}, err
	}
	scanned, err := listValue(extension, types.ExtensionKeyScannedPackageManagers)
	if err != nil {
		return types.ScanExtension{}, err
	}
	return types.ScanExtension{
		PackageManagers:        types.PackageManagerIDs(packageManagers),
		TargetFiles:            types.ManifestPaths(targetFiles),
		ScannedProjects:        scannedProjects,
		ScannedPackageManagers: types.PackageManagerIDs(scanned),
	}, nil
}

type missingKeyError struct {
	key string
}

func (e missingKeyError) Error() string {
	return fmt.Sprintf("missing key %q in cli metadata", e.key)
}

func emptyOnMissingKey(err error) (types.ScanResult, error) {
	var missing missingKeyError
	if !errors.As(err, &missing) {
		return types.ScanResult{}, err
	}
	log.Warn().Str("key", missing.key).Str("hint", requiredFlagsHint).Msg("error at retrieving key from cli metadata json")
	return types.ScanResult{}, nil
}

func extensionObject(doc types.Metadata) (map[string]any, error) {
	return objectAt(doc,
		types.MetadataKeyData,
		types.MetadataKeyAttributes,
		types.MetadataKeyInteraction,
		types.MetadataKeyExtension,
	)
}

// durationMillis reads runtime.performance.duration_ms. A document without
// a runtime object reports zero; a runtime object without the duration is
// incomplete metadata.
func durationMillis(doc types.Metadata) (float64, error) {
	attributes, err := objectAt(doc, types.MetadataKeyData, types.MetadataKeyAttributes)
	if err != nil {
		return 0, err
	}
	if _, ok := attributes[types.MetadataKeyRuntime]; !ok {
		return 0, nil
	}
	performance, err := objectAt(attributes, types.MetadataKeyRuntime, types.MetadataKeyPerformance)
	if err != nil {
		return 0, err
	}
	value, ok := performance[types.MetadataKeyDurationMs]
	if !ok || value == nil {
		return 0, missingKeyError{key: types.MetadataKeyDurationMs}
	}
	duration, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, missingKeyError{key: types.MetadataKeyDurationMs}
	}
	if duration < 0 {
		return 0, nil
	}
	return duration, nil
}

func objectAt(doc map[string]any, path ...string) (map[string]any, error) {
	current := doc
	for _, key := range path {
		value, ok := current[key]
		if !ok || value == nil {
			return nil, missingKeyError{key: key}
		}
		next, err := cast.ToStringMapE(value)
		if err != nil {
			return nil, missingKeyError{key: key}
		}
		current = next
	}
	return current, nil
}

func intValue(object map[string]any, key string) (int, error) {
	value, ok := object[key]
	if !ok || value == nil {
		return 0, missingKeyError{key: key}
	}
	// cast maps booleans to 0 and 1.
	if _, isBool := value.(bool); isBool {
		return 0, missingKeyError{key: key}
	}
	parsed, err := cast.ToIntE(value)
	if err != nil {
		return 0, missingKeyError{key: key}
	}
	return parsed, nil
}

func listValue(object map[string]any, key string) ([]string, error) {
	value, ok := object[key]
	if !ok {
		return nil, missingKeyError{key: key}
	}
	switch typed := value.(type) {
	case string:
		return shared.DecodeBracketList(typed), nil
	case []any:
		items, err := cast.ToStringSliceE(typed)
		if err != nil {
			return nil, missingKeyError{key: key}
		}
		return trimAll(items), nil
	default:
		return nil, missingKeyError{key: key}
	}
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
