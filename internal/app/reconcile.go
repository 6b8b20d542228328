package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"snyk-scan-eval/internal/shared"
	"snyk-scan-eval/internal/types"
)

// Reconcile runs deduplication and reconciliation on raw bracket-encoded
// lists, bypassing log extraction.
func (s Service) Reconcile(ctx context.Context, req ReconcileRequest) (ReconcileResult, error) {
	format, err := normalizeFormat(req.Format)
	if err != nil {
		return ReconcileResult{}, err
	}
	evaluator, err := newEvaluator(req.MultiProject, req.Strict)
	if err != nil {
		return ReconcileResult{}, err
	}
	packageManagers := shared.DecodeBracketList(req.PackageManagers)
	targetFiles := shared.DecodeBracketList(req.TargetFiles)
	scanned := shared.DecodeBracketList(req.Scanned)
	log.Debug().
		Str("package_managers", shared.EncodeBracketList(packageManagers)).
		Str("target_files", shared.EncodeBracketList(targetFiles)).
		Str("scanned", shared.EncodeBracketList(scanned)).
		Msg("decoded reconcile input")

	scan := types.ScanExtension{
		PackageManagers:        types.PackageManagerIDs(packageManagers),
		TargetFiles:            types.ManifestPaths(targetFiles),
		ScannedProjects:        req.ScannedProjects,
		ScannedPackageManagers: types.PackageManagerIDs(scanned),
	}
	measurement, err := evaluator.Measure(scan)
	if err != nil {
		return ReconcileResult{}, err
	}
	log.Debug().
		Int("scanned", len(measurement.ScannedManifests)).
		Int("skipped", len(measurement.SkippedManifests)).
		Msg("manifests reconciled")

	if err := s.writeReport(req.OutputPath, format, types.ScanResult{Measurement: &measurement}); err != nil {
		return ReconcileResult{}, err
	}
	return ReconcileResult{Measurement: measurement, MultiProjectBuild: scan.MultiProjectBuild()}, nil
}
