package app

import "snyk-scan-eval/internal/types"

type EvaluateRequest struct {
	InputPath      string
	OutputPath     string
	Format         types.OutputFormat
	Prefix         string
	CLIVersion     string
	RepairVersions string
	MultiProject   []string
	Strict         bool
	// ExitCode overrides the exit code recorded in the metadata when set.
	ExitCode *int
}

type EvaluateResult struct {
	EvaluationID string
	Result       types.ScanResult
}

type ReconcileRequest struct {
	PackageManagers string
	TargetFiles     string
	Scanned         string
	ScannedProjects int
	MultiProject    []string
	Strict          bool
	OutputPath      string
	Format          types.OutputFormat
}

type ReconcileResult struct {
	Measurement       types.ManifestMeasurement
	MultiProjectBuild bool
}
