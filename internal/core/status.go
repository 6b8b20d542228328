package core

import "snyk-scan-eval/internal/types"

// EvalScanStatus is success only when the CLI completed and no manifest
// was skipped.
func EvalScanStatus(exitCode types.CLIExitCode, skipped bool) types.ScanStatus {
	if exitCode.Completed() && !skipped {
		return types.ScanStatusSuccess
	}
	return types.ScanStatusFailure
}
