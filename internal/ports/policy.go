package ports

import "snyk-scan-eval/internal/types"

type MultiProjectPolicyPort interface {
	MayMultiplyReport(id types.PackageManagerID) bool
}
