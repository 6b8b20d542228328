package core

import (
	"snyk-scan-eval/internal/ports"
	"snyk-scan-eval/internal/types"
)

// Deduplicator collapses the repeated scan events a multi-module build
// tool emits for a single declared manifest.
type Deduplicator struct {
	Policy ports.MultiProjectPolicyPort
}

func NewDeduplicator(policy ports.MultiProjectPolicyPort) Deduplicator {
	return Deduplicator{Policy: policy}
}

// Dedup keeps the first occurrence of the first repeated identifier the
// policy accepts and drops its later occurrences. Everything else is
// returned unchanged, in order. Only one identifier is ever collapsed.
func (d Deduplicator) Dedup(scanned []types.PackageManagerID) []types.PackageManagerID {
	target, found := d.target(scanned)
	out := make([]types.PackageManagerID, 0, len(scanned))
	if !found {
		return append(out, scanned...)
	}
	kept := false
	for _, id := range scanned {
		if id != target {
			out = append(out, id)
			continue
		}
		if !kept {
			out = append(out, id)
			kept = true
		}
	}
	return out
}

func (d Deduplicator) target(scanned []types.PackageManagerID) (types.PackageManagerID, bool) {
	if d.Policy == nil {
		return "", false
	}
	seen := map[types.PackageManagerID]struct{}{}
	for _, id := range scanned {
		if _, ok := seen[id]; ok && d.Policy.MayMultiplyReport(id) {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}
