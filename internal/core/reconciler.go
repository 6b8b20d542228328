package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"snyk-scan-eval/internal/types"
)

const invariantViolationPrefix = "invariant violation"

// SequenceReconciler aligns the declared package managers against the ones
// actually scanned. The scanned list must be an order-preserving
// subsequence of the declared list.
type SequenceReconciler struct {
	// Strict rejects scanned lists that are not a subsequence instead of
	// classifying them silently.
	Strict bool
}

func NewSequenceReconciler(strict bool) SequenceReconciler {
	return SequenceReconciler{Strict: strict}
}

// Reconcile walks complete once with a cursor into partial. A position is
// scanned when the identifier under the cursor equals it, skipped
// otherwise. Greedy leftmost matching consumes all of partial exactly when
// partial is a subsequence of complete, so leftovers signal a violation.
func (r SequenceReconciler) Reconcile(complete []types.PackageManagerID, partial []types.PackageManagerID, paths []types.ManifestPath) (types.ManifestMeasurement, error) {
	if len(paths) != len(complete) {
		return types.ManifestMeasurement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("manifest paths (%d) do not match package managers (%d)", len(paths), len(complete)))
	}

	measurement := types.ManifestMeasurement{
		ScannedManifests: []types.ManifestPath{},
		SkippedManifests: []types.ManifestPath{},
	}
	cursor := 0
	for idx, id := range complete {
		if cursor < len(partial) && id == partial[cursor] {
			measurement.ScannedManifests = append(measurement.ScannedManifests, paths[idx])
			cursor++
			continue
		}
		measurement.SkippedManifests = append(measurement.SkippedManifests, paths[idx])
	}

	if cursor < len(partial) {
		if r.Strict {
			return types.ManifestMeasurement{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("%s: scanned package manager %q at index %d is not in declared order", invariantViolationPrefix, partial[cursor], cursor))
		}
		log.Warn().
			Int("unmatched", len(partial)-cursor).
			Str("first_unmatched", string(partial[cursor])).
			Msg("scanned package managers are not a subsequence of declared ones, classification may be wrong")
	}

	if len(measurement.SkippedManifests) > 0 {
		measurement.ErrorIndicator = true
		measurement.ErrorMessage = fmt.Sprintf("%d/%d manifests encountered error at dependency resolution", len(measurement.SkippedManifests), len(complete))
	}
	return measurement, nil
}
