package types

// ManifestMeasurement partitions the declared manifests into scanned and
// skipped, both in declaration order.
type ManifestMeasurement struct {
	ScannedManifests []ManifestPath
	SkippedManifests []ManifestPath
	ErrorIndicator   bool
	ErrorMessage     string
}

// ScanResult is the evaluated outcome of one CLI run. Measurement is nil
// when the CLI did not complete. The zero value is the empty result
// returned when the metadata is unusable.
type ScanResult struct {
	Measurement  *ManifestMeasurement
	ErrorMessage string
	Status       ScanStatus
	DurationSec  float64
	HasDuration  bool
}

func (r ScanResult) Empty() bool {
	return r.Measurement == nil && r.ErrorMessage == "" && r.Status == "" && !r.HasDuration
}

// Skipped reports whether any manifest was classified as skipped.
func (r ScanResult) Skipped() bool {
	return r.Measurement != nil && r.Measurement.ErrorIndicator
}
