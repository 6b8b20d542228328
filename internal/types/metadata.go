package types

// Metadata is the decoded analytics document emitted by the CLI in debug
// mode. Values are whatever encoding/json produces for an untyped object.
type Metadata map[string]any

const (
	MetadataKeyData        = "data"
	MetadataKeyAttributes  = "attributes"
	MetadataKeyInteraction = "interaction"
	MetadataKeyExtension   = "extension"
	MetadataKeyRuntime     = "runtime"
	MetadataKeyPerformance = "performance"
	MetadataKeyDurationMs  = "duration_ms"
	MetadataKeyApplication = "application"
	MetadataKeyVersion     = "version"

	ExtensionKeyExitCode               = "exitcode"
	ExtensionKeyPackageManagers        = "legacycli::metadata__allProjects__packageManagers"
	ExtensionKeyTargetFiles            = "legacycli::metadata__allProjects__targetFiles"
	ExtensionKeyScannedProjects        = "legacycli::metadata__allProjects__scannedProjects"
	ExtensionKeyScannedPackageManagers = "legacycli::metadata__packageManager"
)

// ScanExtension holds the typed scan fields of the extension object.
type ScanExtension struct {
	PackageManagers        []PackageManagerID
	TargetFiles            []ManifestPath
	ScannedProjects        int
	ScannedPackageManagers []PackageManagerID
}

// MultiProjectBuild reports whether more projects were scanned than
// manifests were declared, which happens when one build file fans out
// into several modules.
func (e ScanExtension) MultiProjectBuild() bool {
	return e.ScannedProjects > len(e.TargetFiles)
}
