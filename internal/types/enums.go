package types

// PackageManagerID identifies a dependency-management tool as reported by
// the scanning CLI, for example "npm" or "gradle".
type PackageManagerID string

// ManifestPath is the location of a manifest file as declared by the CLI.
type ManifestPath string

type ScanStatus string

const (
	ScanStatusSuccess ScanStatus = "success"
	ScanStatusFailure ScanStatus = "failure"
)

// CLIExitCode follows https://docs.snyk.io/snyk-cli/commands/test#exit-codes.
type CLIExitCode int

const (
	CLIExitCodeNoIssues         CLIExitCode = 0
	CLIExitCodeIssuesFound      CLIExitCode = 1
	CLIExitCodeExecutionError   CLIExitCode = 2
	CLIExitCodeNoSupportedFiles CLIExitCode = 3
)

// Completed reports whether the CLI ran to completion, with or without
// vulnerabilities found.
func (c CLIExitCode) Completed() bool {
	return c == CLIExitCodeNoIssues || c == CLIExitCodeIssuesFound
}

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

func PackageManagerIDs(values []string) []PackageManagerID {
	out := make([]PackageManagerID, 0, len(values))
	for _, value := range values {
		out = append(out, PackageManagerID(value))
	}
	return out
}

func ManifestPaths(values []string) []ManifestPath {
	out := make([]ManifestPath, 0, len(values))
	for _, value := range values {
		out = append(out, ManifestPath(value))
	}
	return out
}
