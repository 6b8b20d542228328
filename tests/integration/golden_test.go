package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snyk-scan-eval/internal/adapters"
	"snyk-scan-eval/internal/core"
	"snyk-scan-eval/internal/policies"
	"snyk-scan-eval/internal/types"
	"snyk-scan-eval/tests/testutil"
)

// TestGoldenEvaluate evaluates every fixture log and compares the JSON
// report against committed golden files. If a golden file does not exist
// yet (first run), it is written so it can be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenEvaluate(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	fixtures := []string{
		"partial-scan.log",
		"multi-project.log",
		"no-manifests.log",
		"missing-flags.log",
	}
	for _, name := range fixtures {
		t.Run(name, func(t *testing.T) {
			actual := evaluateFixture(t, name)

			goldenPath := filepath.Join(goldenDir, strings.TrimSuffix(name, ".log")+".json")
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				// Golden file doesn't exist yet -- write it.
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(actual),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
		})
	}
}

// TestEvaluateFixtureStructure checks properties of the fixture results
// independent of the exact report bytes.
func TestEvaluateFixtureStructure(t *testing.T) {
	source, err := adapters.NewLogMetadataSource("", "", "")
	require.NoError(t, err)
	evaluator := core.NewScanEvaluator(
		core.NewSequenceReconciler(true),
		core.NewDeduplicator(policies.DefaultMultiProjectPolicy()),
	)

	t.Run("multi-project build scans every manifest", func(t *testing.T) {
		file, err := os.Open(testutil.FixtureLog(t, "multi-project.log"))
		require.NoError(t, err)
		defer file.Close()

		doc, err := source.Extract(t.Context(), file)
		require.NoError(t, err)
		result, err := evaluator.Evaluate(t.Context(), doc)
		require.NoError(t, err)

		require.NotNil(t, result.Measurement)
		assert.Equal(t, []types.ManifestPath{"build.gradle", "web/package.json"}, result.Measurement.ScannedManifests)
		assert.Empty(t, result.Measurement.SkippedManifests)
		assert.Equal(t, types.ScanStatusSuccess, result.Status)
		assert.InDelta(t, 28.65, result.DurationSec, 1e-9)
	})

	t.Run("missing all-projects metadata yields empty result", func(t *testing.T) {
		file, err := os.Open(testutil.FixtureLog(t, "missing-flags.log"))
		require.NoError(t, err)
		defer file.Close()

		doc, err := source.Extract(t.Context(), file)
		require.NoError(t, err)
		result, err := evaluator.Evaluate(t.Context(), doc)
		require.NoError(t, err)
		assert.True(t, result.Empty())
	})
}

func evaluateFixture(t *testing.T, name string) []byte {
	t.Helper()
	file, err := os.Open(testutil.FixtureLog(t, name))
	require.NoError(t, err)
	defer file.Close()

	source, err := adapters.NewLogMetadataSource("", "", "")
	require.NoError(t, err)
	doc, err := source.Extract(t.Context(), file)
	require.NoError(t, err)

	evaluator := core.NewScanEvaluator(
		core.NewSequenceReconciler(true),
		core.NewDeduplicator(policies.DefaultMultiProjectPolicy()),
	)
	result, err := evaluator.Evaluate(t.Context(), doc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, adapters.NewReportWriterAdapter().Write(&buf, types.OutputFormatJSON, result))
	return buf.Bytes()
}
