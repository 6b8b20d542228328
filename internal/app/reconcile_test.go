package app

import (
	"bytes"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snyk-scan-eval/internal/adapters"
	"snyk-scan-eval/internal/types"
)

func newReconcileService(out *bytes.Buffer) Service {
	service := NewService()
	service.Streams = adapters.FileStreamAdapter{Stdout: out}
	return service
}

func TestReconcileMultiProject(t *testing.T) {
	var out bytes.Buffer
	got, err := newReconcileService(&out).Reconcile(t.Context(), ReconcileRequest{
		PackageManagers: "[gradle]",
		TargetFiles:     "[build.gradle]",
		Scanned:         "[gradle gradle gradle]",
		ScannedProjects: 3,
		Strict:          true,
	})
	require.NoError(t, err)
	assert.True(t, got.MultiProjectBuild)
	if diff := cmp.Diff([]types.ManifestPath{"build.gradle"}, got.Measurement.ScannedManifests); diff != "" {
		t.Fatalf("unexpected scanned manifests (-want +got):\n%s", diff)
	}
	assert.Empty(t, got.Measurement.SkippedManifests)
	assert.NotContains(t, out.String(), "status")
}

func TestReconcileSkipped(t *testing.T) {
	var out bytes.Buffer
	got, err := newReconcileService(&out).Reconcile(t.Context(), ReconcileRequest{
		PackageManagers: "[npm pip gradle]",
		TargetFiles:     "[a/package.json b/requirements.txt c/build.gradle]",
		Scanned:         "[npm gradle]",
		Strict:          true,
	})
	require.NoError(t, err)
	assert.False(t, got.MultiProjectBuild)
	assert.Equal(t, "1/3 manifests encountered error at dependency resolution", got.Measurement.ErrorMessage)
	assert.Contains(t, out.String(), `"b/requirements.txt"`)
}

func TestReconcileCustomPolicy(t *testing.T) {
	var out bytes.Buffer
	got, err := newReconcileService(&out).Reconcile(t.Context(), ReconcileRequest{
		PackageManagers: "[sbt npm]",
		TargetFiles:     "[build.sbt package.json]",
		Scanned:         "[sbt sbt npm]",
		ScannedProjects: 3,
		MultiProject:    []string{"sbt"},
		Strict:          true,
	})
	require.NoError(t, err)
	assert.Empty(t, got.Measurement.SkippedManifests)
}

func TestReconcilePathMismatch(t *testing.T) {
	var out bytes.Buffer
	_, err := newReconcileService(&out).Reconcile(t.Context(), ReconcileRequest{
		PackageManagers: "[npm pip]",
		TargetFiles:     "[package.json]",
		Scanned:         "[npm]",
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Empty(t, out.String())
}

func TestReconcileLogsNormalizedInput(t *testing.T) {
	var logs bytes.Buffer
	previous, previousLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&logs)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	var out bytes.Buffer
	_, err := newReconcileService(&out).Reconcile(t.Context(), ReconcileRequest{
		PackageManagers: " [[npm   pip]] ",
		TargetFiles:     "[package.json requirements.txt]",
		Scanned:         "[npm]",
		Strict:          true,
	})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"package_managers":"[npm pip]"`)
	assert.Contains(t, logs.String(), `"scanned":"[npm]"`)
}
