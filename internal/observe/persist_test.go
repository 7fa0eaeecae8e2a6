package observe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

func tempStatePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), StateFileName)
}

func TestPersistRoundTrip(t *testing.T) {
	path := tempStatePath(t)
	store := NewStore(path)

	store.UpsertRun(&apiv1.UpsertRunRequest{
		RunId:          runRef("run-1"),
		CorrelationId:  "corr-1",
		ProjectId:      &apiv1.Id{Value: "p-1"},
		TargetId:       &apiv1.Id{Value: "t-1"},
		ToolchainSetId: &apiv1.Id{Value: "tc-1"},
		JobIds:         []*apiv1.Id{{Value: "j-1"}, {Value: "j-2"}},
		Result:         "success",
		Summary:        []*apiv1.KeyValue{{Key: "steps", Value: "3"}},
		FinishedAt:     &apiv1.Timestamp{UnixMillis: 99},
	})
	store.UpsertOutputs("run-1", []*apiv1.RunOutput{{
		Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE,
		OutputType: "support_bundle",
		Path:       "/bundles/support-run-1.zip",
		JobId:      &apiv1.Id{Value: "j-1"},
		Metadata:   []*apiv1.KeyValue{{Key: "size", Value: "1024"}},
	}})

	loaded := LoadStore(path)
	require.Equal(t, 1, loaded.Len())

	run, ok := loaded.Run("run-1")
	require.True(t, ok)
	assert.Equal(t, "corr-1", run.GetCorrelationId())
	assert.Equal(t, "p-1", run.GetProjectId().GetValue())
	assert.Equal(t, "t-1", run.GetTargetId().GetValue())
	assert.Equal(t, "tc-1", run.GetToolchainSetId().GetValue())
	assert.Equal(t, "success", run.GetResult())
	assert.Equal(t, int64(99), run.GetFinishedAt().GetUnixMillis())
	require.Len(t, run.GetJobIds(), 2)

	outputs := loaded.Outputs("run-1")
	require.Len(t, outputs, 1)
	assert.Equal(t, "support_bundle", outputs[0].GetOutputType())
	assert.Equal(t, "j-1", outputs[0].GetJobId().GetValue())

	// Output summary was recomputed on load.
	assert.Equal(t, uint32(1), run.GetOutputSummary().GetBundleCount())
}

func TestPersistIdempotent(t *testing.T) {
	path := tempStatePath(t)
	store := NewStore(path)
	store.UpsertRun(&apiv1.UpsertRunRequest{RunId: runRef("run-1"), Result: "success"})

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// Loading and re-persisting the same state writes identical bytes.
	loaded := LoadStore(path)
	loaded.mu.Lock()
	loaded.persistLocked()
	loaded.mu.Unlock()

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadStoreMissingFile(t *testing.T) {
	store := LoadStore(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, 0, store.Len())
}

func TestLoadStoreCorruptFile(t *testing.T) {
	path := tempStatePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	store := LoadStore(path)
	assert.Equal(t, 0, store.Len())
}

func TestReloadReplacesState(t *testing.T) {
	path := tempStatePath(t)
	store := NewStore(path)
	store.UpsertRun(&apiv1.UpsertRunRequest{RunId: runRef("run-1")})

	// A second store writes different state to the same file.
	other := NewStore(path)
	other.UpsertRun(&apiv1.UpsertRunRequest{RunId: runRef("run-2")})
	other.UpsertRun(&apiv1.UpsertRunRequest{RunId: runRef("run-3")})

	count, err := store.Reload()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, ok := store.Run("run-1")
	assert.False(t, ok)
	_, ok = store.Run("run-2")
	assert.True(t, ok)
}

func TestReloadMissingFileResets(t *testing.T) {
	path := tempStatePath(t)
	store := NewStore(path)
	store.UpsertRun(&apiv1.UpsertRunRequest{RunId: runRef("run-1")})
	require.NoError(t, os.Remove(path))

	count, err := store.Reload()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, store.Len())
}
