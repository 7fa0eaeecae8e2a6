package observe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

func runRef(id string) *apiv1.RunId {
	return &apiv1.RunId{Value: id}
}

func TestUpsertRunCreatesRunning(t *testing.T) {
	store := NewStore("")

	run := store.UpsertRun(&apiv1.UpsertRunRequest{RunId: runRef("run-1")})
	assert.Equal(t, "run-1", run.GetRunId().GetValue())
	assert.Equal(t, "running", run.GetResult())
	assert.NotNil(t, run.GetStartedAt())
	assert.Nil(t, run.GetFinishedAt())
	assert.NotNil(t, run.GetOutputSummary())
}

func TestUpsertRunMergeRules(t *testing.T) {
	store := NewStore("")

	store.UpsertRun(&apiv1.UpsertRunRequest{
		RunId:         runRef("run-1"),
		CorrelationId: "corr-1",
		ProjectId:     &apiv1.Id{Value: "p-1"},
		JobIds:        []*apiv1.Id{{Value: "j-1"}},
		Summary:       []*apiv1.KeyValue{{Key: "steps", Value: "3"}},
	})

	// Empty fields leave existing values alone; job ids union; summary
	// upserts by key.
	run := store.UpsertRun(&apiv1.UpsertRunRequest{
		RunId:  runRef("run-1"),
		JobIds: []*apiv1.Id{{Value: "j-1"}, {Value: "j-2"}},
		Result: "success",
		Summary: []*apiv1.KeyValue{
			{Key: "steps", Value: "5"},
			{Key: "error", Value: ""},
		},
		FinishedAt: &apiv1.Timestamp{UnixMillis: 42},
	})

	assert.Equal(t, "corr-1", run.GetCorrelationId())
	assert.Equal(t, "p-1", run.GetProjectId().GetValue())
	assert.Equal(t, "success", run.GetResult())
	assert.Equal(t, int64(42), run.GetFinishedAt().GetUnixMillis())

	ids := make([]string, 0, len(run.GetJobIds()))
	for _, id := range run.GetJobIds() {
		ids = append(ids, id.GetValue())
	}
	assert.Equal(t, []string{"j-1", "j-2"}, ids)

	require.Len(t, run.GetSummary(), 2)
	assert.Equal(t, "steps", run.GetSummary()[0].GetKey())
	assert.Equal(t, "5", run.GetSummary()[0].GetValue())
}

func TestUpsertRunIdempotent(t *testing.T) {
	store := NewStore("")

	req := &apiv1.UpsertRunRequest{
		RunId:   runRef("run-1"),
		JobIds:  []*apiv1.Id{{Value: "j-1"}},
		Result:  "failed",
		Summary: []*apiv1.KeyValue{{Key: "error", Value: "boom"}},
	}
	first := store.UpsertRun(req)
	second := store.UpsertRun(req)

	assert.Equal(t, first.GetResult(), second.GetResult())
	assert.Equal(t, len(first.GetJobIds()), len(second.GetJobIds()))
	assert.Equal(t, len(first.GetSummary()), len(second.GetSummary()))
}

func TestRunEvictionNewestFirst(t *testing.T) {
	store := NewStore("")

	for i := 0; i < maxRuns+10; i++ {
		store.UpsertRun(&apiv1.UpsertRunRequest{RunId: runRef(fmt.Sprintf("run-%d", i))})
	}

	assert.Equal(t, maxRuns, store.Len())

	runs := store.Runs()
	assert.Equal(t, fmt.Sprintf("run-%d", maxRuns+9), runs[0].GetRunId().GetValue())

	// The oldest runs fell off.
	_, ok := store.Run("run-0")
	assert.False(t, ok)
	_, ok = store.Run("run-9")
	assert.False(t, ok)
	_, ok = store.Run("run-10")
	assert.True(t, ok)
}

func TestUpsertOutputsDerivesIDsAndReplaces(t *testing.T) {
	store := NewStore("")

	summary := store.UpsertOutputs("run-1", []*apiv1.RunOutput{
		{
			Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT,
			OutputType: "apk",
			Path:       "/build/app.apk",
			JobId:      &apiv1.Id{Value: "j-1"},
		},
		{
			Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE,
			OutputType: "support_bundle",
			Path:       "/bundles/support-run-1.zip",
			CreatedAt:  &apiv1.Timestamp{UnixMillis: 100},
		},
	})

	assert.Equal(t, uint32(1), summary.GetBundleCount())
	assert.Equal(t, uint32(1), summary.GetArtifactCount())

	outputs := store.Outputs("run-1")
	require.Len(t, outputs, 2)
	assert.Equal(t, "artifact:j-1:/build/app.apk", outputs[0].GetOutputId())
	assert.Equal(t, "support_bundle:run-1:/bundles/support-run-1.zip", outputs[1].GetOutputId())
	assert.Equal(t, "run-1", outputs[0].GetRunId().GetValue())
	assert.NotNil(t, outputs[0].GetCreatedAt())

	// A minimal running run was created implicitly.
	run, ok := store.Run("run-1")
	require.True(t, ok)
	assert.Equal(t, "running", run.GetResult())

	// Same derived id replaces, not appends.
	store.UpsertOutputs("run-1", []*apiv1.RunOutput{{
		Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT,
		OutputType: "apk",
		Path:       "/build/app.apk",
		JobId:      &apiv1.Id{Value: "j-1"},
		Label:      "rebuilt",
	}})
	outputs = store.Outputs("run-1")
	require.Len(t, outputs, 2)
	assert.Equal(t, "rebuilt", outputs[0].GetLabel())
}

func TestSummaryPicksNewestBundle(t *testing.T) {
	store := NewStore("")

	store.UpsertOutputs("run-1", []*apiv1.RunOutput{
		{
			OutputId:  "b-old",
			Kind:      apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE,
			Path:      "/bundles/a.zip",
			CreatedAt: &apiv1.Timestamp{UnixMillis: 100},
		},
		{
			OutputId:  "b-new",
			Kind:      apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE,
			Path:      "/bundles/b.zip",
			CreatedAt: &apiv1.Timestamp{UnixMillis: 200},
		},
		{
			OutputId:  "a-1",
			Kind:      apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT,
			Path:      "/build/app.apk",
			CreatedAt: &apiv1.Timestamp{UnixMillis: 300},
		},
	})

	summary := store.Summary("run-1")
	assert.Equal(t, uint32(2), summary.GetBundleCount())
	assert.Equal(t, uint32(1), summary.GetArtifactCount())
	assert.Equal(t, "b-new", summary.GetLastBundleId())
	assert.Equal(t, int64(300), summary.GetLastUpdatedAt().GetUnixMillis())
}

func TestSnapshotsAreIndependent(t *testing.T) {
	store := NewStore("")

	run := store.UpsertRun(&apiv1.UpsertRunRequest{RunId: runRef("run-1")})
	run.Result = "mutated"
	run.JobIds = append(run.JobIds, &apiv1.Id{Value: "j-x"})

	fresh, ok := store.Run("run-1")
	require.True(t, ok)
	assert.Equal(t, "running", fresh.GetResult())
	assert.Empty(t, fresh.GetJobIds())
}
