package jobs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadk-dev/aadk/internal/config"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

func statePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state", StateFileName)
}

func TestPersistRoundTrip(t *testing.T) {
	path := statePath(t)
	store := NewStore()

	job := testJob("job-1")
	job.RunId = &apiv1.RunId{Value: "run-abc"}
	job.ProjectId = &apiv1.Id{Value: "proj-1"}
	rec := store.Insert(job)

	rec.SetState(apiv1.JobState_JOB_STATE_RUNNING)
	rec.Publish(NewEvent("job-1", &apiv1.JobEvent_Progress{
		Progress: &apiv1.JobProgressUpdated{
			Progress: &apiv1.JobProgress{
				Percent: 40,
				Phase:   "Compiling",
				Metrics: []*apiv1.KeyValue{{Key: "step", Value: "4"}},
			},
		},
	}))
	rec.Publish(logEvent("job-1", "building\n"))
	rec.Publish(NewEvent("job-1", &apiv1.JobEvent_Failed{
		Failed: &apiv1.JobFailed{
			Error: &apiv1.ErrorDetail{
				Code:             apiv1.ErrorCode_ERROR_CODE_INTERNAL,
				Message:          "boom",
				TechnicalDetails: "stack",
				Remedies: []*apiv1.Remediation{{
					Title:       "Retry the build",
					Description: "Re-run after cleaning the output directory",
					ActionId:    "build.run",
					Params:      []*apiv1.KeyValue{{Key: "clean", Value: "true"}},
				}},
				CorrelationId: "job-1",
			},
		},
	}))
	rec.SetState(apiv1.JobState_JOB_STATE_FAILED)

	require.NoError(t, persistState(store, path, RetentionPolicy{}))

	loaded := LoadStore(path, RetentionPolicy{})
	got, ok := loaded.Get("job-1")
	require.True(t, ok)

	gotJob := got.Job()
	assert.Equal(t, apiv1.JobState_JOB_STATE_FAILED, gotJob.GetState())
	assert.Equal(t, "run-abc", gotJob.GetRunId().GetValue())
	assert.Equal(t, "proj-1", gotJob.GetProjectId().GetValue())
	assert.NotNil(t, gotJob.GetStartedAt())
	assert.NotNil(t, gotJob.GetFinishedAt())

	history := got.History()
	require.Len(t, history, 5)
	assert.Equal(t, apiv1.JobState_JOB_STATE_RUNNING, history[0].GetStateChanged().GetNewState())
	assert.Equal(t, uint32(40), history[1].GetProgress().GetProgress().GetPercent())
	assert.Equal(t, "Compiling", history[1].GetProgress().GetProgress().GetPhase())
	assert.Equal(t, "building\n", string(history[2].GetLog().GetChunk().GetData()))

	failure := history[3].GetFailed().GetError()
	require.NotNil(t, failure)
	assert.Equal(t, apiv1.ErrorCode_ERROR_CODE_INTERNAL, failure.GetCode())
	require.Len(t, failure.GetRemedies(), 1)
	assert.Equal(t, "build.run", failure.GetRemedies()[0].GetActionId())
	assert.Equal(t, "job-1", history[3].GetJobId().GetValue())
}

func TestStateFileFieldNames(t *testing.T) {
	path := statePath(t)
	store := NewStore()
	rec := store.Insert(testJob("job-1"))
	rec.SetState(apiv1.JobState_JOB_STATE_SUCCESS)

	require.NoError(t, persistState(store, path, RetentionPolicy{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, 1, raw["schema_version"])

	jobs, ok := raw["jobs"].([]any)
	require.True(t, ok)
	require.Len(t, jobs, 1)

	job := jobs[0].(map[string]any)
	assert.Equal(t, "job-1", job["job_id"])
	assert.Equal(t, "demo.job", job["job_type"])
	assert.Contains(t, job, "created_at_unix_millis")
	assert.Contains(t, job, "finished_at_unix_millis")

	history := job["history"].([]any)
	require.Len(t, history, 1)
	payload := history[0].(map[string]any)["payload"].(map[string]any)
	assert.Equal(t, "state_changed", payload["type"])
	data0 := payload["data"].(map[string]any)
	assert.EqualValues(t, apiv1.JobState_JOB_STATE_SUCCESS, data0["new_state"])
}

func TestLoadStoreMissingFile(t *testing.T) {
	store := LoadStore(statePath(t), RetentionPolicy{})
	assert.Equal(t, 0, store.Len())
}

func TestLoadStoreCorruptFile(t *testing.T) {
	path := statePath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := LoadStore(path, RetentionPolicy{})
	assert.Equal(t, 0, store.Len())
}

func TestLoadStoreSkipsUnknownPayloads(t *testing.T) {
	path := statePath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	state := `{
  "schema_version": 1,
  "jobs": [{
    "job_id": "job-1",
    "job_type": "demo.job",
    "state": 3,
    "created_at_unix_millis": 1000,
    "display_name": "Demo Job",
    "correlation_id": "",
    "run_id": "  ",
    "history": [
      {"at_unix_millis": 1001, "payload": {"type": "hologram", "data": {}}},
      {"at_unix_millis": 1002, "payload": {"type": "state_changed", "data": {"new_state": 3}}}
    ]
  }]
}`
	require.NoError(t, os.WriteFile(path, []byte(state), 0o600))

	store := LoadStore(path, RetentionPolicy{})
	rec, ok := store.Get("job-1")
	require.True(t, ok)

	// Blank correlation falls back to the job id; whitespace run ids
	// collapse to none.
	job := rec.Job()
	assert.Equal(t, "job-1", job.GetCorrelationId())
	assert.Nil(t, job.GetRunId())

	history := rec.History()
	require.Len(t, history, 1)
	assert.Equal(t, apiv1.JobState_JOB_STATE_SUCCESS, history[0].GetStateChanged().GetNewState())
}

func persisted(jobID string, state apiv1.JobState, created int64, finished *int64) persistedJob {
	return persistedJob{
		JobID:                jobID,
		JobType:              "demo.job",
		State:                int32(state),
		CreatedAtUnixMillis:  created,
		FinishedAtUnixMillis: finished,
	}
}

func TestApplyRetentionByAge(t *testing.T) {
	old := nowMillis() - (48 * time.Hour).Milliseconds()
	recent := nowMillis() - (1 * time.Hour).Milliseconds()

	jobs := []persistedJob{
		persisted("old", apiv1.JobState_JOB_STATE_SUCCESS, old, &old),
		persisted("recent", apiv1.JobState_JOB_STATE_SUCCESS, recent, &recent),
		persisted("active-old", apiv1.JobState_JOB_STATE_RUNNING, old, nil),
	}

	kept := applyRetention(jobs, RetentionPolicy{MaxAge: 24 * time.Hour})
	require.Len(t, kept, 2)

	ids := []string{kept[0].JobID, kept[1].JobID}
	assert.Contains(t, ids, "recent")
	assert.Contains(t, ids, "active-old")
}

func TestApplyRetentionByCount(t *testing.T) {
	base := nowMillis()
	var jobs []persistedJob
	for i := 0; i < 5; i++ {
		finished := base - int64(i*1000)
		jobs = append(jobs, persisted(
			string(rune('a'+i)), apiv1.JobState_JOB_STATE_SUCCESS, finished, &finished))
	}
	jobs = append(jobs, persisted("running", apiv1.JobState_JOB_STATE_RUNNING, base, nil))

	// Cap of 3 with one active job leaves room for the 2 newest
	// completed jobs.
	kept := applyRetention(jobs, RetentionPolicy{MaxJobs: 3})
	require.Len(t, kept, 3)
	assert.Equal(t, "running", kept[0].JobID)
	assert.Equal(t, "a", kept[1].JobID)
	assert.Equal(t, "b", kept[2].JobID)
}

func TestApplyRetentionSortsNewestFirst(t *testing.T) {
	t1, t2, t3 := int64(1000), int64(2000), int64(3000)
	jobs := []persistedJob{
		persisted("first", apiv1.JobState_JOB_STATE_SUCCESS, t1, &t1),
		persisted("third", apiv1.JobState_JOB_STATE_SUCCESS, t3, &t3),
		persisted("second", apiv1.JobState_JOB_STATE_SUCCESS, t2, &t2),
	}

	kept := applyRetention(jobs, RetentionPolicy{})
	require.Len(t, kept, 3)
	assert.Equal(t, "third", kept[0].JobID)
	assert.Equal(t, "second", kept[1].JobID)
	assert.Equal(t, "first", kept[2].JobID)
}

func TestPersistStatePrunesLiveStore(t *testing.T) {
	path := statePath(t)
	store := NewStore()

	old := nowMillis() - (72 * time.Hour).Milliseconds()
	stale := testJob("stale")
	stale.State = apiv1.JobState_JOB_STATE_SUCCESS
	stale.CreatedAt = &apiv1.Timestamp{UnixMillis: old}
	stale.FinishedAt = &apiv1.Timestamp{UnixMillis: old}
	store.Insert(stale)
	store.Insert(testJob("fresh"))

	require.NoError(t, persistState(store, path, RetentionPolicy{MaxAge: 24 * time.Hour}))

	_, ok := store.Get("stale")
	assert.False(t, ok)
	_, ok = store.Get("fresh")
	assert.True(t, ok)
}

func TestRetentionFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.JobHistoryRetentionDays = 7
	cfg.JobHistoryMax = 25

	policy := RetentionFromConfig(cfg)
	assert.Equal(t, 25, policy.MaxJobs)
	assert.Equal(t, 7*24*time.Hour, policy.MaxAge)

	cfg.JobHistoryRetentionDays = 0
	assert.Zero(t, RetentionFromConfig(cfg).MaxAge)
}

func TestWorkerPersistsAfterSchedule(t *testing.T) {
	path := statePath(t)
	store := NewStore()
	store.Insert(testJob("job-1"))

	worker := NewWorker(store, path, RetentionPolicy{})
	worker.Start()
	defer worker.Stop()

	worker.Schedule()
	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 5*time.Second, 25*time.Millisecond)
}

func TestWorkerStopFlushes(t *testing.T) {
	path := statePath(t)
	store := NewStore()
	worker := NewWorker(store, path, RetentionPolicy{})
	worker.Start()

	store.Insert(testJob("job-1"))
	worker.Stop()

	loaded := LoadStore(path, RetentionPolicy{})
	_, ok := loaded.Get("job-1")
	assert.True(t, ok)

	worker.Stop()
}
