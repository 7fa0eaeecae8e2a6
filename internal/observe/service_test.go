package observe

import (
	"archive/zip"
	"context"
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/aadk-dev/aadk/internal/config"
	"github.com/aadk-dev/aadk/internal/jobs"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// startObserveServer hosts the observe service next to a real job
// service on a loopback listener, the way the daemon wires them.
func startObserveServer(t *testing.T) (apiv1.ObserveServiceClient, apiv1.JobServiceClient, *Service, *config.Config) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	require.NoError(t, cfg.EnsureDirectories())

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	conn, err := grpc.Dial(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	jobSvc := jobs.NewService(jobs.NewStore(), nil)
	obsSvc := NewService(NewStore(cfg.StateFile(StateFileName)), cfg, apiv1.NewJobServiceClient(conn))

	server := grpc.NewServer()
	apiv1.RegisterJobServiceServer(server, jobSvc)
	apiv1.RegisterObserveServiceServer(server, obsSvc)
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	return apiv1.NewObserveServiceClient(conn), apiv1.NewJobServiceClient(conn), obsSvc, cfg
}

func waitForTerminal(t *testing.T, client apiv1.JobServiceClient, jobID string) apiv1.JobState {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.GetJob(context.Background(), &apiv1.GetJobRequest{JobId: &apiv1.Id{Value: jobID}})
		require.NoError(t, err)
		switch state := resp.GetJob().GetState(); state {
		case apiv1.JobState_JOB_STATE_SUCCESS,
			apiv1.JobState_JOB_STATE_FAILED,
			apiv1.JobState_JOB_STATE_CANCELLED:
			return state
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("job %s never reached a terminal state", jobID)
	return apiv1.JobState_JOB_STATE_UNSPECIFIED
}

func TestUpsertRunRequiresRunID(t *testing.T) {
	client, _, _, _ := startObserveServer(t)

	_, err := client.UpsertRun(context.Background(), &apiv1.UpsertRunRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListRunsFilterAndPagination(t *testing.T) {
	client, _, _, _ := startObserveServer(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		result := "success"
		if i%2 == 0 {
			result = "failed"
		}
		_, err := client.UpsertRun(ctx, &apiv1.UpsertRunRequest{
			RunId:  runRef(fmt.Sprintf("run-%02d", i)),
			Result: result,
		})
		require.NoError(t, err)
	}

	// Default page size is 25, newest first.
	resp, err := client.ListRuns(ctx, &apiv1.ListRunsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.GetRuns(), 25)
	assert.Equal(t, "run-29", resp.GetRuns()[0].GetRunId().GetValue())
	assert.Equal(t, "25", resp.GetPageInfo().GetNextPageToken())

	// The second page holds the remainder and ends the sequence.
	resp, err = client.ListRuns(ctx, &apiv1.ListRunsRequest{
		Page: &apiv1.Pagination{PageToken: "25"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.GetRuns(), 5)
	assert.Empty(t, resp.GetPageInfo().GetNextPageToken())

	// Result filter.
	resp, err = client.ListRuns(ctx, &apiv1.ListRunsRequest{
		Filter: &apiv1.RunFilter{Result: "failed"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.GetRuns(), 15)

	// Exact run id filter.
	resp, err = client.ListRuns(ctx, &apiv1.ListRunsRequest{
		Filter: &apiv1.RunFilter{RunId: runRef("run-07")},
	})
	require.NoError(t, err)
	require.Len(t, resp.GetRuns(), 1)
	assert.Equal(t, "run-07", resp.GetRuns()[0].GetRunId().GetValue())
}

func TestListRunsPaginationConcatenation(t *testing.T) {
	client, _, _, _ := startObserveServer(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := client.UpsertRun(ctx, &apiv1.UpsertRunRequest{RunId: runRef(fmt.Sprintf("run-%02d", i))})
		require.NoError(t, err)
	}

	var collected []string
	token := ""
	for {
		resp, err := client.ListRuns(ctx, &apiv1.ListRunsRequest{
			Page: &apiv1.Pagination{PageSize: 5, PageToken: token},
		})
		require.NoError(t, err)
		for _, run := range resp.GetRuns() {
			collected = append(collected, run.GetRunId().GetValue())
		}
		token = resp.GetPageInfo().GetNextPageToken()
		if token == "" {
			break
		}
	}

	require.Len(t, collected, 12)
	assert.Equal(t, "run-11", collected[0])
	assert.Equal(t, "run-00", collected[11])
}

func TestListRunsBadPageTokens(t *testing.T) {
	client, _, _, _ := startObserveServer(t)
	ctx := context.Background()

	_, err := client.UpsertRun(ctx, &apiv1.UpsertRunRequest{RunId: runRef("run-1")})
	require.NoError(t, err)

	_, err = client.ListRuns(ctx, &apiv1.ListRunsRequest{Page: &apiv1.Pagination{PageToken: "abc"}})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "invalid page_token", status.Convert(err).Message())

	_, err = client.ListRuns(ctx, &apiv1.ListRunsRequest{Page: &apiv1.Pagination{PageToken: "5"}})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "page_token out of range", status.Convert(err).Message())

	// Any offset is fine against an empty (filtered) result set.
	resp, err := client.ListRuns(ctx, &apiv1.ListRunsRequest{
		Filter: &apiv1.RunFilter{Result: "no-such-result"},
		Page:   &apiv1.Pagination{PageToken: "5"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.GetRuns())
}

func TestUpsertRunOutputsValidation(t *testing.T) {
	client, _, _, _ := startObserveServer(t)
	ctx := context.Background()

	_, err := client.UpsertRunOutputs(ctx, &apiv1.UpsertRunOutputsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// Output run id mismatch.
	_, err = client.UpsertRunOutputs(ctx, &apiv1.UpsertRunOutputsRequest{
		RunId: runRef("run-1"),
		Outputs: []*apiv1.RunOutput{{
			RunId: runRef("run-2"),
			Path:  "/x",
		}},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// Missing path.
	_, err = client.UpsertRunOutputs(ctx, &apiv1.UpsertRunOutputsRequest{
		RunId:   runRef("run-1"),
		Outputs: []*apiv1.RunOutput{{Path: "  "}},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListRunOutputsFilters(t *testing.T) {
	client, _, _, _ := startObserveServer(t)
	ctx := context.Background()

	_, err := client.UpsertRunOutputs(ctx, &apiv1.UpsertRunOutputsRequest{
		RunId: runRef("run-1"),
		Outputs: []*apiv1.RunOutput{
			{
				Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT,
				OutputType: "apk",
				Path:       "/build/outputs/app-debug.apk",
				Label:      "Debug APK",
			},
			{
				Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE,
				OutputType: "support_bundle",
				Path:       "/bundles/support-run-1.zip",
				Label:      "Support bundle",
			},
		},
	})
	require.NoError(t, err)

	_, err = client.ListRunOutputs(ctx, &apiv1.ListRunOutputsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := client.ListRunOutputs(ctx, &apiv1.ListRunOutputsRequest{
		RunId:  runRef("run-1"),
		Filter: &apiv1.RunOutputFilter{Kind: apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE},
	})
	require.NoError(t, err)
	require.Len(t, resp.GetOutputs(), 1)
	assert.Equal(t, "support_bundle", resp.GetOutputs()[0].GetOutputType())
	assert.Equal(t, uint32(1), resp.GetSummary().GetBundleCount())
	assert.Equal(t, uint32(1), resp.GetSummary().GetArtifactCount())

	resp, err = client.ListRunOutputs(ctx, &apiv1.ListRunOutputsRequest{
		RunId:  runRef("run-1"),
		Filter: &apiv1.RunOutputFilter{PathContains: "app-debug"},
	})
	require.NoError(t, err)
	require.Len(t, resp.GetOutputs(), 1)
	assert.Equal(t, "apk", resp.GetOutputs()[0].GetOutputType())

	resp, err = client.ListRunOutputs(ctx, &apiv1.ListRunOutputsRequest{
		RunId:  runRef("run-1"),
		Filter: &apiv1.RunOutputFilter{LabelContains: "Support"},
	})
	require.NoError(t, err)
	require.Len(t, resp.GetOutputs(), 1)
}

func TestExportSupportBundleRoundTrip(t *testing.T) {
	client, jobClient, _, cfg := startObserveServer(t)
	ctx := context.Background()

	// Seed a child job with log output, scoped to run "R".
	started, err := jobClient.StartJob(ctx, &apiv1.StartJobRequest{
		JobType: "build.run",
		RunId:   &apiv1.RunId{Value: "R"},
	})
	require.NoError(t, err)
	childID := started.GetJob().GetJobId().GetValue()

	for i := 0; i < 3; i++ {
		_, err = jobClient.PublishJobEvent(ctx, &apiv1.PublishJobEventRequest{
			Event: &apiv1.JobEvent{
				JobId: &apiv1.Id{Value: childID},
				Payload: &apiv1.JobEvent_Log{Log: &apiv1.JobLogAppended{
					Chunk: &apiv1.LogChunk{Stream: "build", Data: []byte(fmt.Sprintf("line %d\n", i))},
				}},
			},
		})
		require.NoError(t, err)
	}

	_, err = client.UpsertRun(ctx, &apiv1.UpsertRunRequest{
		RunId:  runRef("R"),
		JobIds: []*apiv1.Id{{Value: childID}},
	})
	require.NoError(t, err)

	resp, err := client.ExportSupportBundle(ctx, &apiv1.ExportSupportBundleRequest{
		IncludeLogs:                true,
		IncludeConfig:              true,
		IncludeToolchainProvenance: true,
		IncludeRecentRuns:          true,
		RecentRunsLimit:            5,
		RunId:                      runRef("R"),
	})
	require.NoError(t, err)
	assert.Equal(t, "bundles/support-R.zip", resp.GetOutputPath())

	exportJob := resp.GetJobId().GetValue()
	require.NotEmpty(t, exportJob)
	assert.Equal(t, apiv1.JobState_JOB_STATE_SUCCESS, waitForTerminal(t, jobClient, exportJob))

	// The bundle output is registered against the run.
	outputs, err := client.ListRunOutputs(ctx, &apiv1.ListRunOutputsRequest{RunId: runRef("R")})
	require.NoError(t, err)
	var bundleOut *apiv1.RunOutput
	for _, out := range outputs.GetOutputs() {
		if out.GetKind() == apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE {
			bundleOut = out
		}
	}
	require.NotNil(t, bundleOut)
	assert.Equal(t, "support_bundle", bundleOut.GetOutputType())
	assert.True(t, strings.HasSuffix(bundleOut.GetPath(), "support-R.zip"))

	// The run finished successfully.
	runs, err := client.ListRuns(ctx, &apiv1.ListRunsRequest{
		Filter: &apiv1.RunFilter{RunId: runRef("R")},
	})
	require.NoError(t, err)
	require.Len(t, runs.GetRuns(), 1)
	assert.Equal(t, "success", runs.GetRuns()[0].GetResult())
	assert.NotNil(t, runs.GetRuns()[0].GetFinishedAt())

	// The archive holds the expected entries.
	archive, err := zip.OpenReader(filepath.Join(cfg.DataDir, "bundles", "support-R.zip"))
	require.NoError(t, err)
	defer archive.Close()

	names := make(map[string]bool)
	for _, f := range archive.File {
		names[f.Name] = true
	}
	assert.Equal(t, "manifest.json", archive.File[0].Name)
	assert.True(t, names["config/env.json"])
	assert.True(t, names["runs.json"])
	assert.True(t, names["logs/"+sanitized(childID)+"/build.log"])
}

func sanitized(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func TestExportSupportBundleCancelled(t *testing.T) {
	client, jobClient, _, _ := startObserveServer(t)
	ctx := context.Background()

	// Pre-create the export job and cancel it before the export runs,
	// so the first checkpoint observes cancellation.
	started, err := jobClient.StartJob(ctx, &apiv1.StartJobRequest{
		JobType: "observe.support_bundle",
		RunId:   &apiv1.RunId{Value: "R"},
	})
	require.NoError(t, err)
	jobID := started.GetJob().GetJobId().GetValue()

	cancel, err := jobClient.CancelJob(ctx, &apiv1.CancelJobRequest{JobId: &apiv1.Id{Value: jobID}})
	require.NoError(t, err)
	require.True(t, cancel.GetAccepted())

	_, err = client.ExportSupportBundle(ctx, &apiv1.ExportSupportBundleRequest{
		RunId: runRef("R"),
		JobId: &apiv1.Id{Value: jobID},
	})
	require.NoError(t, err)

	// The run settles as cancelled, with no Completed event published.
	deadline := time.Now().Add(5 * time.Second)
	for {
		runs, err := client.ListRuns(ctx, &apiv1.ListRunsRequest{
			Filter: &apiv1.RunFilter{RunId: runRef("R")},
		})
		require.NoError(t, err)
		if len(runs.GetRuns()) == 1 && runs.GetRuns()[0].GetResult() == "cancelled" {
			break
		}
		require.True(t, time.Now().Before(deadline), "run never settled as cancelled")
		time.Sleep(20 * time.Millisecond)
	}

	job, err := jobClient.GetJob(ctx, &apiv1.GetJobRequest{JobId: &apiv1.Id{Value: jobID}})
	require.NoError(t, err)
	assert.Equal(t, apiv1.JobState_JOB_STATE_CANCELLED, job.GetJob().GetState())
}

func TestExportEvidenceBundle(t *testing.T) {
	client, jobClient, _, cfg := startObserveServer(t)
	ctx := context.Background()

	_, err := client.UpsertRun(ctx, &apiv1.UpsertRunRequest{
		RunId:         runRef("run-ev"),
		CorrelationId: "corr-ev",
		Result:        "success",
	})
	require.NoError(t, err)

	// Unknown run: NotFound.
	_, err = client.ExportEvidenceBundle(ctx, &apiv1.ExportEvidenceBundleRequest{
		RunId: runRef("missing"),
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))

	// Lookup by correlation id alone.
	resp, err := client.ExportEvidenceBundle(ctx, &apiv1.ExportEvidenceBundleRequest{
		CorrelationId: "corr-ev",
	})
	require.NoError(t, err)
	assert.Equal(t, "bundles/evidence-run-ev.zip", resp.GetOutputPath())
	assert.Equal(t, apiv1.JobState_JOB_STATE_SUCCESS, waitForTerminal(t, jobClient, resp.GetJobId().GetValue()))

	archive, err := zip.OpenReader(filepath.Join(cfg.DataDir, "bundles", "evidence-run-ev.zip"))
	require.NoError(t, err)
	defer archive.Close()

	require.Len(t, archive.File, 2)
	assert.Equal(t, "manifest.json", archive.File[0].Name)
	assert.Equal(t, "run.json", archive.File[1].Name)

	outputs, err := client.ListRunOutputs(ctx, &apiv1.ListRunOutputsRequest{RunId: runRef("run-ev")})
	require.NoError(t, err)
	require.Len(t, outputs.GetOutputs(), 1)
	assert.Equal(t, "evidence_bundle", outputs.GetOutputs()[0].GetOutputType())
}

func TestReloadStateRPC(t *testing.T) {
	client, _, svc, _ := startObserveServer(t)
	ctx := context.Background()

	_, err := client.UpsertRun(ctx, &apiv1.UpsertRunRequest{RunId: runRef("run-1")})
	require.NoError(t, err)

	// Mutate in memory only, then reload from disk: the persisted view
	// wins.
	svc.Store().mu.Lock()
	svc.Store().runs["run-1"].Result = "mutated"
	svc.Store().mu.Unlock()

	resp, err := client.ReloadState(ctx, &apiv1.ReloadStateRequest{})
	require.NoError(t, err)
	assert.True(t, resp.GetOk())
	assert.Equal(t, uint32(1), resp.GetItemCount())

	run, ok := svc.Store().Run("run-1")
	require.True(t, ok)
	assert.Equal(t, "running", run.GetResult())
}
