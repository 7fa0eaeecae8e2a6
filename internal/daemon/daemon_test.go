package daemon

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadk-dev/aadk/internal/client"
	"github.com/aadk-dev/aadk/internal/config"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.JobAddr = freeAddr(t)
	cfg.ObserveAddr = freeAddr(t)
	cfg.WorkflowAddr = freeAddr(t)
	return cfg
}

// startDaemon runs a daemon in the background and tears it down with
// the test.
func startDaemon(t *testing.T, cfg *config.Config, only []string) {
	t.Helper()
	d, err := New(cfg, only)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Error("daemon did not shut down")
		}
	})
}

func TestNewRejectsUnknownService(t *testing.T) {
	cfg := testConfig(t)
	_, err := New(cfg, []string{"job", "frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown service "frobnicate"`)
}

func TestDaemonServesJobService(t *testing.T) {
	cfg := testConfig(t)
	startDaemon(t, cfg, nil)

	conn, err := client.Dial(cfg.JobAddr)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start, err := conn.Jobs().StartJob(ctx, &apiv1.StartJobRequest{JobType: "demo.job"})
	require.NoError(t, err)
	jobID := start.GetJob().GetJobId().GetValue()
	require.NotEmpty(t, jobID)

	// The demo job runs internally and finishes on its own.
	deadline := time.Now().Add(10 * time.Second)
	for {
		resp, err := conn.Jobs().GetJob(ctx, &apiv1.GetJobRequest{JobId: &apiv1.Id{Value: jobID}})
		require.NoError(t, err)
		if resp.GetJob().GetState() == apiv1.JobState_JOB_STATE_SUCCESS {
			break
		}
		require.True(t, time.Now().Before(deadline), "demo job never finished")
		time.Sleep(20 * time.Millisecond)
	}
}

func TestDaemonServesObserveAndWorkflow(t *testing.T) {
	cfg := testConfig(t)
	startDaemon(t, cfg, nil)

	obs, err := client.Dial(cfg.ObserveAddr)
	require.NoError(t, err)
	defer obs.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	up, err := obs.Observe().UpsertRun(ctx, &apiv1.UpsertRunRequest{
		RunId:  &apiv1.RunId{Value: "run-daemon"},
		Result: "running",
	})
	require.NoError(t, err)
	assert.Equal(t, "run-daemon", up.GetRun().GetRunId().GetValue())

	wf, err := client.Dial(cfg.WorkflowAddr)
	require.NoError(t, err)
	defer wf.Close()

	// An empty request plans no steps and completes immediately.
	resp, err := wf.Workflow().RunPipeline(ctx, &apiv1.WorkflowPipelineRequest{
		RunId: &apiv1.RunId{Value: "run-empty"},
	})
	require.NoError(t, err)
	assert.Equal(t, "run-empty", resp.GetRunId().GetValue())
	require.NotNil(t, resp.GetJobId())
}

func TestDaemonOnlySubset(t *testing.T) {
	cfg := testConfig(t)
	startDaemon(t, cfg, []string{ServiceJob})

	conn, err := client.Dial(cfg.JobAddr)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = conn.Jobs().StartJob(ctx, &apiv1.StartJobRequest{JobType: "build.run"})
	require.NoError(t, err)

	// The observe address was never bound.
	obs, err := client.Dial(cfg.ObserveAddr)
	require.NoError(t, err)
	defer obs.Close()
	shortCtx, shortCancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer shortCancel()
	_, err = obs.Observe().ListRuns(shortCtx, &apiv1.ListRunsRequest{})
	require.Error(t, err)
}
