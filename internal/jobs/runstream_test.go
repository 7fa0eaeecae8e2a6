package jobs

import (
	"container/heap"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

func TestReadEnvInt(t *testing.T) {
	t.Setenv("AADK_TEST_ENV_INT", "  42  ")
	assert.Equal(t, 42, readEnvInt("AADK_TEST_ENV_INT", 7))

	t.Setenv("AADK_TEST_ENV_INT", "often")
	assert.Equal(t, 7, readEnvInt("AADK_TEST_ENV_INT", 7))

	t.Setenv("AADK_TEST_ENV_INT", "-5")
	assert.Equal(t, 7, readEnvInt("AADK_TEST_ENV_INT", 7))

	assert.Equal(t, 7, readEnvInt("AADK_TEST_ENV_INT_UNSET", 7))
}

func TestRunStreamConfigFromRequest(t *testing.T) {
	cfg := runStreamConfigFromRequest(&apiv1.StreamRunEventsRequest{})
	assert.Equal(t, defaultRunStreamBufferMax, cfg.bufferMaxEvents)
	assert.Equal(t, defaultRunStreamMaxDelayMS*time.Millisecond, cfg.maxDelay)
	assert.Equal(t, defaultRunStreamDiscoveryMS*time.Millisecond, cfg.discoveryInterval)
	assert.Equal(t, defaultRunStreamFlushMS*time.Millisecond, cfg.flushInterval)

	// Request values override defaults and environment alike.
	t.Setenv("AADK_RUN_STREAM_BUFFER_MAX", "9")
	cfg = runStreamConfigFromRequest(&apiv1.StreamRunEventsRequest{
		BufferMaxEvents:     64,
		MaxDelayMs:          250,
		DiscoveryIntervalMs: 100,
	})
	assert.Equal(t, 64, cfg.bufferMaxEvents)
	assert.Equal(t, 250*time.Millisecond, cfg.maxDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.discoveryInterval)

	// Zero request values fall back to the environment.
	t.Setenv("AADK_RUN_STREAM_MAX_DELAY_MS", "500")
	t.Setenv("AADK_RUN_STREAM_FLUSH_MS", "50")
	cfg = runStreamConfigFromRequest(&apiv1.StreamRunEventsRequest{})
	assert.Equal(t, 9, cfg.bufferMaxEvents)
	assert.Equal(t, 500*time.Millisecond, cfg.maxDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.flushInterval)

	// Unparseable environment values fall back to defaults, and zero
	// settings are floored so tickers never get a zero period.
	t.Setenv("AADK_RUN_STREAM_MAX_DELAY_MS", "soon")
	t.Setenv("AADK_RUN_STREAM_FLUSH_MS", "0")
	cfg = runStreamConfigFromRequest(&apiv1.StreamRunEventsRequest{})
	assert.Equal(t, defaultRunStreamMaxDelayMS*time.Millisecond, cfg.maxDelay)
	assert.Equal(t, time.Millisecond, cfg.flushInterval)
}

func TestJobMatchesRun(t *testing.T) {
	withRun := func(run, correlation string) *apiv1.Job {
		job := &apiv1.Job{CorrelationId: correlation}
		if run != "" {
			job.RunId = &apiv1.RunId{Value: run}
		}
		return job
	}

	tests := []struct {
		name          string
		job           *apiv1.Job
		runID         string
		correlationID string
		want          bool
	}{
		{name: "run match", job: withRun("run-1", "c1"), runID: "run-1", want: true},
		{name: "run mismatch", job: withRun("run-2", "c1"), runID: "run-1", want: false},
		{name: "run adopts by correlation", job: withRun("", "c1"), runID: "run-1", correlationID: "c1", want: true},
		{name: "run does not adopt other correlation", job: withRun("", "c2"), runID: "run-1", correlationID: "c1", want: false},
		{name: "run set blocks adoption", job: withRun("run-2", "c1"), runID: "run-1", correlationID: "c1", want: false},
		{name: "correlation only", job: withRun("run-1", "c1"), correlationID: "c1", want: true},
		{name: "correlation mismatch", job: withRun("run-1", "c2"), correlationID: "c1", want: false},
		{name: "no scope", job: withRun("run-1", "c1"), want: false},
		{name: "blank scope trimmed", job: withRun("run-1", "c1"), runID: "  run-1  ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jobMatchesRun(tt.job, tt.runID, tt.correlationID))
		})
	}
}

func TestEventHeapOrdersByTimestampThenSeq(t *testing.T) {
	h := &eventHeap{}
	push := func(at int64, seq uint64) {
		heap.Push(h, bufferedEvent{atUnixMillis: at, seq: seq})
	}
	push(300, 4)
	push(100, 2)
	push(200, 3)
	push(100, 1)
	push(200, 5)

	var got [][2]int64
	for h.Len() > 0 {
		item := heap.Pop(h).(bufferedEvent)
		got = append(got, [2]int64{item.atUnixMillis, int64(item.seq)})
	}
	assert.Equal(t, [][2]int64{{100, 1}, {100, 2}, {200, 3}, {200, 5}, {300, 4}}, got)
}

func TestStreamRunEventsRequiresScope(t *testing.T) {
	client, _ := startJobServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.StreamRunEvents(ctx, &apiv1.StreamRunEventsRequest{})
	require.NoError(t, err)

	_, err = stream.Recv()
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "run_id or correlation_id is required", status.Convert(err).Message())
}

func runJob(jobID, runID string) *apiv1.Job {
	return &apiv1.Job{
		JobId:         &apiv1.Id{Value: jobID},
		JobType:       "build.run",
		State:         apiv1.JobState_JOB_STATE_RUNNING,
		CreatedAt:     nowTS(),
		DisplayName:   "build.run",
		CorrelationId: jobID,
		RunId:         &apiv1.RunId{Value: runID},
	}
}

func stampedLog(jobID, line string, at int64) *apiv1.JobEvent {
	evt := logEvent(jobID, line)
	evt.At = &apiv1.Timestamp{UnixMillis: at}
	return evt
}

func collectRunEvents(t *testing.T, stream apiv1.JobService_StreamRunEventsClient, n int) []*apiv1.JobEvent {
	t.Helper()

	events := make([]*apiv1.JobEvent, 0, n)
	for len(events) < n {
		evt, err := stream.Recv()
		require.NoError(t, err)
		events = append(events, evt)
	}
	return events
}

func TestStreamRunEventsMergesJobsByTimestamp(t *testing.T) {
	client, svc := startJobServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	base := nowMillis() - 10_000

	recA := svc.Store().Insert(runJob("job-a", "run-1"))
	recB := svc.Store().Insert(runJob("job-b", "run-1"))
	other := svc.Store().Insert(runJob("job-c", "run-other"))

	// Interleaved publish order across the two jobs; the stream must
	// deliver by timestamp, not by arrival.
	recA.Publish(stampedLog("job-a", "a1\n", base+300))
	recB.Publish(stampedLog("job-b", "b1\n", base+100))
	recA.Publish(stampedLog("job-a", "a2\n", base+400))
	recB.Publish(stampedLog("job-b", "b2\n", base+200))
	other.Publish(stampedLog("job-c", "c1\n", base+150))

	stream, err := client.StreamRunEvents(ctx, &apiv1.StreamRunEventsRequest{
		RunId:          &apiv1.RunId{Value: "run-1"},
		IncludeHistory: true,
	})
	require.NoError(t, err)

	events := collectRunEvents(t, stream, 4)

	var lines []string
	for _, evt := range events {
		assert.NotEqual(t, "job-c", evt.GetJobId().GetValue())
		lines = append(lines, string(evt.GetLog().GetChunk().GetData()))
	}
	assert.Equal(t, []string{"b1\n", "b2\n", "a1\n", "a2\n"}, lines)
}

func TestStreamRunEventsDiscoversLateJobs(t *testing.T) {
	client, _ := startJobServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stream, err := client.StreamRunEvents(ctx, &apiv1.StreamRunEventsRequest{
		RunId:               &apiv1.RunId{Value: "run-late"},
		IncludeHistory:      true,
		MaxDelayMs:          50,
		DiscoveryIntervalMs: 25,
	})
	require.NoError(t, err)

	// The run has no jobs yet; start one after the stream is open.
	started, err := client.StartJob(ctx, &apiv1.StartJobRequest{
		JobType: "build.run",
		RunId:   &apiv1.RunId{Value: "run-late"},
	})
	require.NoError(t, err)

	_, err = client.PublishJobEvent(ctx, &apiv1.PublishJobEventRequest{
		Event: &apiv1.JobEvent{
			JobId:   started.GetJob().GetJobId(),
			Payload: &apiv1.JobEvent_Log{Log: &apiv1.JobLogAppended{Chunk: &apiv1.LogChunk{Data: []byte("late\n")}}},
		},
	})
	require.NoError(t, err)

	events := collectRunEvents(t, stream, 1)
	assert.Equal(t, "late\n", string(events[0].GetLog().GetChunk().GetData()))
	assert.Equal(t, started.GetJob().GetJobId().GetValue(), events[0].GetJobId().GetValue())
}

func TestStreamRunEventsByCorrelation(t *testing.T) {
	client, svc := startJobServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	job := runJob("job-corr", "run-9")
	job.CorrelationId = "corr-9"
	rec := svc.Store().Insert(job)
	rec.Publish(stampedLog("job-corr", "hello\n", nowMillis()-5_000))

	stream, err := client.StreamRunEvents(ctx, &apiv1.StreamRunEventsRequest{
		CorrelationId:  "corr-9",
		IncludeHistory: true,
	})
	require.NoError(t, err)

	events := collectRunEvents(t, stream, 1)
	assert.Equal(t, "hello\n", string(events[0].GetLog().GetChunk().GetData()))
}
