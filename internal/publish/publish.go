// Package publish gives runners a small surface for posting job
// lifecycle events to the job service and for observing cancellation
// of the job they are driving.
package publish

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Publisher posts events for jobs owned by one runner. The stream tag
// labels log chunks so merged run streams can tell producers apart.
type Publisher struct {
	client apiv1.JobServiceClient
	stream string
}

// New creates a publisher that tags log chunks with the given stream
// name, e.g. "workflow" or "observe".
func New(client apiv1.JobServiceClient, stream string) *Publisher {
	return &Publisher{client: client, stream: stream}
}

// Start launches a job and returns its id.
func (p *Publisher) Start(ctx context.Context, req *apiv1.StartJobRequest) (string, error) {
	resp, err := p.client.StartJob(ctx, req)
	if err != nil {
		return "", status.Errorf(codes.Unavailable, "job start failed: %v", err)
	}
	jobID := resp.GetJob().GetJobId().GetValue()
	if jobID == "" {
		return "", status.Error(codes.Internal, "job service returned empty job_id")
	}
	return jobID, nil
}

// Event publishes a single event. The job service stamps the time.
func (p *Publisher) Event(ctx context.Context, jobID string, payload apiv1.JobEventPayload) error {
	_, err := p.client.PublishJobEvent(ctx, &apiv1.PublishJobEventRequest{
		Event: &apiv1.JobEvent{
			JobId:   &apiv1.Id{Value: jobID},
			Payload: payload,
		},
	})
	if err != nil {
		return status.Errorf(codes.Unavailable, "publish job event failed: %v", err)
	}
	return nil
}

// State publishes a state transition.
func (p *Publisher) State(ctx context.Context, jobID string, state apiv1.JobState) error {
	return p.Event(ctx, jobID, &apiv1.JobEvent_StateChanged{
		StateChanged: &apiv1.JobStateChanged{NewState: state},
	})
}

// Progress publishes a progress update. Percent is clamped to 100.
func (p *Publisher) Progress(ctx context.Context, jobID string, percent uint32, phase string, metrics []*apiv1.KeyValue) error {
	if percent > 100 {
		percent = 100
	}
	return p.Event(ctx, jobID, &apiv1.JobEvent_Progress{
		Progress: &apiv1.JobProgressUpdated{
			Progress: &apiv1.JobProgress{
				Percent: percent,
				Phase:   phase,
				Metrics: metrics,
			},
		},
	})
}

// Log publishes a log line on the publisher's stream.
func (p *Publisher) Log(ctx context.Context, jobID, message string) error {
	return p.Event(ctx, jobID, &apiv1.JobEvent_Log{
		Log: &apiv1.JobLogAppended{
			Chunk: &apiv1.LogChunk{
				Stream: p.stream,
				Data:   []byte(message),
			},
		},
	})
}

// Completed marks the job successful and publishes its completion
// summary. Two events: StateChanged(Success), then Completed.
func (p *Publisher) Completed(ctx context.Context, jobID, summary string, outputs []*apiv1.KeyValue) error {
	if err := p.State(ctx, jobID, apiv1.JobState_JOB_STATE_SUCCESS); err != nil {
		return err
	}
	return p.Event(ctx, jobID, &apiv1.JobEvent_Completed{
		Completed: &apiv1.JobCompleted{Summary: summary, Outputs: outputs},
	})
}

// Failed marks the job failed and publishes the error detail. Two
// events: StateChanged(Failed), then Failed.
func (p *Publisher) Failed(ctx context.Context, jobID string, detail *apiv1.ErrorDetail) error {
	if err := p.State(ctx, jobID, apiv1.JobState_JOB_STATE_FAILED); err != nil {
		return err
	}
	return p.Event(ctx, jobID, &apiv1.JobEvent_Failed{
		Failed: &apiv1.JobFailed{Error: detail},
	})
}

// Metric builds a KeyValue from any printable value.
func Metric(key string, value any) *apiv1.KeyValue {
	return &apiv1.KeyValue{Key: key, Value: fmt.Sprint(value)}
}

// Signal is a write-once cancellation flag shared between a watcher
// goroutine and a runner.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// NewSignal creates an unset signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Set marks the signal. Further calls are no-ops.
func (s *Signal) Set() {
	s.once.Do(func() {
		close(s.ch)
	})
}

// Cancelled reports whether the signal has been set.
func (s *Signal) Cancelled() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Done closes when the signal is set.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// Watch follows a job's event stream and sets the returned signal when
// the job transitions to Cancelled. If the subscription cannot be
// opened the failure is logged and the signal stays unset; runners keep
// IsCancelled as a polling fallback.
func Watch(ctx context.Context, client apiv1.JobServiceClient, jobID string) *Signal {
	sig := NewSignal()

	stream, err := client.StreamJobEvents(ctx, &apiv1.StreamJobEventsRequest{
		JobId:          &apiv1.Id{Value: jobID},
		IncludeHistory: true,
	})
	if err != nil {
		logrus.Warnf("cancel watcher: stream failed for %s: %v", jobID, err)
		return sig
	}

	go func() {
		for {
			evt, err := stream.Recv()
			if err != nil {
				return
			}
			if evt.GetStateChanged().GetNewState() == apiv1.JobState_JOB_STATE_CANCELLED {
				sig.Set()
				return
			}
		}
	}()

	return sig
}

// IsCancelled asks the job service whether a job reached the Cancelled
// state. Lookup failures count as not cancelled.
func IsCancelled(ctx context.Context, client apiv1.JobServiceClient, jobID string) bool {
	resp, err := client.GetJob(ctx, &apiv1.GetJobRequest{JobId: &apiv1.Id{Value: jobID}})
	if err != nil {
		return false
	}
	return resp.GetJob().GetState() == apiv1.JobState_JOB_STATE_CANCELLED
}
