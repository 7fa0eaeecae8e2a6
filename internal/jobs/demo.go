package jobs

import (
	"fmt"
	"strconv"
	"time"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

const (
	demoTotalSteps = 10
	demoStartDelay = 150 * time.Millisecond
	demoStepDelay  = 250 * time.Millisecond
)

// runDemoJob drives the built-in demonstration job: ten timed steps,
// each publishing a progress update and a log line. It exists so
// clients can exercise the full event pipeline without any SDK
// tooling installed.
func (s *Service) runDemoJob(jobID string, rec *Record) {
	rec.SetState(apiv1.JobState_JOB_STATE_QUEUED)
	s.schedulePersist()
	time.Sleep(demoStartDelay)

	// Cancellation during the start delay means the job is already
	// terminal; publishing Running here would leave the history reading
	// Cancelled then Running.
	if rec.CancelRequested() {
		return
	}
	rec.SetState(apiv1.JobState_JOB_STATE_RUNNING)
	s.schedulePersist()

	for step := 1; step <= demoTotalSteps; step++ {
		select {
		case <-rec.CancelChan():
			// CancelJob already published the Cancelled transition;
			// the runner just stops producing.
			return
		case <-time.After(demoStepDelay):
		}

		pct := uint32(step * 10)
		rec.Publish(NewEvent(jobID, &apiv1.JobEvent_Progress{
			Progress: &apiv1.JobProgressUpdated{
				Progress: &apiv1.JobProgress{
					Percent: pct,
					Phase:   fmt.Sprintf("Demo phase %d", step),
					Metrics: []*apiv1.KeyValue{
						{Key: "step", Value: strconv.Itoa(step)},
						{Key: "total_steps", Value: strconv.Itoa(demoTotalSteps)},
					},
				},
			},
		}))
		rec.Publish(NewEvent(jobID, &apiv1.JobEvent_Log{
			Log: &apiv1.JobLogAppended{
				Chunk: &apiv1.LogChunk{
					Stream: "stdout",
					Data:   []byte(fmt.Sprintf("demo: step %d complete (%d%%)\n", step, pct)),
				},
			},
		}))
		s.schedulePersist()
	}

	if rec.CancelRequested() {
		return
	}
	rec.SetState(apiv1.JobState_JOB_STATE_SUCCESS)
	rec.Publish(NewEvent(jobID, &apiv1.JobEvent_Completed{
		Completed: &apiv1.JobCompleted{
			Summary: "Demo job finished successfully",
			Outputs: []*apiv1.KeyValue{{Key: "artifact", Value: "/tmp/demo-artifact.txt"}},
		},
	}))
	s.schedulePersist()
}
