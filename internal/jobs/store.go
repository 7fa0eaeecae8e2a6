// Package jobs implements the job compute fabric: a registry of job
// records, each carrying a bounded event history, a live subscriber
// fan-out, and a cancellation flag that runners poll.
package jobs

import (
	"fmt"
	"sync"
	"time"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

const (
	// HistoryCapacity bounds each job's in-memory event ring.
	// Older events are evicted once the ring is full.
	HistoryCapacity = 2048

	// subscriberBuffer is the channel depth granted to each event
	// stream subscriber before lag handling kicks in.
	subscriberBuffer = 1024
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func nowTS() *apiv1.Timestamp {
	return &apiv1.Timestamp{UnixMillis: nowMillis()}
}

// terminal reports whether a state ends the job lifecycle.
func terminal(state apiv1.JobState) bool {
	switch state {
	case apiv1.JobState_JOB_STATE_SUCCESS,
		apiv1.JobState_JOB_STATE_FAILED,
		apiv1.JobState_JOB_STATE_CANCELLED:
		return true
	default:
		return false
	}
}

// NewEvent builds a JobEvent stamped with the current time.
func NewEvent(jobID string, payload apiv1.JobEventPayload) *apiv1.JobEvent {
	return &apiv1.JobEvent{
		At:      nowTS(),
		JobId:   &apiv1.Id{Value: jobID},
		Payload: payload,
	}
}

// lagNotice is the synthetic event delivered to a subscriber that fell
// behind, in place of the events it missed.
func lagNotice(jobID string, skipped uint64) *apiv1.JobEvent {
	return NewEvent(jobID, &apiv1.JobEvent_Log{
		Log: &apiv1.JobLogAppended{
			Chunk: &apiv1.LogChunk{
				Stream: "server",
				Data:   []byte(fmt.Sprintf("WARNING: client lagged; skipped %d events\n", skipped)),
			},
		},
	})
}

// subscriber holds the channel for one event stream client.
type subscriber struct {
	ch      chan *apiv1.JobEvent
	mu      sync.Mutex
	closed  bool
	skipped uint64
}

// send delivers an event without blocking. When the channel is full the
// event is counted rather than dropped silently; the next delivery that
// fits is a synthetic lag notice so the client knows how many events it
// missed before resuming from the live head.
func (s *subscriber) send(jobID string, evt *apiv1.JobEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.skipped > 0 {
		select {
		case s.ch <- lagNotice(jobID, s.skipped):
			s.skipped = 0
		default:
			s.skipped++
			return
		}
	}

	select {
	case s.ch <- evt:
	default:
		s.skipped++
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Record tracks a single job. The job snapshot mutates under the record
// mutex; events are immutable once published, so history entries and
// subscriber deliveries share pointers.
type Record struct {
	mu      sync.Mutex
	job     *apiv1.Job
	history []*apiv1.JobEvent
	subs    map[*subscriber]struct{}

	cancelOnce sync.Once
	cancelCh   chan struct{}
}

func newRecord(job *apiv1.Job) *Record {
	return &Record{
		job:      job,
		subs:     make(map[*subscriber]struct{}),
		cancelCh: make(chan struct{}),
	}
}

// Job returns an independent snapshot of the job.
func (r *Record) Job() *apiv1.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneJob(r.job)
}

// State returns the current job state.
func (r *Record) State() apiv1.JobState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.job.GetState()
}

// SignalCancel sets the cancellation flag. Runners observe it via
// CancelRequested or CancelChan; the flag never resets.
func (r *Record) SignalCancel() {
	r.cancelOnce.Do(func() {
		close(r.cancelCh)
	})
}

// CancelRequested reports whether cancellation has been signalled.
func (r *Record) CancelRequested() bool {
	select {
	case <-r.cancelCh:
		return true
	default:
		return false
	}
}

// CancelChan closes when cancellation is signalled.
func (r *Record) CancelChan() <-chan struct{} {
	return r.cancelCh
}

// Publish appends an event to the history ring, evicting the oldest
// entry when full, and fans it out to live subscribers. The event is
// stamped with the current time if unset.
func (r *Record) Publish(evt *apiv1.JobEvent) {
	if evt.At == nil {
		evt.At = nowTS()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishLocked(evt)
}

func (r *Record) publishLocked(evt *apiv1.JobEvent) {
	if len(r.history) >= HistoryCapacity {
		r.history = r.history[1:]
	}
	r.history = append(r.history, evt)

	jobID := r.job.GetJobId().GetValue()
	for sub := range r.subs {
		sub.send(jobID, evt)
	}
}

// SetState applies a state transition and publishes the matching
// StateChanged event in one critical section, keeping the event order
// consistent with the state the job settles in.
func (r *Record) SetState(state apiv1.JobState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.applyStateLocked(state)
	r.publishLocked(NewEvent(r.job.GetJobId().GetValue(), &apiv1.JobEvent_StateChanged{
		StateChanged: &apiv1.JobStateChanged{NewState: state},
	}))
}

// UpdateStateOnly applies a state transition without publishing an
// event. Used when the transition is implied by an event the caller is
// about to publish itself.
func (r *Record) UpdateStateOnly(state apiv1.JobState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applyStateLocked(state)
}

// applyStateLocked transitions the job state. Terminal states absorb
// all later transitions, and a job that has left Queued never returns
// to it; started_at and finished_at are set on the first transition
// into Running and into a terminal state.
func (r *Record) applyStateLocked(state apiv1.JobState) {
	if terminal(r.job.GetState()) {
		return
	}
	if state == apiv1.JobState_JOB_STATE_QUEUED &&
		r.job.GetState() != apiv1.JobState_JOB_STATE_QUEUED {
		return
	}

	r.job.State = state
	switch {
	case state == apiv1.JobState_JOB_STATE_RUNNING && r.job.StartedAt == nil:
		r.job.StartedAt = nowTS()
	case terminal(state) && r.job.FinishedAt == nil:
		r.job.FinishedAt = nowTS()
	}
}

// Subscribe registers a live event subscriber. The history snapshot and
// the subscription happen atomically, so replaying the returned history
// before draining the channel observes every event exactly once. The
// cleanup function must be called when the consumer is done.
func (r *Record) Subscribe(includeHistory bool) ([]*apiv1.JobEvent, <-chan *apiv1.JobEvent, func()) {
	sub := &subscriber{ch: make(chan *apiv1.JobEvent, subscriberBuffer)}

	r.mu.Lock()
	var history []*apiv1.JobEvent
	if includeHistory {
		history = make([]*apiv1.JobEvent, len(r.history))
		copy(history, r.history)
	}
	r.subs[sub] = struct{}{}
	r.mu.Unlock()

	cleanup := func() {
		r.mu.Lock()
		delete(r.subs, sub)
		r.mu.Unlock()
		sub.close()
	}

	return history, sub.ch, cleanup
}

// Snapshot returns the job and its event history from one critical
// section, so the pair is consistent even while the job is advancing.
func (r *Record) Snapshot() (*apiv1.Job, []*apiv1.JobEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]*apiv1.JobEvent, len(r.history))
	copy(events, r.history)
	return cloneJob(r.job), events
}

// History returns a copy of the event history.
func (r *Record) History() []*apiv1.JobEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]*apiv1.JobEvent, len(r.history))
	copy(events, r.history)
	return events
}

// restoreHistory seeds the ring from persisted state.
func (r *Record) restoreHistory(events []*apiv1.JobEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(events) > HistoryCapacity {
		events = events[len(events)-HistoryCapacity:]
	}
	r.history = append(r.history[:0], events...)
}

func (r *Record) closeSubscribers() {
	r.mu.Lock()
	subs := make([]*subscriber, 0, len(r.subs))
	for sub := range r.subs {
		subs = append(subs, sub)
	}
	r.subs = make(map[*subscriber]struct{})
	r.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

// Store is the in-memory job registry shared by the gRPC service, the
// built-in runners, and the persistence worker.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Record
}

// NewStore creates an empty job registry.
func NewStore() *Store {
	return &Store{jobs: make(map[string]*Record)}
}

// Insert registers a job and returns its record.
func (s *Store) Insert(job *apiv1.Job) *Record {
	rec := newRecord(job)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.GetJobId().GetValue()] = rec
	return rec
}

// Get returns the record for a job id.
func (s *Store) Get(jobID string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.jobs[jobID]
	return rec, ok
}

// Jobs returns snapshots of every tracked job, in no particular order.
func (s *Store) Jobs() []*apiv1.Job {
	records := s.records()

	jobs := make([]*apiv1.Job, 0, len(records))
	for _, rec := range records {
		jobs = append(jobs, rec.Job())
	}
	return jobs
}

// Len returns the number of tracked jobs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// PruneTo drops every record whose job id is not in keep.
func (s *Store) PruneTo(keep map[string]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for jobID := range s.jobs {
		if !keep[jobID] {
			delete(s.jobs, jobID)
		}
	}
}

// Close ends every live subscription. Streams observe the channel close
// and terminate; the records themselves remain queryable.
func (s *Store) Close() {
	for _, rec := range s.records() {
		rec.closeSubscribers()
	}
}

func (s *Store) records() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*Record, 0, len(s.jobs))
	for _, rec := range s.jobs {
		records = append(records, rec)
	}
	return records
}

func (s *Store) entries() map[string]*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make(map[string]*Record, len(s.jobs))
	for jobID, rec := range s.jobs {
		entries[jobID] = rec
	}
	return entries
}

func cloneID(id *apiv1.Id) *apiv1.Id {
	if id == nil {
		return nil
	}
	return &apiv1.Id{Value: id.Value}
}

func cloneRunID(id *apiv1.RunId) *apiv1.RunId {
	if id == nil {
		return nil
	}
	return &apiv1.RunId{Value: id.Value}
}

func cloneTS(ts *apiv1.Timestamp) *apiv1.Timestamp {
	if ts == nil {
		return nil
	}
	return &apiv1.Timestamp{UnixMillis: ts.UnixMillis}
}

func cloneJob(job *apiv1.Job) *apiv1.Job {
	if job == nil {
		return nil
	}
	return &apiv1.Job{
		JobId:          cloneID(job.JobId),
		JobType:        job.JobType,
		State:          job.State,
		CreatedAt:      cloneTS(job.CreatedAt),
		StartedAt:      cloneTS(job.StartedAt),
		FinishedAt:     cloneTS(job.FinishedAt),
		DisplayName:    job.DisplayName,
		CorrelationId:  job.CorrelationId,
		RunId:          cloneRunID(job.RunId),
		ProjectId:      cloneID(job.ProjectId),
		TargetId:       cloneID(job.TargetId),
		ToolchainSetId: cloneID(job.ToolchainSetId),
	}
}
