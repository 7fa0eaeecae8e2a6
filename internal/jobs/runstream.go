package jobs

import (
	"container/heap"
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Aggregation defaults; each is overridable per request (except the
// flush cadence) and via environment.
const (
	defaultRunStreamBufferMax   = 512
	defaultRunStreamMaxDelayMS  = 1500
	defaultRunStreamDiscoveryMS = 750
	defaultRunStreamFlushMS     = 200
)

type runStreamConfig struct {
	bufferMaxEvents   int
	maxDelay          time.Duration
	discoveryInterval time.Duration
	flushInterval     time.Duration
}

func readEnvInt(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func runStreamConfigFromRequest(req *apiv1.StreamRunEventsRequest) runStreamConfig {
	bufferMax := int(req.GetBufferMaxEvents())
	if bufferMax == 0 {
		bufferMax = readEnvInt("AADK_RUN_STREAM_BUFFER_MAX", defaultRunStreamBufferMax)
	}
	maxDelayMS := int(req.GetMaxDelayMs())
	if maxDelayMS == 0 {
		maxDelayMS = readEnvInt("AADK_RUN_STREAM_MAX_DELAY_MS", defaultRunStreamMaxDelayMS)
	}
	discoveryMS := int(req.GetDiscoveryIntervalMs())
	if discoveryMS == 0 {
		discoveryMS = readEnvInt("AADK_RUN_STREAM_DISCOVERY_MS", defaultRunStreamDiscoveryMS)
	}
	flushMS := readEnvInt("AADK_RUN_STREAM_FLUSH_MS", defaultRunStreamFlushMS)

	return runStreamConfig{
		bufferMaxEvents:   max(bufferMax, 1),
		maxDelay:          time.Duration(max(maxDelayMS, 1)) * time.Millisecond,
		discoveryInterval: time.Duration(max(discoveryMS, 1)) * time.Millisecond,
		flushInterval:     time.Duration(max(flushMS, 1)) * time.Millisecond,
	}
}

// jobMatchesRun decides whether a job belongs to the requested run. A
// run-scoped request also adopts jobs that carry no run id but share
// the correlation id, so work started before the run existed still
// shows up in the stream.
func jobMatchesRun(job *apiv1.Job, runID, correlationID string) bool {
	runID = strings.TrimSpace(runID)
	correlationID = strings.TrimSpace(correlationID)

	if runID != "" {
		jobRun := job.GetRunId().GetValue()
		if jobRun == runID {
			return true
		}
		return jobRun == "" && correlationID != "" && job.GetCorrelationId() == correlationID
	}
	if correlationID != "" {
		return job.GetCorrelationId() == correlationID
	}
	return false
}

func eventTimestamp(evt *apiv1.JobEvent) int64 {
	if at := evt.GetAt(); at != nil {
		return at.UnixMillis
	}
	return nowMillis()
}

// bufferedEvent orders events by timestamp, breaking ties by arrival
// sequence so same-millisecond events keep their publish order.
type bufferedEvent struct {
	atUnixMillis int64
	seq          uint64
	event        *apiv1.JobEvent
}

type eventHeap []bufferedEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].atUnixMillis != h[j].atUnixMillis {
		return h[i].atUnixMillis < h[j].atUnixMillis
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(bufferedEvent)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// StreamRunEvents merges the event streams of every job in a run into
// one time-ordered stream. Jobs that join the run later are picked up
// by periodic discovery; events are buffered briefly so near-
// simultaneous events from different jobs come out in timestamp order.
func (s *Service) StreamRunEvents(req *apiv1.StreamRunEventsRequest, stream apiv1.JobService_StreamRunEventsServer) error {
	runID := strings.TrimSpace(req.GetRunId().GetValue())
	correlationID := strings.TrimSpace(req.GetCorrelationId())
	if runID == "" && correlationID == "" {
		return status.Error(codes.InvalidArgument, "run_id or correlation_id is required")
	}

	agg := newRunAggregator(s.store, runID, correlationID, req.GetIncludeHistory(), runStreamConfigFromRequest(req))
	return agg.run(stream)
}

type runAggregator struct {
	store          *Store
	runID          string
	correlationID  string
	includeHistory bool
	cfg            runStreamConfig

	// events fans in from the per-job feeder goroutines.
	events   chan *apiv1.JobEvent
	known    map[string]bool
	cleanups []func()
	buffer   eventHeap
	seq      uint64
}

func newRunAggregator(store *Store, runID, correlationID string, includeHistory bool, cfg runStreamConfig) *runAggregator {
	return &runAggregator{
		store:          store,
		runID:          runID,
		correlationID:  correlationID,
		includeHistory: includeHistory,
		cfg:            cfg,
		events:         make(chan *apiv1.JobEvent, cfg.bufferMaxEvents*2),
		known:          make(map[string]bool),
	}
}

func (a *runAggregator) run(stream apiv1.JobService_StreamRunEventsServer) error {
	ctx := stream.Context()
	defer a.close()

	a.discover(ctx)

	discoveryTick := time.NewTicker(a.cfg.discoveryInterval)
	defer discoveryTick.Stop()
	flushTick := time.NewTicker(a.cfg.flushInterval)
	defer flushTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-discoveryTick.C:
			a.discover(ctx)
		case <-flushTick.C:
			if err := a.flush(stream); err != nil {
				return err
			}
		case evt := <-a.events:
			heap.Push(&a.buffer, bufferedEvent{
				atUnixMillis: eventTimestamp(evt),
				seq:          a.seq,
				event:        evt,
			})
			a.seq++
			if err := a.flush(stream); err != nil {
				return err
			}
		}
	}
}

// discover scans the registry for jobs matching the run and attaches a
// feeder to each job not seen before.
func (a *runAggregator) discover(ctx context.Context) {
	for jobID, rec := range a.store.entries() {
		if a.known[jobID] {
			continue
		}
		if !jobMatchesRun(rec.Job(), a.runID, a.correlationID) {
			continue
		}
		a.known[jobID] = true
		a.attach(ctx, rec)
	}
}

// attach subscribes to one job and forwards its history and live
// events into the shared fan-in channel.
func (a *runAggregator) attach(ctx context.Context, rec *Record) {
	history, events, cleanup := rec.Subscribe(a.includeHistory)
	a.cleanups = append(a.cleanups, cleanup)

	go func() {
		for _, evt := range history {
			select {
			case a.events <- evt:
			case <-ctx.Done():
				return
			}
		}
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case a.events <- evt:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

// flush sends ordered events while the buffer is over its size bound
// or its oldest entry has waited past the delay bound. Each send
// re-evaluates, so one flush can drain the whole buffer.
func (a *runAggregator) flush(stream apiv1.JobService_StreamRunEventsServer) error {
	maxDelayMS := a.cfg.maxDelay.Milliseconds()
	for a.buffer.Len() > 0 {
		overSize := a.buffer.Len() > a.cfg.bufferMaxEvents
		overdue := nowMillis()-a.buffer[0].atUnixMillis >= maxDelayMS
		if !overSize && !overdue {
			return nil
		}
		next := heap.Pop(&a.buffer).(bufferedEvent)
		if err := stream.Send(next.event); err != nil {
			return err
		}
	}
	return nil
}

func (a *runAggregator) close() {
	for _, cleanup := range a.cleanups {
		cleanup()
	}
}
