package jobs

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aadk-dev/aadk/internal/ids"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// knownJobTypes lists every job type the fabric accepts. Services that
// publish through the fabric register their types here.
var knownJobTypes = map[string]bool{
	"demo.job":                   true,
	"workflow.pipeline":          true,
	"project.create":             true,
	"build.run":                  true,
	"toolchain.install":          true,
	"toolchain.verify":           true,
	"toolchain.update":           true,
	"toolchain.uninstall":        true,
	"toolchain.cleanup_cache":    true,
	"targets.install":            true,
	"targets.launch":             true,
	"targets.stop":               true,
	"targets.cuttlefish.install": true,
	"targets.cuttlefish.start":   true,
	"targets.cuttlefish.stop":    true,
	"observe.support_bundle":     true,
	"observe.evidence_bundle":    true,
}

func displayName(jobType string) string {
	switch jobType {
	case "demo.job":
		return "Demo Job"
	case "workflow.pipeline":
		return "Workflow Pipeline"
	default:
		return jobType
	}
}

// Service implements the JobService RPC surface over a Store. The
// optional Worker receives a persist request after every mutation.
type Service struct {
	apiv1.UnimplementedJobServiceServer

	store  *Store
	worker *Worker
}

// NewService creates the job service. worker may be nil when
// persistence is not wanted.
func NewService(store *Store, worker *Worker) *Service {
	return &Service{store: store, worker: worker}
}

// Store exposes the underlying registry.
func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) schedulePersist() {
	if s.worker != nil {
		s.worker.Schedule()
	}
}

// StartJob registers a new job in the Queued state. Only the built-in
// demo job is executed by the fabric itself; every other job type is
// advanced by its owning service through PublishJobEvent.
func (s *Service) StartJob(ctx context.Context, req *apiv1.StartJobRequest) (*apiv1.StartJobResponse, error) {
	jobType := strings.TrimSpace(req.GetJobType())
	if jobType == "" {
		return nil, status.Error(codes.InvalidArgument, "job_type is required")
	}
	if !knownJobTypes[jobType] {
		return nil, status.Errorf(codes.InvalidArgument, "unknown job_type: %s", jobType)
	}

	jobID := ids.NewJobID()

	// A blank correlation id defaults to the job id so every job can be
	// traced. The run id falls back to the caller's correlation id,
	// which lets pre-run jobs be adopted into a run later.
	correlationRaw := strings.TrimSpace(req.GetCorrelationId())
	correlation := correlationRaw
	if correlation == "" {
		correlation = jobID
	}
	runID := strings.TrimSpace(req.GetRunId().GetValue())
	if runID == "" && correlationRaw != "" {
		runID = correlationRaw
	}
	var runRef *apiv1.RunId
	if runID != "" {
		runRef = &apiv1.RunId{Value: runID}
	}

	job := &apiv1.Job{
		JobId:          &apiv1.Id{Value: jobID},
		JobType:        jobType,
		State:          apiv1.JobState_JOB_STATE_QUEUED,
		CreatedAt:      nowTS(),
		DisplayName:    displayName(jobType),
		CorrelationId:  correlation,
		RunId:          runRef,
		ProjectId:      req.GetProjectId(),
		TargetId:       req.GetTargetId(),
		ToolchainSetId: req.GetToolchainSetId(),
	}

	rec := s.store.Insert(job)
	s.schedulePersist()

	if jobType == "demo.job" {
		go s.runDemoJob(jobID, rec)
	}

	return &apiv1.StartJobResponse{Job: rec.Job()}, nil
}

func (s *Service) GetJob(ctx context.Context, req *apiv1.GetJobRequest) (*apiv1.GetJobResponse, error) {
	jobID := req.GetJobId().GetValue()
	rec, ok := s.store.Get(jobID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "Job not found: %s", jobID)
	}
	return &apiv1.GetJobResponse{Job: rec.Job()}, nil
}

// CancelJob requests cancellation. Unknown and already-terminal jobs
// report accepted=false rather than an error, so callers can cancel
// blindly.
func (s *Service) CancelJob(ctx context.Context, req *apiv1.CancelJobRequest) (*apiv1.CancelJobResponse, error) {
	rec, ok := s.store.Get(req.GetJobId().GetValue())
	if !ok {
		return &apiv1.CancelJobResponse{Accepted: false}, nil
	}
	if terminal(rec.State()) {
		return &apiv1.CancelJobResponse{Accepted: false}, nil
	}

	rec.SignalCancel()
	rec.SetState(apiv1.JobState_JOB_STATE_CANCELLED)
	s.schedulePersist()
	return &apiv1.CancelJobResponse{Accepted: true}, nil
}

// PublishJobEvent ingests an event from an owning service. The event
// is re-stamped with the fabric's receive time. StateChanged events
// apply their transition; Completed and Failed imply Success and
// Failed. The implied transition is not re-published as a separate
// StateChanged event.
func (s *Service) PublishJobEvent(ctx context.Context, req *apiv1.PublishJobEventRequest) (*apiv1.PublishJobEventResponse, error) {
	event := req.GetEvent()
	if event == nil {
		return nil, status.Error(codes.InvalidArgument, "event is required")
	}
	if event.JobId == nil {
		return nil, status.Error(codes.InvalidArgument, "event.job_id is required")
	}
	jobID := event.JobId.GetValue()
	rec, ok := s.store.Get(jobID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "Job not found: %s", jobID)
	}
	if event.Payload == nil {
		return nil, status.Error(codes.InvalidArgument, "event.payload is required")
	}

	switch p := event.Payload.(type) {
	case *apiv1.JobEvent_StateChanged:
		rec.UpdateStateOnly(p.StateChanged.GetNewState())
	case *apiv1.JobEvent_Completed:
		rec.UpdateStateOnly(apiv1.JobState_JOB_STATE_SUCCESS)
	case *apiv1.JobEvent_Failed:
		rec.UpdateStateOnly(apiv1.JobState_JOB_STATE_FAILED)
	}

	rec.Publish(NewEvent(jobID, event.Payload))
	s.schedulePersist()
	return &apiv1.PublishJobEventResponse{Accepted: true}, nil
}

// StreamJobEvents replays the job's history (when requested) and then
// follows live events. The stream stays open across terminal events;
// it ends when the client disconnects or the daemon shuts down.
func (s *Service) StreamJobEvents(req *apiv1.StreamJobEventsRequest, stream apiv1.JobService_StreamJobEventsServer) error {
	jobID := req.GetJobId().GetValue()
	rec, ok := s.store.Get(jobID)
	if !ok {
		return status.Errorf(codes.NotFound, "Job not found: %s", jobID)
	}

	history, events, cleanup := rec.Subscribe(req.GetIncludeHistory())
	defer cleanup()

	for _, evt := range history {
		if err := stream.Send(evt); err != nil {
			return err
		}
	}

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			if err := stream.Send(evt); err != nil {
				return err
			}
		}
	}
}

func (s *Service) ListJobs(ctx context.Context, req *apiv1.ListJobsRequest) (*apiv1.ListJobsResponse, error) {
	start, pageSize, err := parsePage(req.GetPage())
	if err != nil {
		return nil, err
	}
	filter := req.GetFilter()

	jobs := s.store.Jobs()
	filtered := make([]*apiv1.Job, 0, len(jobs))
	for _, job := range jobs {
		if jobMatchesFilter(job, filter) {
			filtered = append(filtered, job)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return jobSortKey(filtered[i]) > jobSortKey(filtered[j])
	})

	lo, hi, next, err := pageWindow(len(filtered), start, pageSize)
	if err != nil {
		return nil, err
	}
	return &apiv1.ListJobsResponse{
		Jobs:     filtered[lo:hi],
		PageInfo: &apiv1.PageInfo{NextPageToken: next},
	}, nil
}

func (s *Service) ListJobHistory(ctx context.Context, req *apiv1.ListJobHistoryRequest) (*apiv1.ListJobHistoryResponse, error) {
	jobID := req.GetJobId().GetValue()
	if strings.TrimSpace(jobID) == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	rec, ok := s.store.Get(jobID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "Job not found: %s", jobID)
	}
	start, pageSize, err := parsePage(req.GetPage())
	if err != nil {
		return nil, err
	}
	filter := req.GetFilter()

	events := rec.History()
	filtered := make([]*apiv1.JobEvent, 0, len(events))
	for _, evt := range events {
		if eventMatchesFilter(evt, filter) {
			filtered = append(filtered, evt)
		}
	}

	lo, hi, next, err := pageWindow(len(filtered), start, pageSize)
	if err != nil {
		return nil, err
	}
	return &apiv1.ListJobHistoryResponse{
		Events:   filtered[lo:hi],
		PageInfo: &apiv1.PageInfo{NextPageToken: next},
	}, nil
}

// parsePage resolves pagination to a start offset and page size. The
// token is the integer offset of the next item, as issued by a prior
// response.
func parsePage(page *apiv1.Pagination) (int, int, error) {
	pageSize := int(page.GetPageSize())
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	token := strings.TrimSpace(page.GetPageToken())
	if token == "" {
		return 0, pageSize, nil
	}
	start, err := strconv.Atoi(token)
	if err != nil || start < 0 {
		return 0, 0, status.Error(codes.InvalidArgument, "invalid page_token")
	}
	return start, pageSize, nil
}

// pageWindow bounds-checks [start, start+pageSize) against total and
// returns the window plus the next-page token. An offset past a
// non-empty result set is an error; an empty set accepts any offset.
func pageWindow(total, start, pageSize int) (int, int, string, error) {
	if start >= total && total != 0 {
		return 0, 0, "", status.Error(codes.InvalidArgument, "page_token out of range")
	}
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	next := ""
	if end < total {
		next = strconv.Itoa(end)
	}
	return start, end, next, nil
}

// jobSortKey orders jobs by completion time, falling back to creation
// time for jobs still in flight.
func jobSortKey(job *apiv1.Job) int64 {
	if ts := job.GetFinishedAt(); ts != nil {
		return ts.UnixMillis
	}
	return job.GetCreatedAt().GetUnixMillis()
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func containsState(states []apiv1.JobState, want apiv1.JobState) bool {
	for _, s := range states {
		if s == want {
			return true
		}
	}
	return false
}

func jobMatchesFilter(job *apiv1.Job, filter *apiv1.JobFilter) bool {
	if filter == nil {
		return true
	}
	if len(filter.JobTypes) > 0 && !containsString(filter.JobTypes, job.GetJobType()) {
		return false
	}
	if strings.TrimSpace(filter.CorrelationId) != "" && job.GetCorrelationId() != filter.CorrelationId {
		return false
	}
	if runID := strings.TrimSpace(filter.GetRunId().GetValue()); runID != "" {
		if job.GetRunId() == nil || job.GetRunId().GetValue() != runID {
			return false
		}
	}
	if len(filter.States) > 0 && !containsState(filter.States, job.GetState()) {
		return false
	}
	if after := filter.GetCreatedAfter(); after != nil {
		if job.GetCreatedAt().GetUnixMillis() < after.UnixMillis {
			return false
		}
	}
	if before := filter.GetCreatedBefore(); before != nil {
		if job.GetCreatedAt().GetUnixMillis() > before.UnixMillis {
			return false
		}
	}
	if after := filter.GetFinishedAfter(); after != nil {
		finished := job.GetFinishedAt()
		if finished == nil || finished.UnixMillis < after.UnixMillis {
			return false
		}
	}
	if before := filter.GetFinishedBefore(); before != nil {
		finished := job.GetFinishedAt()
		if finished == nil || finished.UnixMillis > before.UnixMillis {
			return false
		}
	}
	return true
}

func eventKind(evt *apiv1.JobEvent) apiv1.JobEventKind {
	switch evt.GetPayload().(type) {
	case *apiv1.JobEvent_StateChanged:
		return apiv1.JobEventKind_JOB_EVENT_KIND_STATE_CHANGED
	case *apiv1.JobEvent_Progress:
		return apiv1.JobEventKind_JOB_EVENT_KIND_PROGRESS
	case *apiv1.JobEvent_Log:
		return apiv1.JobEventKind_JOB_EVENT_KIND_LOG
	case *apiv1.JobEvent_Completed:
		return apiv1.JobEventKind_JOB_EVENT_KIND_COMPLETED
	case *apiv1.JobEvent_Failed:
		return apiv1.JobEventKind_JOB_EVENT_KIND_FAILED
	default:
		return apiv1.JobEventKind_JOB_EVENT_KIND_UNSPECIFIED
	}
}

func containsKind(kinds []apiv1.JobEventKind, want apiv1.JobEventKind) bool {
	for _, k := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func eventMatchesFilter(evt *apiv1.JobEvent, filter *apiv1.JobHistoryFilter) bool {
	if filter == nil {
		return true
	}
	if len(filter.Kinds) > 0 && !containsKind(filter.Kinds, eventKind(evt)) {
		return false
	}
	if after := filter.GetAfter(); after != nil {
		if evt.GetAt().GetUnixMillis() < after.UnixMillis {
			return false
		}
	}
	if before := filter.GetBefore(); before != nil {
		if evt.GetAt().GetUnixMillis() > before.UnixMillis {
			return false
		}
	}
	return true
}
