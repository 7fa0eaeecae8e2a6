package observe

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aadk-dev/aadk/internal/config"
	"github.com/aadk-dev/aadk/internal/ids"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

const (
	defaultPageSize = 25
	maxPageSize     = 200
)

// Service implements the ObserveService RPC surface: the run registry
// plus the bundle exporters. Export jobs run against the job service
// like any other worker's, so their progress is observable over the
// same event stream.
type Service struct {
	apiv1.UnimplementedObserveServiceServer

	store   *Store
	cfg     *config.Config
	jobs    apiv1.JobServiceClient
	sweeper *Sweeper
}

// NewService creates the observe service. jobs is a connection to the
// job service used for export jobs and for log reconstruction.
func NewService(store *Store, cfg *config.Config, jobs apiv1.JobServiceClient) *Service {
	return &Service{
		store:   store,
		cfg:     cfg,
		jobs:    jobs,
		sweeper: NewSweeper(cfg),
	}
}

// Store exposes the underlying registry.
func (s *Service) Store() *Store {
	return s.store
}

// Sweeper exposes the retention sweeper so the daemon can schedule it.
func (s *Service) Sweeper() *Sweeper {
	return s.sweeper
}

func (s *Service) UpsertRun(ctx context.Context, req *apiv1.UpsertRunRequest) (*apiv1.UpsertRunResponse, error) {
	if strings.TrimSpace(req.GetRunId().GetValue()) == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}
	run := s.store.UpsertRun(req)
	return &apiv1.UpsertRunResponse{Run: run}, nil
}

func (s *Service) ListRuns(ctx context.Context, req *apiv1.ListRunsRequest) (*apiv1.ListRunsResponse, error) {
	start, pageSize, err := parsePage(req.GetPage())
	if err != nil {
		return nil, err
	}
	filter := req.GetFilter()

	runs := s.store.Runs()
	filtered := make([]*apiv1.RunRecord, 0, len(runs))
	for _, run := range runs {
		if runMatchesFilter(run, filter) {
			filtered = append(filtered, run)
		}
	}

	lo, hi, next, err := pageWindow(len(filtered), start, pageSize)
	if err != nil {
		return nil, err
	}
	return &apiv1.ListRunsResponse{
		Runs:     filtered[lo:hi],
		PageInfo: &apiv1.PageInfo{NextPageToken: next},
	}, nil
}

func (s *Service) UpsertRunOutputs(ctx context.Context, req *apiv1.UpsertRunOutputsRequest) (*apiv1.UpsertRunOutputsResponse, error) {
	runID := strings.TrimSpace(req.GetRunId().GetValue())
	if runID == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}
	for _, out := range req.GetOutputs() {
		if outRun := strings.TrimSpace(out.GetRunId().GetValue()); outRun != "" && outRun != runID {
			return nil, status.Errorf(codes.InvalidArgument,
				"output run_id %q does not match request run_id %q", outRun, runID)
		}
		if strings.TrimSpace(out.GetPath()) == "" {
			return nil, status.Error(codes.InvalidArgument, "output path is required")
		}
	}

	summary := s.store.UpsertOutputs(runID, req.GetOutputs())
	return &apiv1.UpsertRunOutputsResponse{Summary: summary}, nil
}

func (s *Service) ListRunOutputs(ctx context.Context, req *apiv1.ListRunOutputsRequest) (*apiv1.ListRunOutputsResponse, error) {
	runID := strings.TrimSpace(req.GetRunId().GetValue())
	if runID == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}
	start, pageSize, err := parsePage(req.GetPage())
	if err != nil {
		return nil, err
	}
	filter := req.GetFilter()

	outputs := s.store.Outputs(runID)
	filtered := outputs[:0]
	for _, out := range outputs {
		if outputMatchesFilter(out, filter) {
			filtered = append(filtered, out)
		}
	}

	lo, hi, next, err := pageWindow(len(filtered), start, pageSize)
	if err != nil {
		return nil, err
	}
	return &apiv1.ListRunOutputsResponse{
		Outputs:  filtered[lo:hi],
		Summary:  s.store.Summary(runID),
		PageInfo: &apiv1.PageInfo{NextPageToken: next},
	}, nil
}

// ExportSupportBundle starts an asynchronous support bundle export and
// returns the job driving it plus the deterministic archive path. The
// run the bundle is scoped to is created (result "running") before the
// call returns, so the caller can immediately subscribe.
func (s *Service) ExportSupportBundle(ctx context.Context, req *apiv1.ExportSupportBundleRequest) (*apiv1.ExportSupportBundleResponse, error) {
	runID := strings.TrimSpace(req.GetRunId().GetValue())
	if runID == "" {
		runID = ids.NewRunID()
	}
	correlation := strings.TrimSpace(req.GetCorrelationId())
	if correlation == "" {
		correlation = runID
	}

	jobID := strings.TrimSpace(req.GetJobId().GetValue())
	if jobID == "" {
		resp, err := s.jobs.StartJob(ctx, &apiv1.StartJobRequest{
			JobType:        "observe.support_bundle",
			ProjectId:      req.GetProjectId(),
			TargetId:       req.GetTargetId(),
			ToolchainSetId: req.GetToolchainSetId(),
			CorrelationId:  correlation,
			RunId:          &apiv1.RunId{Value: runID},
		})
		if err != nil {
			return nil, status.Errorf(codes.Unavailable, "job service unavailable: %v", err)
		}
		jobID = resp.GetJob().GetJobId().GetValue()
	}

	s.store.UpsertRun(&apiv1.UpsertRunRequest{
		RunId:          &apiv1.RunId{Value: runID},
		CorrelationId:  correlation,
		ProjectId:      req.GetProjectId(),
		TargetId:       req.GetTargetId(),
		ToolchainSetId: req.GetToolchainSetId(),
		JobIds:         []*apiv1.Id{{Value: jobID}},
		Result:         "running",
	})

	relPath := supportBundlePath(runID)
	go s.runSupportExport(req, runID, correlation, jobID, relPath)

	return &apiv1.ExportSupportBundleResponse{
		JobId:      &apiv1.Id{Value: jobID},
		OutputPath: relPath,
	}, nil
}

// ExportEvidenceBundle archives a single run's record for sharing. The
// run is located by run id, falling back to a correlation id scan.
func (s *Service) ExportEvidenceBundle(ctx context.Context, req *apiv1.ExportEvidenceBundleRequest) (*apiv1.ExportEvidenceBundleResponse, error) {
	runID := strings.TrimSpace(req.GetRunId().GetValue())
	correlation := strings.TrimSpace(req.GetCorrelationId())

	run, ok := s.lookupRun(runID, correlation)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "run not found: %s", firstNonEmpty(runID, correlation))
	}
	runID = run.GetRunId().GetValue()
	if correlation == "" {
		correlation = runID
	}

	jobID := strings.TrimSpace(req.GetJobId().GetValue())
	if jobID == "" {
		resp, err := s.jobs.StartJob(ctx, &apiv1.StartJobRequest{
			JobType:       "observe.evidence_bundle",
			CorrelationId: correlation,
			RunId:         &apiv1.RunId{Value: runID},
		})
		if err != nil {
			return nil, status.Errorf(codes.Unavailable, "job service unavailable: %v", err)
		}
		jobID = resp.GetJob().GetJobId().GetValue()
	}

	s.store.UpsertRun(&apiv1.UpsertRunRequest{
		RunId:  &apiv1.RunId{Value: runID},
		JobIds: []*apiv1.Id{{Value: jobID}},
	})

	relPath := evidenceBundlePath(runID)
	go s.runEvidenceExport(runID, correlation, jobID, relPath)

	return &apiv1.ExportEvidenceBundleResponse{
		JobId:      &apiv1.Id{Value: jobID},
		OutputPath: relPath,
	}, nil
}

// ReloadState re-reads the persisted registry from disk, replacing the
// in-memory state. Used for recovery and tests.
func (s *Service) ReloadState(ctx context.Context, req *apiv1.ReloadStateRequest) (*apiv1.ReloadStateResponse, error) {
	count, err := s.store.Reload()
	if err != nil {
		return &apiv1.ReloadStateResponse{Ok: false, Detail: err.Error()}, nil
	}
	return &apiv1.ReloadStateResponse{
		Ok:        true,
		ItemCount: uint32(count),
		Detail:    fmt.Sprintf("loaded %d run(s)", count),
	}, nil
}

func (s *Service) lookupRun(runID, correlation string) (*apiv1.RunRecord, bool) {
	if runID != "" {
		if run, ok := s.store.Run(runID); ok {
			return run, true
		}
	}
	if correlation != "" {
		if run, ok := s.store.RunByCorrelation(correlation); ok {
			return run, true
		}
	}
	return nil, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func runMatchesFilter(run *apiv1.RunRecord, filter *apiv1.RunFilter) bool {
	if filter == nil {
		return true
	}
	if want := strings.TrimSpace(filter.GetRunId().GetValue()); want != "" && run.GetRunId().GetValue() != want {
		return false
	}
	if want := strings.TrimSpace(filter.GetCorrelationId()); want != "" && run.GetCorrelationId() != want {
		return false
	}
	if want := filter.GetProjectId().GetValue(); want != "" && run.GetProjectId().GetValue() != want {
		return false
	}
	if want := filter.GetTargetId().GetValue(); want != "" && run.GetTargetId().GetValue() != want {
		return false
	}
	if want := filter.GetToolchainSetId().GetValue(); want != "" && run.GetToolchainSetId().GetValue() != want {
		return false
	}
	if want := strings.TrimSpace(filter.GetResult()); want != "" && run.GetResult() != want {
		return false
	}
	return true
}

func outputMatchesFilter(out *apiv1.RunOutput, filter *apiv1.RunOutputFilter) bool {
	if filter == nil {
		return true
	}
	if want := filter.GetKind(); want != apiv1.RunOutputKind_RUN_OUTPUT_KIND_UNSPECIFIED && out.GetKind() != want {
		return false
	}
	if want := strings.TrimSpace(filter.GetOutputType()); want != "" && out.GetOutputType() != want {
		return false
	}
	if want := filter.GetPathContains(); want != "" && !strings.Contains(out.GetPath(), want) {
		return false
	}
	if want := filter.GetLabelContains(); want != "" && !strings.Contains(out.GetLabel(), want) {
		return false
	}
	return true
}

// Bundle archive names are derived from the run id, so re-exporting the
// same run overwrites the previous archive rather than accumulating.

func supportBundlePath(runID string) string {
	return path.Join("bundles", "support-"+runID+".zip")
}

func evidenceBundlePath(runID string) string {
	return path.Join("bundles", "evidence-"+runID+".zip")
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
