// Package workflow runs cross-service pipelines as a single observable
// parent job bound to one run record. The orchestrator plans the step
// list from the request, then drives each step's collaborator service,
// waiting on the child job's terminal event before advancing.
package workflow

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aadk-dev/aadk/internal/ids"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Clients bundles the orchestrator's downstream connections. Jobs is
// required; the rest are needed only for the steps that call them.
type Clients struct {
	Jobs      apiv1.JobServiceClient
	Observe   apiv1.ObserveServiceClient
	Project   apiv1.ProjectServiceClient
	Build     apiv1.BuildServiceClient
	Target    apiv1.TargetServiceClient
	Toolchain apiv1.ToolchainServiceClient
}

// Service implements the WorkflowService RPC surface.
type Service struct {
	apiv1.UnimplementedWorkflowServiceServer

	clients Clients
}

// NewService creates the workflow orchestrator over the given
// downstream clients.
func NewService(clients Clients) *Service {
	return &Service{clients: clients}
}

// RunPipeline plans the pipeline, allocates the parent job and run, and
// returns their identifiers. The pipeline itself continues on a
// background goroutine under the returned job id.
func (s *Service) RunPipeline(ctx context.Context, req *apiv1.WorkflowPipelineRequest) (*apiv1.WorkflowPipelineResponse, error) {
	plan, err := Plan(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

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
		resp, err := s.clients.Jobs.StartJob(ctx, &apiv1.StartJobRequest{
			JobType:        "workflow.pipeline",
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
	if jobID == "" {
		return nil, status.Error(codes.Internal, "pipeline job_id is empty")
	}

	if s.clients.Observe != nil {
		_, err := s.clients.Observe.UpsertRun(ctx, &apiv1.UpsertRunRequest{
			RunId:          &apiv1.RunId{Value: runID},
			CorrelationId:  correlation,
			ProjectId:      req.GetProjectId(),
			TargetId:       req.GetTargetId(),
			ToolchainSetId: req.GetToolchainSetId(),
			JobIds:         []*apiv1.Id{{Value: jobID}},
			Result:         "running",
		})
		if err != nil {
			logrus.Warnf("Failed to register run %s with observe: %v", runID, err)
		}
	}

	go newRunner(s.clients, req, plan, runID, correlation, jobID).run()

	return &apiv1.WorkflowPipelineResponse{
		RunId:     &apiv1.RunId{Value: runID},
		JobId:     &apiv1.Id{Value: jobID},
		ProjectId: req.GetProjectId(),
		Outputs:   []*apiv1.KeyValue{{Key: "correlation_id", Value: correlation}},
	}, nil
}
