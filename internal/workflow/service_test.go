package workflow

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/aadk-dev/aadk/internal/apierr"
	"github.com/aadk-dev/aadk/internal/config"
	"github.com/aadk-dev/aadk/internal/jobs"
	"github.com/aadk-dev/aadk/internal/observe"
	"github.com/aadk-dev/aadk/internal/publish"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// childRunner starts child jobs for the fake collaborators and drives
// them to the configured terminal.
type childRunner struct {
	t    *testing.T
	jobs apiv1.JobServiceClient

	mu       sync.Mutex
	childIDs []string
	fail     bool
	hold     bool
}

func (c *childRunner) start(jobType, correlation string, runID *apiv1.RunId) *apiv1.Id {
	resp, err := c.jobs.StartJob(context.Background(), &apiv1.StartJobRequest{
		JobType:       jobType,
		CorrelationId: correlation,
		RunId:         runID,
	})
	require.NoError(c.t, err)
	childID := resp.GetJob().GetJobId().GetValue()

	c.mu.Lock()
	c.childIDs = append(c.childIDs, childID)
	fail, hold := c.fail, c.hold
	c.mu.Unlock()

	go func() {
		ctx := context.Background()
		pub := publish.New(c.jobs, "test")
		pub.State(ctx, childID, apiv1.JobState_JOB_STATE_RUNNING)
		if hold {
			return
		}
		if fail {
			pub.Failed(ctx, childID, apierr.Detail(
				apiv1.ErrorCode_ERROR_CODE_INTERNAL, "collaborator failed", "boom", correlation))
			return
		}
		pub.Completed(ctx, childID, "done", nil)
	}()

	return &apiv1.Id{Value: childID}
}

func (c *childRunner) children() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.childIDs...)
}

func (c *childRunner) setFail() {
	c.mu.Lock()
	c.fail = true
	c.mu.Unlock()
}

func (c *childRunner) setHold() {
	c.mu.Lock()
	c.hold = true
	c.mu.Unlock()
}

type fakeProject struct {
	apiv1.UnimplementedProjectServiceServer
	runner *childRunner
}

func (f *fakeProject) CreateProject(ctx context.Context, req *apiv1.CreateProjectRequest) (*apiv1.CreateProjectResponse, error) {
	return &apiv1.CreateProjectResponse{
		ProjectId: &apiv1.Id{Value: "p-created"},
		JobId:     f.runner.start("project.create", req.GetCorrelationId(), req.GetRunId()),
	}, nil
}

func (f *fakeProject) OpenProject(ctx context.Context, req *apiv1.OpenProjectRequest) (*apiv1.OpenProjectResponse, error) {
	return &apiv1.OpenProjectResponse{
		Project: &apiv1.Project{ProjectId: &apiv1.Id{Value: "p-opened"}, Path: req.GetPath()},
	}, nil
}

type fakeBuild struct {
	apiv1.UnimplementedBuildServiceServer
	runner *childRunner

	mu        sync.Mutex
	artifacts []*apiv1.Artifact
	lastBuild *apiv1.BuildRequest
}

func (f *fakeBuild) Build(ctx context.Context, req *apiv1.BuildRequest) (*apiv1.BuildResponse, error) {
	f.mu.Lock()
	f.lastBuild = req
	f.mu.Unlock()
	return &apiv1.BuildResponse{
		JobId: f.runner.start("build.run", req.GetCorrelationId(), req.GetRunId()),
	}, nil
}

func (f *fakeBuild) ListArtifacts(ctx context.Context, req *apiv1.ListArtifactsRequest) (*apiv1.ListArtifactsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &apiv1.ListArtifactsResponse{Artifacts: f.artifacts}, nil
}

type fakeTarget struct {
	apiv1.UnimplementedTargetServiceServer
	runner *childRunner
}

func (f *fakeTarget) InstallApk(ctx context.Context, req *apiv1.InstallApkRequest) (*apiv1.InstallApkResponse, error) {
	return &apiv1.InstallApkResponse{
		JobId: f.runner.start("targets.install", req.GetCorrelationId(), req.GetRunId()),
	}, nil
}

func (f *fakeTarget) Launch(ctx context.Context, req *apiv1.LaunchRequest) (*apiv1.LaunchResponse, error) {
	return &apiv1.LaunchResponse{
		JobId: f.runner.start("targets.launch", req.GetCorrelationId(), req.GetRunId()),
	}, nil
}

type fakeToolchain struct {
	apiv1.UnimplementedToolchainServiceServer
	runner *childRunner
}

func (f *fakeToolchain) VerifyToolchain(ctx context.Context, req *apiv1.VerifyToolchainRequest) (*apiv1.VerifyToolchainResponse, error) {
	return &apiv1.VerifyToolchainResponse{
		JobId: f.runner.start("toolchain.verify", req.GetCorrelationId(), req.GetRunId()),
	}, nil
}

type fixture struct {
	workflow apiv1.WorkflowServiceClient
	jobs     apiv1.JobServiceClient
	observe  apiv1.ObserveServiceClient

	project   *childRunner
	build     *fakeBuild
	target    *childRunner
	toolchain *childRunner
}

// startPipelineServer hosts the real job, observe, and workflow
// services next to fake collaborators on one loopback listener.
func startPipelineServer(t *testing.T) *fixture {
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

	jobsClient := apiv1.NewJobServiceClient(conn)

	projectRunner := &childRunner{t: t, jobs: jobsClient}
	buildRunner := &childRunner{t: t, jobs: jobsClient}
	targetRunner := &childRunner{t: t, jobs: jobsClient}
	toolchainRunner := &childRunner{t: t, jobs: jobsClient}

	build := &fakeBuild{runner: buildRunner}

	clients := Clients{
		Jobs:      jobsClient,
		Observe:   apiv1.NewObserveServiceClient(conn),
		Project:   apiv1.NewProjectServiceClient(conn),
		Build:     apiv1.NewBuildServiceClient(conn),
		Target:    apiv1.NewTargetServiceClient(conn),
		Toolchain: apiv1.NewToolchainServiceClient(conn),
	}

	server := grpc.NewServer()
	apiv1.RegisterJobServiceServer(server, jobs.NewService(jobs.NewStore(), nil))
	apiv1.RegisterObserveServiceServer(server,
		observe.NewService(observe.NewStore(cfg.StateFile(observe.StateFileName)), cfg, jobsClient))
	apiv1.RegisterWorkflowServiceServer(server, NewService(clients))
	apiv1.RegisterProjectServiceServer(server, &fakeProject{runner: projectRunner})
	apiv1.RegisterBuildServiceServer(server, build)
	apiv1.RegisterTargetServiceServer(server, &fakeTarget{runner: targetRunner})
	apiv1.RegisterToolchainServiceServer(server, &fakeToolchain{runner: toolchainRunner})
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	return &fixture{
		workflow:  apiv1.NewWorkflowServiceClient(conn),
		jobs:      jobsClient,
		observe:   apiv1.NewObserveServiceClient(conn),
		project:   projectRunner,
		build:     build,
		target:    targetRunner,
		toolchain: toolchainRunner,
	}
}

func waitState(t *testing.T, client apiv1.JobServiceClient, jobID string, want apiv1.JobState) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.GetJob(context.Background(), &apiv1.GetJobRequest{JobId: &apiv1.Id{Value: jobID}})
		require.NoError(t, err)
		if resp.GetJob().GetState() == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("job %s never reached %v", jobID, want)
}

func getRun(t *testing.T, client apiv1.ObserveServiceClient, runID string) *apiv1.RunRecord {
	t.Helper()
	resp, err := client.ListRuns(context.Background(), &apiv1.ListRunsRequest{
		Filter: &apiv1.RunFilter{RunId: &apiv1.RunId{Value: runID}},
	})
	require.NoError(t, err)
	require.Len(t, resp.GetRuns(), 1)
	return resp.GetRuns()[0]
}

func kv(kvs []*apiv1.KeyValue, key string) string {
	for _, pair := range kvs {
		if pair.GetKey() == key {
			return pair.GetValue()
		}
	}
	return ""
}

func TestRunPipelineInference(t *testing.T) {
	fx := startPipelineServer(t)
	ctx := context.Background()

	fx.build.mu.Lock()
	fx.build.artifacts = []*apiv1.Artifact{{
		Path: "/build/app.apk",
		Name: "app",
		Type: apiv1.ArtifactType_ARTIFACT_TYPE_APK,
	}}
	fx.build.mu.Unlock()

	resp, err := fx.workflow.RunPipeline(ctx, &apiv1.WorkflowPipelineRequest{
		ProjectPath:   "/p",
		TemplateId:    &apiv1.Id{Value: "T"},
		ToolchainId:   &apiv1.Id{Value: "tc-1"},
		ApkPath:       "/build/app.apk",
		ApplicationId: "com.x",
		Activity:      ".Main",
		RunId:         &apiv1.RunId{Value: "run-w"},
	})
	require.NoError(t, err)
	assert.Equal(t, "run-w", resp.GetRunId().GetValue())
	assert.Equal(t, "run-w", kv(resp.GetOutputs(), "correlation_id"))
	parent := resp.GetJobId().GetValue()
	require.NotEmpty(t, parent)

	waitState(t, fx.jobs, parent, apiv1.JobState_JOB_STATE_SUCCESS)

	// Replay the parent history: five Progress events at 20/40/60/80/100
	// phased by step name, then the completion summary.
	stream, err := fx.jobs.StreamJobEvents(ctx, &apiv1.StreamJobEventsRequest{
		JobId:          &apiv1.Id{Value: parent},
		IncludeHistory: true,
	})
	require.NoError(t, err)

	var percents []uint32
	var phases []string
	var completed *apiv1.JobCompleted
	for completed == nil {
		evt, err := stream.Recv()
		require.NoError(t, err)
		if p := evt.GetProgress(); p != nil {
			percents = append(percents, p.GetProgress().GetPercent())
			phases = append(phases, p.GetProgress().GetPhase())
		}
		if c := evt.GetCompleted(); c != nil {
			completed = c
		}
	}

	assert.Equal(t, []uint32{20, 40, 60, 80, 100}, percents)
	assert.Equal(t, []string{
		StepCreateProject, StepVerifyTool, StepBuild, StepInstallApk, StepLaunchApp,
	}, phases)
	assert.Equal(t, "Workflow pipeline completed", completed.GetSummary())
	assert.Equal(t, "run-w", kv(completed.GetOutputs(), "run_id"))
	assert.Equal(t, "p-created", kv(completed.GetOutputs(), "project_id"))
	assert.Equal(t, "/build/app.apk", kv(completed.GetOutputs(), "artifact_path"))

	// The run groups the parent and all five children.
	run := getRun(t, fx.observe, "run-w")
	assert.Equal(t, "success", run.GetResult())
	assert.NotNil(t, run.GetFinishedAt())
	assert.Len(t, run.GetJobIds(), 6)
	assert.Equal(t, parent, run.GetJobIds()[0].GetValue())
	assert.Equal(t, "complete", kv(run.GetSummary(), "pipeline"))

	// Build artifacts were registered against the run, and the created
	// project id was threaded into the build request.
	outputs, err := fx.observe.ListRunOutputs(ctx, &apiv1.ListRunOutputsRequest{
		RunId: &apiv1.RunId{Value: "run-w"},
	})
	require.NoError(t, err)
	require.Len(t, outputs.GetOutputs(), 1)
	assert.Equal(t, "apk", outputs.GetOutputs()[0].GetOutputType())
	assert.Equal(t, "/build/app.apk", outputs.GetOutputs()[0].GetPath())

	fx.build.mu.Lock()
	builtProject := fx.build.lastBuild.GetProjectId().GetValue()
	fx.build.mu.Unlock()
	assert.Equal(t, "p-created", builtProject)
}

func TestRunPipelineEmptyPlanCompletes(t *testing.T) {
	fx := startPipelineServer(t)

	resp, err := fx.workflow.RunPipeline(context.Background(), &apiv1.WorkflowPipelineRequest{})
	require.NoError(t, err)
	runID := resp.GetRunId().GetValue()
	assert.Contains(t, runID, "run-")
	assert.Equal(t, runID, kv(resp.GetOutputs(), "correlation_id"))

	waitState(t, fx.jobs, resp.GetJobId().GetValue(), apiv1.JobState_JOB_STATE_SUCCESS)
	assert.Equal(t, "success", getRun(t, fx.observe, runID).GetResult())
}

func TestRunPipelineExplicitMissingInput(t *testing.T) {
	fx := startPipelineServer(t)

	_, err := fx.workflow.RunPipeline(context.Background(), &apiv1.WorkflowPipelineRequest{
		Options: &apiv1.PipelineOptions{InstallApk: true},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "targets.install requires apk_path", status.Convert(err).Message())
}

func TestRunPipelineChildFailure(t *testing.T) {
	fx := startPipelineServer(t)
	fx.toolchain.setFail()

	resp, err := fx.workflow.RunPipeline(context.Background(), &apiv1.WorkflowPipelineRequest{
		ToolchainId: &apiv1.Id{Value: "tc-1"},
		RunId:       &apiv1.RunId{Value: "run-f"},
	})
	require.NoError(t, err)

	waitState(t, fx.jobs, resp.GetJobId().GetValue(), apiv1.JobState_JOB_STATE_FAILED)

	run := getRun(t, fx.observe, "run-f")
	assert.Equal(t, "failed", run.GetResult())
	assert.Equal(t, "toolchain.verify job failed", kv(run.GetSummary(), "error"))
	assert.Equal(t, "boom", kv(run.GetSummary(), "detail"))
}

func TestRunPipelineCancellationPropagates(t *testing.T) {
	fx := startPipelineServer(t)
	fx.target.setHold()
	ctx := context.Background()

	resp, err := fx.workflow.RunPipeline(ctx, &apiv1.WorkflowPipelineRequest{
		ApkPath: "/build/app.apk",
		RunId:   &apiv1.RunId{Value: "run-c"},
	})
	require.NoError(t, err)
	parent := resp.GetJobId().GetValue()

	// Wait for the install child to be in flight, then cancel the
	// parent.
	deadline := time.Now().Add(5 * time.Second)
	for len(fx.target.children()) == 0 {
		require.True(t, time.Now().Before(deadline), "install child never started")
		time.Sleep(10 * time.Millisecond)
	}
	cancel, err := fx.jobs.CancelJob(ctx, &apiv1.CancelJobRequest{JobId: &apiv1.Id{Value: parent}})
	require.NoError(t, err)
	require.True(t, cancel.GetAccepted())

	child := fx.target.children()[0]
	waitState(t, fx.jobs, child, apiv1.JobState_JOB_STATE_CANCELLED)

	deadline = time.Now().Add(5 * time.Second)
	for getRun(t, fx.observe, "run-c").GetResult() != "cancelled" {
		require.True(t, time.Now().Before(deadline), "run never settled as cancelled")
		time.Sleep(20 * time.Millisecond)
	}

	// The parent stays Cancelled; the runner publishes no terminal of
	// its own.
	job, err := fx.jobs.GetJob(ctx, &apiv1.GetJobRequest{JobId: &apiv1.Id{Value: parent}})
	require.NoError(t, err)
	assert.Equal(t, apiv1.JobState_JOB_STATE_CANCELLED, job.GetJob().GetState())
}
