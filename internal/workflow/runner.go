package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aadk-dev/aadk/internal/apierr"
	"github.com/aadk-dev/aadk/internal/publish"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// runner drives one pipeline execution. It owns the parent job's event
// discipline: exactly one terminal sequence on every exit path, and
// silence after cancellation (the job service has already published the
// Cancelled transition).
type runner struct {
	clients Clients
	req     *apiv1.WorkflowPipelineRequest
	plan    []Step

	runID       string
	correlation string
	jobID       string

	pub *publish.Publisher
	sig *publish.Signal

	// Threaded forward between steps.
	projectID    string
	apkPath      string
	artifactPath string
	childIDs     []string
}

func newRunner(clients Clients, req *apiv1.WorkflowPipelineRequest, plan []Step, runID, correlation, jobID string) *runner {
	return &runner{
		clients:     clients,
		req:         req,
		plan:        plan,
		runID:       runID,
		correlation: correlation,
		jobID:       jobID,
		pub:         publish.New(clients.Jobs, "workflow"),
		apkPath:     strings.TrimSpace(req.GetApkPath()),
		projectID:   strings.TrimSpace(req.GetProjectId().GetValue()),
	}
}

func (r *runner) run() {
	ctx := context.Background()
	r.sig = publish.Watch(ctx, r.clients.Jobs, r.jobID)

	r.pub.State(ctx, r.jobID, apiv1.JobState_JOB_STATE_RUNNING)
	r.pub.Log(ctx, r.jobID, fmt.Sprintf("workflow pipeline started (%d steps)\n", len(r.plan)))

	total := len(r.plan)
	if total == 0 {
		total = 1
	}

	for i, step := range r.plan {
		if r.cancelled(ctx) {
			r.abortCancelled(ctx)
			return
		}

		percent := uint32((i + 1) * 100 / total)
		metrics := append([]*apiv1.KeyValue{
			{Key: "pipeline_step", Value: step.Name},
			{Key: "step_index", Value: strconv.Itoa(i + 1)},
			{Key: "total_steps", Value: strconv.Itoa(total)},
			{Key: "run_id", Value: r.runID},
			{Key: "correlation_id", Value: r.correlation},
		}, step.Inputs...)
		r.pub.Progress(ctx, r.jobID, percent, step.Name, metrics)
		r.pub.Log(ctx, r.jobID, fmt.Sprintf("step %d/%d: %s\n", i+1, total, step.Name))

		detail, cancelled := r.execute(ctx, step)
		if cancelled {
			r.abortCancelled(ctx)
			return
		}
		if detail != nil {
			r.fail(ctx, detail)
			return
		}
	}

	r.finish(ctx, total)
}

func (r *runner) execute(ctx context.Context, step Step) (*apiv1.ErrorDetail, bool) {
	switch step.Name {
	case StepCreateProject:
		return r.stepCreate(ctx)
	case StepOpenProject:
		return r.stepOpen(ctx)
	case StepVerifyTool:
		return r.stepVerify(ctx)
	case StepBuild:
		return r.stepBuild(ctx)
	case StepInstallApk:
		return r.stepInstall(ctx)
	case StepLaunchApp:
		return r.stepLaunch(ctx)
	case StepSupportBundle:
		return r.stepSupportBundle(ctx)
	case StepEvidenceBundle:
		return r.stepEvidenceBundle(ctx)
	default:
		return apierr.Detail(apiv1.ErrorCode_ERROR_CODE_INTERNAL,
			"pipeline failed", "unknown step: "+step.Name, r.correlation), false
	}
}

func (r *runner) stepCreate(ctx context.Context) (*apiv1.ErrorDetail, bool) {
	resp, err := r.clients.Project.CreateProject(ctx, &apiv1.CreateProjectRequest{
		Name:           r.req.GetProjectName(),
		Path:           r.req.GetProjectPath(),
		TemplateId:     r.req.GetTemplateId(),
		ToolchainSetId: r.req.GetToolchainSetId(),
		CorrelationId:  r.correlation,
		RunId:          &apiv1.RunId{Value: r.runID},
	})
	if err != nil {
		return r.unavailable(StepCreateProject, err), false
	}
	if id := resp.GetProjectId().GetValue(); id != "" {
		r.projectID = id
	}
	return r.superviseChild(ctx, StepCreateProject, resp.GetJobId().GetValue())
}

// stepOpen is synchronous on the collaborator side: no child job is
// allocated, the project either resolves or it does not.
func (r *runner) stepOpen(ctx context.Context) (*apiv1.ErrorDetail, bool) {
	resp, err := r.clients.Project.OpenProject(ctx, &apiv1.OpenProjectRequest{
		Path: r.req.GetProjectPath(),
	})
	if err != nil {
		return r.unavailable(StepOpenProject, err), false
	}
	if id := resp.GetProject().GetProjectId().GetValue(); id != "" {
		r.projectID = id
	}
	return nil, false
}

func (r *runner) stepVerify(ctx context.Context) (*apiv1.ErrorDetail, bool) {
	resp, err := r.clients.Toolchain.VerifyToolchain(ctx, &apiv1.VerifyToolchainRequest{
		ToolchainId:   r.req.GetToolchainId(),
		CorrelationId: r.correlation,
		RunId:         &apiv1.RunId{Value: r.runID},
	})
	if err != nil {
		return r.unavailable(StepVerifyTool, err), false
	}
	return r.superviseChild(ctx, StepVerifyTool, resp.GetJobId().GetValue())
}

func (r *runner) stepBuild(ctx context.Context) (*apiv1.ErrorDetail, bool) {
	resp, err := r.clients.Build.Build(ctx, &apiv1.BuildRequest{
		ProjectId:     r.projectRef(),
		Variant:       r.req.GetBuildVariant(),
		Module:        r.req.GetModule(),
		VariantName:   r.req.GetVariantName(),
		Tasks:         r.req.GetTasks(),
		CorrelationId: r.correlation,
		RunId:         &apiv1.RunId{Value: r.runID},
	})
	if err != nil {
		return r.unavailable(StepBuild, err), false
	}
	buildJob := resp.GetJobId().GetValue()
	detail, cancelled := r.superviseChild(ctx, StepBuild, buildJob)
	if detail != nil || cancelled {
		return detail, cancelled
	}
	r.threadArtifacts(ctx, buildJob)
	return nil, false
}

func (r *runner) stepInstall(ctx context.Context) (*apiv1.ErrorDetail, bool) {
	apk := r.apkPath
	if apk == "" {
		return apierr.Detail(apiv1.ErrorCode_ERROR_CODE_FAILED_PRECONDITION,
			StepInstallApk+" failed", "no apk available: build produced no artifacts", r.correlation), false
	}
	resp, err := r.clients.Target.InstallApk(ctx, &apiv1.InstallApkRequest{
		TargetId:      r.req.GetTargetId(),
		ProjectId:     r.projectRef(),
		ApkPath:       apk,
		CorrelationId: r.correlation,
		RunId:         &apiv1.RunId{Value: r.runID},
	})
	if err != nil {
		return r.unavailable(StepInstallApk, err), false
	}
	return r.superviseChild(ctx, StepInstallApk, resp.GetJobId().GetValue())
}

func (r *runner) stepLaunch(ctx context.Context) (*apiv1.ErrorDetail, bool) {
	resp, err := r.clients.Target.Launch(ctx, &apiv1.LaunchRequest{
		TargetId:      r.req.GetTargetId(),
		ApplicationId: r.req.GetApplicationId(),
		Activity:      r.req.GetActivity(),
		CorrelationId: r.correlation,
		RunId:         &apiv1.RunId{Value: r.runID},
	})
	if err != nil {
		return r.unavailable(StepLaunchApp, err), false
	}
	return r.superviseChild(ctx, StepLaunchApp, resp.GetJobId().GetValue())
}

func (r *runner) stepSupportBundle(ctx context.Context) (*apiv1.ErrorDetail, bool) {
	resp, err := r.clients.Observe.ExportSupportBundle(ctx, &apiv1.ExportSupportBundleRequest{
		IncludeLogs:       true,
		IncludeConfig:     true,
		IncludeRecentRuns: true,
		ProjectId:         r.projectRef(),
		TargetId:          r.req.GetTargetId(),
		ToolchainSetId:    r.req.GetToolchainSetId(),
		CorrelationId:     r.correlation,
		RunId:             &apiv1.RunId{Value: r.runID},
	})
	if err != nil {
		return r.unavailable(StepSupportBundle, err), false
	}
	return r.superviseChild(ctx, StepSupportBundle, resp.GetJobId().GetValue())
}

func (r *runner) stepEvidenceBundle(ctx context.Context) (*apiv1.ErrorDetail, bool) {
	resp, err := r.clients.Observe.ExportEvidenceBundle(ctx, &apiv1.ExportEvidenceBundleRequest{
		RunId:         &apiv1.RunId{Value: r.runID},
		CorrelationId: r.correlation,
	})
	if err != nil {
		return r.unavailable(StepEvidenceBundle, err), false
	}
	return r.superviseChild(ctx, StepEvidenceBundle, resp.GetJobId().GetValue())
}

// superviseChild records the child against the run and waits for its
// terminal event. A missing child id means the collaborator completed
// synchronously.
func (r *runner) superviseChild(ctx context.Context, step, childID string) (*apiv1.ErrorDetail, bool) {
	if childID == "" {
		return nil, false
	}
	r.childIDs = append(r.childIDs, childID)
	r.upsertRun(ctx, &apiv1.UpsertRunRequest{
		RunId:  &apiv1.RunId{Value: r.runID},
		JobIds: []*apiv1.Id{{Value: childID}},
	})

	state, detail, cancelled := r.waitChild(ctx, childID)
	if cancelled {
		return nil, true
	}
	if state == apiv1.JobState_JOB_STATE_SUCCESS {
		return nil, false
	}
	if detail == nil {
		code := apiv1.ErrorCode_ERROR_CODE_INTERNAL
		if state == apiv1.JobState_JOB_STATE_CANCELLED {
			code = apiv1.ErrorCode_ERROR_CODE_CANCELLED
		}
		detail = apierr.Detail(code, step+" job failed",
			fmt.Sprintf("child job %s ended in state %v", childID, state), r.correlation)
	} else {
		detail = apierr.Detail(detail.GetCode(), step+" job failed",
			firstNonEmpty(detail.GetTechnicalDetails(), detail.GetMessage()), r.correlation)
	}
	return detail, false
}

// waitChild blocks until the child reaches a terminal event, racing the
// parent's cancellation signal. On cancellation the in-flight child is
// cancelled too. A stream that ends without a terminal falls back to a
// single GetJob.
func (r *runner) waitChild(ctx context.Context, childID string) (apiv1.JobState, *apiv1.ErrorDetail, bool) {
	type outcome struct {
		state  apiv1.JobState
		detail *apiv1.ErrorDetail
		seen   bool
	}

	streamCtx, stop := context.WithCancel(ctx)
	defer stop()

	done := make(chan outcome, 1)
	go func() {
		stream, err := r.clients.Jobs.StreamJobEvents(streamCtx, &apiv1.StreamJobEventsRequest{
			JobId:          &apiv1.Id{Value: childID},
			IncludeHistory: true,
		})
		if err != nil {
			done <- outcome{}
			return
		}
		for {
			evt, err := stream.Recv()
			if err != nil {
				done <- outcome{}
				return
			}
			if sc := evt.GetStateChanged(); sc != nil && terminalState(sc.GetNewState()) {
				done <- outcome{state: sc.GetNewState(), seen: true}
				return
			}
			if evt.GetCompleted() != nil {
				done <- outcome{state: apiv1.JobState_JOB_STATE_SUCCESS, seen: true}
				return
			}
			if failed := evt.GetFailed(); failed != nil {
				done <- outcome{state: apiv1.JobState_JOB_STATE_FAILED, detail: failed.GetError(), seen: true}
				return
			}
		}
	}()

	select {
	case <-r.sig.Done():
		if _, err := r.clients.Jobs.CancelJob(ctx, &apiv1.CancelJobRequest{JobId: &apiv1.Id{Value: childID}}); err != nil {
			logrus.Warnf("Failed to cancel child job %s: %v", childID, err)
		}
		return apiv1.JobState_JOB_STATE_CANCELLED, nil, true
	case res := <-done:
		if res.seen {
			return res.state, res.detail, false
		}
	}

	// Stream ended without a terminal; one snapshot decides.
	resp, err := r.clients.Jobs.GetJob(ctx, &apiv1.GetJobRequest{JobId: &apiv1.Id{Value: childID}})
	if err != nil {
		return apiv1.JobState_JOB_STATE_UNSPECIFIED,
			apierr.Detail(apiv1.ErrorCode_ERROR_CODE_UNAVAILABLE,
				"job service unavailable", err.Error(), r.correlation), false
	}
	return resp.GetJob().GetState(), nil, false
}

// threadArtifacts pulls the build's artifact list, registers it against
// the run, and picks the apk for a later install step. Best-effort: a
// build without artifact listing support fails nothing.
func (r *runner) threadArtifacts(ctx context.Context, buildJob string) {
	var filter *apiv1.ArtifactFilter
	if r.req.GetModule() != "" || r.req.GetVariantName() != "" {
		filter = &apiv1.ArtifactFilter{Variant: r.req.GetVariantName()}
		if r.req.GetModule() != "" {
			filter.Modules = []string{r.req.GetModule()}
		}
	}
	resp, err := r.clients.Build.ListArtifacts(ctx, &apiv1.ListArtifactsRequest{
		ProjectId: r.projectRef(),
		Variant:   r.req.GetBuildVariant(),
		Filter:    filter,
	})
	if err != nil {
		logrus.Debugf("No artifact listing for build %s: %v", buildJob, err)
		return
	}
	artifacts := resp.GetArtifacts()
	if len(artifacts) == 0 {
		return
	}

	outputs := make([]*apiv1.RunOutput, 0, len(artifacts))
	for _, art := range artifacts {
		outputs = append(outputs, &apiv1.RunOutput{
			Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT,
			OutputType: artifactOutputType(art.GetType()),
			Path:       art.GetPath(),
			Label:      art.GetName(),
			JobId:      &apiv1.Id{Value: buildJob},
			Metadata:   art.GetMetadata(),
		})
	}
	if r.clients.Observe != nil {
		_, err := r.clients.Observe.UpsertRunOutputs(ctx, &apiv1.UpsertRunOutputsRequest{
			RunId:   &apiv1.RunId{Value: r.runID},
			Outputs: outputs,
		})
		if err != nil {
			logrus.Warnf("Failed to register artifacts for run %s: %v", r.runID, err)
		}
	}

	chosen := artifacts[0]
	for _, art := range artifacts {
		if art.GetType() == apiv1.ArtifactType_ARTIFACT_TYPE_APK {
			chosen = art
			break
		}
	}
	if r.apkPath == "" {
		r.apkPath = chosen.GetPath()
	}
	r.artifactPath = chosen.GetPath()
}

func (r *runner) finish(ctx context.Context, total int) {
	r.upsertRun(ctx, &apiv1.UpsertRunRequest{
		RunId:      &apiv1.RunId{Value: r.runID},
		Result:     "success",
		FinishedAt: nowTS(),
		Summary: []*apiv1.KeyValue{
			{Key: "pipeline", Value: "complete"},
			{Key: "steps", Value: strconv.Itoa(total)},
		},
	})

	outputs := []*apiv1.KeyValue{
		{Key: "run_id", Value: r.runID},
		{Key: "correlation_id", Value: r.correlation},
	}
	if r.projectID != "" {
		outputs = append(outputs, &apiv1.KeyValue{Key: "project_id", Value: r.projectID})
	}
	if r.artifactPath != "" {
		outputs = append(outputs, &apiv1.KeyValue{Key: "artifact_path", Value: r.artifactPath})
	}
	r.pub.Completed(ctx, r.jobID, "Workflow pipeline completed", outputs)
}

func (r *runner) fail(ctx context.Context, detail *apiv1.ErrorDetail) {
	if err := r.pub.Failed(ctx, r.jobID, detail); err != nil {
		logrus.Warnf("Failed to publish pipeline failure for %s: %v", r.jobID, err)
	}
	r.upsertRun(ctx, &apiv1.UpsertRunRequest{
		RunId:      &apiv1.RunId{Value: r.runID},
		Result:     "failed",
		FinishedAt: nowTS(),
		Summary: []*apiv1.KeyValue{
			{Key: "error", Value: detail.GetMessage()},
			{Key: "detail", Value: detail.GetTechnicalDetails()},
		},
	})
}

// abortCancelled closes the run and exits without a terminal event; the
// job service published the Cancelled transition when the cancel was
// accepted.
func (r *runner) abortCancelled(ctx context.Context) {
	r.upsertRun(ctx, &apiv1.UpsertRunRequest{
		RunId:      &apiv1.RunId{Value: r.runID},
		Result:     "cancelled",
		FinishedAt: nowTS(),
	})
}

func (r *runner) cancelled(ctx context.Context) bool {
	return r.sig.Cancelled() || publish.IsCancelled(ctx, r.clients.Jobs, r.jobID)
}

func (r *runner) upsertRun(ctx context.Context, req *apiv1.UpsertRunRequest) {
	if r.clients.Observe == nil {
		return
	}
	if _, err := r.clients.Observe.UpsertRun(ctx, req); err != nil {
		logrus.Warnf("Failed to upsert run %s: %v", r.runID, err)
	}
}

func (r *runner) projectRef() *apiv1.Id {
	if r.projectID == "" {
		return nil
	}
	return &apiv1.Id{Value: r.projectID}
}

func (r *runner) unavailable(step string, err error) *apiv1.ErrorDetail {
	return apierr.Detail(apiv1.ErrorCode_ERROR_CODE_UNAVAILABLE,
		step+" failed", err.Error(), r.correlation)
}

func artifactOutputType(t apiv1.ArtifactType) string {
	switch t {
	case apiv1.ArtifactType_ARTIFACT_TYPE_APK:
		return "apk"
	case apiv1.ArtifactType_ARTIFACT_TYPE_AAB:
		return "aab"
	case apiv1.ArtifactType_ARTIFACT_TYPE_AAR:
		return "aar"
	case apiv1.ArtifactType_ARTIFACT_TYPE_MAPPING:
		return "mapping"
	case apiv1.ArtifactType_ARTIFACT_TYPE_TEST_RESULT:
		return "test_result"
	default:
		return "artifact"
	}
}

func terminalState(state apiv1.JobState) bool {
	switch state {
	case apiv1.JobState_JOB_STATE_SUCCESS,
		apiv1.JobState_JOB_STATE_FAILED,
		apiv1.JobState_JOB_STATE_CANCELLED:
		return true
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nowTS() *apiv1.Timestamp {
	return &apiv1.Timestamp{UnixMillis: time.Now().UnixMilli()}
}
