package workflow

import (
	"fmt"
	"strings"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Pipeline step names. They double as the progress phase and the
// pipeline_step metric, and match the job type of the child they drive
// where one exists.
const (
	StepCreateProject  = "project.create"
	StepOpenProject    = "project.open"
	StepVerifyTool     = "toolchain.verify"
	StepBuild          = "build.run"
	StepInstallApk     = "targets.install"
	StepLaunchApp      = "targets.launch"
	StepSupportBundle  = "observe.support_bundle"
	StepEvidenceBundle = "observe.evidence_bundle"
)

// Step is one planned pipeline stage. Inputs carries the request fields
// the step consumes, for progress metrics.
type Step struct {
	Name   string
	Inputs []*apiv1.KeyValue
}

// Plan resolves the step list for a pipeline request. With no options
// the steps are inferred from which inputs are present; with options
// exactly the requested steps run and a missing input is an error, not
// a skip.
//
// Inference rules: a template id means create; a project path without a
// project id or template means open (a freshly created project needs no
// separate open); a toolchain id means verify; any project reference
// means build; an apk path means install; an application id means
// launch. Bundle exports are never inferred.
func Plan(req *apiv1.WorkflowPipelineRequest) ([]Step, error) {
	if req.GetOptions() != nil {
		return planExplicit(req)
	}
	return planInferred(req), nil
}

func planInferred(req *apiv1.WorkflowPipelineRequest) []Step {
	var steps []Step

	templateID := strings.TrimSpace(req.GetTemplateId().GetValue())
	projectID := strings.TrimSpace(req.GetProjectId().GetValue())
	projectPath := strings.TrimSpace(req.GetProjectPath())

	if templateID != "" {
		steps = append(steps, createStep(req))
	}
	if projectPath != "" && projectID == "" && templateID == "" {
		steps = append(steps, openStep(req))
	}
	if strings.TrimSpace(req.GetToolchainId().GetValue()) != "" {
		steps = append(steps, verifyStep(req))
	}
	if projectID != "" || projectPath != "" {
		steps = append(steps, buildStep(req))
	}
	if strings.TrimSpace(req.GetApkPath()) != "" {
		steps = append(steps, installStep(req))
	}
	if strings.TrimSpace(req.GetApplicationId()) != "" {
		steps = append(steps, launchStep(req))
	}
	return steps
}

func planExplicit(req *apiv1.WorkflowPipelineRequest) ([]Step, error) {
	opts := req.GetOptions()
	var steps []Step

	if opts.GetCreateProject() {
		if strings.TrimSpace(req.GetTemplateId().GetValue()) == "" {
			return nil, fmt.Errorf("%s requires template_id", StepCreateProject)
		}
		if strings.TrimSpace(req.GetProjectPath()) == "" {
			return nil, fmt.Errorf("%s requires project_path", StepCreateProject)
		}
		steps = append(steps, createStep(req))
	}
	if opts.GetOpenProject() {
		if strings.TrimSpace(req.GetProjectPath()) == "" {
			return nil, fmt.Errorf("%s requires project_path", StepOpenProject)
		}
		steps = append(steps, openStep(req))
	}
	if opts.GetVerifyToolchain() {
		if strings.TrimSpace(req.GetToolchainId().GetValue()) == "" {
			return nil, fmt.Errorf("%s requires toolchain_id", StepVerifyTool)
		}
		steps = append(steps, verifyStep(req))
	}
	buildPlanned := opts.GetBuild()
	if buildPlanned {
		if strings.TrimSpace(req.GetProjectId().GetValue()) == "" &&
			strings.TrimSpace(req.GetProjectPath()) == "" &&
			!opts.GetCreateProject() {
			return nil, fmt.Errorf("%s requires a project reference", StepBuild)
		}
		steps = append(steps, buildStep(req))
	}
	if opts.GetInstallApk() {
		// A build earlier in the plan supplies the apk through artifact
		// threading.
		if strings.TrimSpace(req.GetApkPath()) == "" && !buildPlanned {
			return nil, fmt.Errorf("%s requires apk_path", StepInstallApk)
		}
		steps = append(steps, installStep(req))
	}
	if opts.GetLaunchApp() {
		if strings.TrimSpace(req.GetApplicationId()) == "" {
			return nil, fmt.Errorf("%s requires application_id", StepLaunchApp)
		}
		steps = append(steps, launchStep(req))
	}
	if opts.GetExportSupportBundle() {
		steps = append(steps, Step{Name: StepSupportBundle})
	}
	if opts.GetExportEvidenceBundle() {
		steps = append(steps, Step{Name: StepEvidenceBundle})
	}
	return steps, nil
}

func createStep(req *apiv1.WorkflowPipelineRequest) Step {
	return Step{Name: StepCreateProject, Inputs: inputs(
		"template_id", req.GetTemplateId().GetValue(),
		"project_path", req.GetProjectPath(),
		"project_name", req.GetProjectName(),
	)}
}

func openStep(req *apiv1.WorkflowPipelineRequest) Step {
	return Step{Name: StepOpenProject, Inputs: inputs(
		"project_path", req.GetProjectPath(),
	)}
}

func verifyStep(req *apiv1.WorkflowPipelineRequest) Step {
	return Step{Name: StepVerifyTool, Inputs: inputs(
		"toolchain_id", req.GetToolchainId().GetValue(),
	)}
}

func buildStep(req *apiv1.WorkflowPipelineRequest) Step {
	return Step{Name: StepBuild, Inputs: inputs(
		"project_id", req.GetProjectId().GetValue(),
		"project_path", req.GetProjectPath(),
		"module", req.GetModule(),
		"variant_name", req.GetVariantName(),
	)}
}

func installStep(req *apiv1.WorkflowPipelineRequest) Step {
	return Step{Name: StepInstallApk, Inputs: inputs(
		"apk_path", req.GetApkPath(),
		"target_id", req.GetTargetId().GetValue(),
	)}
}

func launchStep(req *apiv1.WorkflowPipelineRequest) Step {
	return Step{Name: StepLaunchApp, Inputs: inputs(
		"application_id", req.GetApplicationId(),
		"activity", req.GetActivity(),
	)}
}

// inputs builds a KeyValue list from key/value pairs, dropping blanks.
func inputs(pairs ...string) []*apiv1.KeyValue {
	var kvs []*apiv1.KeyValue
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			continue
		}
		kvs = append(kvs, &apiv1.KeyValue{Key: pairs[i], Value: pairs[i+1]})
	}
	return kvs
}
