package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// pipelineFile mirrors WorkflowPipelineRequest for `workflow run -f`.
type pipelineFile struct {
	ProjectID      string `yaml:"project_id"`
	TargetID       string `yaml:"target_id"`
	ToolchainSetID string `yaml:"toolchain_set_id"`

	ProjectPath string `yaml:"project_path"`
	ProjectName string `yaml:"project_name"`
	TemplateID  string `yaml:"template_id"`
	ToolchainID string `yaml:"toolchain_id"`

	Module      string   `yaml:"module"`
	VariantName string   `yaml:"variant_name"`
	Tasks       []string `yaml:"tasks"`

	ApkPath       string `yaml:"apk_path"`
	ApplicationID string `yaml:"application_id"`
	Activity      string `yaml:"activity"`

	CorrelationID string `yaml:"correlation_id"`
	RunID         string `yaml:"run_id"`

	Options *pipelineOptionsFile `yaml:"options"`
}

type pipelineOptionsFile struct {
	CreateProject        bool `yaml:"create_project"`
	OpenProject          bool `yaml:"open_project"`
	VerifyToolchain      bool `yaml:"verify_toolchain"`
	Build                bool `yaml:"build"`
	InstallApk           bool `yaml:"install_apk"`
	LaunchApp            bool `yaml:"launch_app"`
	ExportSupportBundle  bool `yaml:"export_support_bundle"`
	ExportEvidenceBundle bool `yaml:"export_evidence_bundle"`
}

// newWorkflowCmd creates the 'workflow' command group.
func newWorkflowCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Run multi-step pipelines",
	}

	cmd.AddCommand(newWorkflowRunCmd(a))

	return cmd
}

// newWorkflowRunCmd creates 'workflow run'. Steps are inferred from the
// provided inputs; a YAML request file replaces the flags.
func newWorkflowRunCmd(a *App) *cobra.Command {
	var (
		file string
		req  pipelineFile

		follow bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workflow pipeline",
		Long: `Run a pipeline against the workflow service. The planned steps
follow from the inputs: a template id plans project creation, a
project path plans opening, a toolchain id plans verification, a
project reference plans a build, an apk plans installation, and an
application id plans a launch.

With -f, the request is read from a YAML file whose fields mirror the
flags; flags are ignored in that case.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wire, err := buildPipelineRequest(file, &req)
			if err != nil {
				return err
			}

			conn, err := a.dialWorkflow()
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := conn.Workflow().RunPipeline(cmd.Context(), wire)
			if err != nil {
				return err
			}

			styled := stdoutIsTTY()
			pairs := [][2]string{
				{"run_id", resp.GetRunId().GetValue()},
				{"job_id", resp.GetJobId().GetValue()},
				{"project_id", resp.GetProjectId().GetValue()},
			}
			for _, kv := range resp.GetOutputs() {
				pairs = append(pairs, [2]string{kv.GetKey(), kv.GetValue()})
			}
			printKV(a.out, styled, pairs...)

			if follow {
				return a.followJob(cmd, resp.GetJobId().GetValue())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML pipeline request file")
	cmd.Flags().StringVar(&req.ProjectID, "project-id", "", "Existing project id")
	cmd.Flags().StringVar(&req.ProjectPath, "project-path", "", "Project path on disk")
	cmd.Flags().StringVar(&req.ProjectName, "project-name", "", "Project name for creation")
	cmd.Flags().StringVar(&req.TemplateID, "template", "", "Template id (plans project creation)")
	cmd.Flags().StringVar(&req.ToolchainID, "toolchain", "", "Toolchain id (plans verification)")
	cmd.Flags().StringVar(&req.ToolchainSetID, "toolchain-set", "", "Toolchain set id")
	cmd.Flags().StringVar(&req.TargetID, "target", "", "Target device id")
	cmd.Flags().StringVar(&req.Module, "module", "", "Gradle module to build")
	cmd.Flags().StringVar(&req.VariantName, "variant", "", "Build variant")
	cmd.Flags().StringArrayVar(&req.Tasks, "task", nil, "Extra build task (repeatable)")
	cmd.Flags().StringVar(&req.ApkPath, "apk", "", "APK path (plans installation)")
	cmd.Flags().StringVar(&req.ApplicationID, "application", "", "Application id (plans launch)")
	cmd.Flags().StringVar(&req.Activity, "activity", "", "Activity to launch")
	cmd.Flags().StringVar(&req.CorrelationID, "correlation", "", "Correlation id")
	cmd.Flags().StringVar(&req.RunID, "run", "", "Run id")
	cmd.Flags().BoolVar(&follow, "follow", false, "Stream the pipeline job until it finishes")

	return cmd
}

// buildPipelineRequest converts the file (if given) or the flag-bound
// struct into the wire request.
func buildPipelineRequest(path string, flags *pipelineFile) (*apiv1.WorkflowPipelineRequest, error) {
	src := flags
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read pipeline file: %w", err)
		}
		var parsed pipelineFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parse pipeline file: %w", err)
		}
		src = &parsed
	}

	req := &apiv1.WorkflowPipelineRequest{
		ProjectPath:   src.ProjectPath,
		ProjectName:   src.ProjectName,
		Module:        src.Module,
		VariantName:   src.VariantName,
		Tasks:         src.Tasks,
		ApkPath:       src.ApkPath,
		ApplicationId: src.ApplicationID,
		Activity:      src.Activity,
		CorrelationId: src.CorrelationID,
	}
	if src.RunID != "" {
		req.RunId = &apiv1.RunId{Value: src.RunID}
	}
	if src.ProjectID != "" {
		req.ProjectId = &apiv1.Id{Value: src.ProjectID}
	}
	if src.TargetID != "" {
		req.TargetId = &apiv1.Id{Value: src.TargetID}
	}
	if src.ToolchainSetID != "" {
		req.ToolchainSetId = &apiv1.Id{Value: src.ToolchainSetID}
	}
	if src.TemplateID != "" {
		req.TemplateId = &apiv1.Id{Value: src.TemplateID}
	}
	if src.ToolchainID != "" {
		req.ToolchainId = &apiv1.Id{Value: src.ToolchainID}
	}
	if src.Options != nil {
		req.Options = &apiv1.PipelineOptions{
			CreateProject:        src.Options.CreateProject,
			OpenProject:          src.Options.OpenProject,
			VerifyToolchain:      src.Options.VerifyToolchain,
			Build:                src.Options.Build,
			InstallApk:           src.Options.InstallApk,
			LaunchApp:            src.Options.LaunchApp,
			ExportSupportBundle:  src.Options.ExportSupportBundle,
			ExportEvidenceBundle: src.Options.ExportEvidenceBundle,
		}
	}
	return req, nil
}
