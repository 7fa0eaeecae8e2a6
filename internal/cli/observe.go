package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// newObserveCmd creates the 'observe' command group for bundle exports
// and state management.
func newObserveCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "observe",
		Short: "Export bundles and manage observe state",
	}

	cmd.AddCommand(newExportSupportCmd(a))
	cmd.AddCommand(newExportEvidenceCmd(a))
	cmd.AddCommand(newReloadCmd(a))

	return cmd
}

// newExportSupportCmd creates 'observe export-support'. The export runs
// asynchronously; --follow streams the export job to completion.
func newExportSupportCmd(a *App) *cobra.Command {
	var (
		includeLogs     bool
		includeConfig   bool
		includeRuns     bool
		includeTool     bool
		recentRunsLimit uint32
		runID           string
		correlation     string
		follow          bool
	)

	cmd := &cobra.Command{
		Use:   "export-support",
		Short: "Export a support bundle",
		Long: `Start a support bundle export. The export runs as a job; the bundle
lands under the daemon's bundles directory and is registered as a run
output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.dialObserve()
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &apiv1.ExportSupportBundleRequest{
				IncludeLogs:                includeLogs,
				IncludeConfig:              includeConfig,
				IncludeRecentRuns:          includeRuns,
				IncludeToolchainProvenance: includeTool,
				RecentRunsLimit:            recentRunsLimit,
				CorrelationId:              correlation,
			}
			if runID != "" {
				req.RunId = &apiv1.RunId{Value: runID}
			}

			resp, err := conn.Observe().ExportSupportBundle(cmd.Context(), req)
			if err != nil {
				return err
			}

			styled := stdoutIsTTY()
			printKV(a.out, styled,
				[2]string{"job_id", resp.GetJobId().GetValue()},
				[2]string{"output_path", resp.GetOutputPath()},
			)

			if follow {
				return a.followJob(cmd, resp.GetJobId().GetValue())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeLogs, "logs", true, "Include job logs")
	cmd.Flags().BoolVar(&includeConfig, "config", true, "Include config and host snapshots")
	cmd.Flags().BoolVar(&includeRuns, "runs", true, "Include recent runs")
	cmd.Flags().BoolVar(&includeTool, "toolchains", false, "Include toolchain provenance")
	cmd.Flags().Uint32Var(&recentRunsLimit, "runs-limit", 0, "Recent runs to include (default 5)")
	cmd.Flags().StringVar(&runID, "run", "", "Run id to record the export under")
	cmd.Flags().StringVar(&correlation, "correlation", "", "Correlation id")
	cmd.Flags().BoolVar(&follow, "follow", false, "Stream the export job until it finishes")

	return cmd
}

// newExportEvidenceCmd creates 'observe export-evidence'. The run must
// already exist; it is addressed by run id or correlation id.
func newExportEvidenceCmd(a *App) *cobra.Command {
	var (
		runID       string
		correlation string
		follow      bool
	)

	cmd := &cobra.Command{
		Use:   "export-evidence",
		Short: "Export an evidence bundle for a recorded run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runID == "" && correlation == "" {
				return fmt.Errorf("either --run or --correlation is required")
			}

			conn, err := a.dialObserve()
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &apiv1.ExportEvidenceBundleRequest{CorrelationId: correlation}
			if runID != "" {
				req.RunId = &apiv1.RunId{Value: runID}
			}

			resp, err := conn.Observe().ExportEvidenceBundle(cmd.Context(), req)
			if err != nil {
				return err
			}

			styled := stdoutIsTTY()
			printKV(a.out, styled,
				[2]string{"job_id", resp.GetJobId().GetValue()},
				[2]string{"output_path", resp.GetOutputPath()},
			)

			if follow {
				return a.followJob(cmd, resp.GetJobId().GetValue())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "Run id")
	cmd.Flags().StringVar(&correlation, "correlation", "", "Correlation id")
	cmd.Flags().BoolVar(&follow, "follow", false, "Stream the export job until it finishes")

	return cmd
}

func newReloadCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload observe state from disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.dialObserve()
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := conn.Observe().ReloadState(cmd.Context(), &apiv1.ReloadStateRequest{})
			if err != nil {
				return err
			}

			styled := stdoutIsTTY()
			printKV(a.out, styled,
				[2]string{"ok", fmt.Sprintf("%t", resp.GetOk())},
				[2]string{"items", fmt.Sprintf("%d", resp.GetItemCount())},
				[2]string{"detail", resp.GetDetail()},
			)
			return nil
		},
	}
}

// followJob streams an export job's events until a terminal event.
func (a *App) followJob(cmd *cobra.Command, jobID string) error {
	jobs, err := a.dialJobs()
	if err != nil {
		return err
	}
	defer jobs.Close()
	return streamEvents(cmd.Context(), jobs.Jobs(), jobID, true, a.out, true)
}
