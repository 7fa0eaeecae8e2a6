package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// newRunsCmd creates the 'runs' command group over the observe service.
func newRunsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the run registry",
	}

	cmd.AddCommand(newRunsListCmd(a))
	cmd.AddCommand(newRunsOutputsCmd(a))
	cmd.AddCommand(newRunsTailCmd(a))

	return cmd
}

// newRunsListCmd creates 'runs list'.
// Flags: --result, --correlation, --project, --page-size, --page-token
func newRunsListCmd(a *App) *cobra.Command {
	var (
		result      string
		correlation string
		projectID   string
		pageSize    uint32
		pageToken   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.dialObserve()
			if err != nil {
				return err
			}
			defer conn.Close()

			filter := &apiv1.RunFilter{Result: result}
			if correlation != "" {
				filter.CorrelationId = correlation
			}
			if projectID != "" {
				filter.ProjectId = &apiv1.Id{Value: projectID}
			}

			resp, err := conn.Observe().ListRuns(cmd.Context(), &apiv1.ListRunsRequest{
				Filter: filter,
				Page:   &apiv1.Pagination{PageSize: pageSize, PageToken: pageToken},
			})
			if err != nil {
				return err
			}

			styled := stdoutIsTTY()
			for i, run := range resp.GetRuns() {
				if i > 0 && styled {
					fmt.Fprintln(a.out)
				}
				printRun(a.out, styled, run)
			}
			if next := resp.GetPageInfo().GetNextPageToken(); next != "" {
				printKV(a.out, styled, [2]string{"next_page_token", next})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&result, "result", "", "Filter by result (running, success, failed, cancelled)")
	cmd.Flags().StringVar(&correlation, "correlation", "", "Filter by correlation id")
	cmd.Flags().StringVar(&projectID, "project", "", "Filter by project id")
	cmd.Flags().Uint32Var(&pageSize, "page-size", 0, "Page size (default 25, max 200)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token from a previous call")

	return cmd
}

// newRunsOutputsCmd creates 'runs outputs <run-id>'.
// Flags: --kind, --path-contains, --label-contains
func newRunsOutputsCmd(a *App) *cobra.Command {
	var (
		kind          string
		pathContains  string
		labelContains string
	)

	cmd := &cobra.Command{
		Use:   "outputs <run-id>",
		Short: "List a run's registered outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.dialObserve()
			if err != nil {
				return err
			}
			defer conn.Close()

			filter := &apiv1.RunOutputFilter{
				PathContains:  pathContains,
				LabelContains: labelContains,
			}
			if kind != "" {
				parsed, err := parseKindWord(kind)
				if err != nil {
					return err
				}
				filter.Kind = parsed
			}

			resp, err := conn.Observe().ListRunOutputs(cmd.Context(), &apiv1.ListRunOutputsRequest{
				RunId:  &apiv1.RunId{Value: args[0]},
				Filter: filter,
			})
			if err != nil {
				return err
			}

			styled := stdoutIsTTY()
			for i, out := range resp.GetOutputs() {
				if i > 0 && styled {
					fmt.Fprintln(a.out)
				}
				printOutput(a.out, styled, out)
			}
			summary := resp.GetSummary()
			printKV(a.out, styled,
				[2]string{"bundles", fmt.Sprintf("%d", summary.GetBundleCount())},
				[2]string{"artifacts", fmt.Sprintf("%d", summary.GetArtifactCount())},
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind (bundle or artifact)")
	cmd.Flags().StringVar(&pathContains, "path-contains", "", "Filter by path substring")
	cmd.Flags().StringVar(&labelContains, "label-contains", "", "Filter by label substring")

	return cmd
}

// newRunsTailCmd creates 'runs tail <run-id>', which follows the run's
// pipeline job.
func newRunsTailCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tail <run-id>",
		Short: "Stream events of a run's pipeline job",
		Long: `Look up the run in the registry and stream the events of its first
recorded job. The first job id of a workflow run is the pipeline job
itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, err := a.dialObserve()
			if err != nil {
				return err
			}
			defer obs.Close()

			runs, err := obs.Observe().ListRuns(cmd.Context(), &apiv1.ListRunsRequest{
				Filter: &apiv1.RunFilter{RunId: &apiv1.RunId{Value: args[0]}},
			})
			if err != nil {
				return err
			}
			if len(runs.GetRuns()) == 0 {
				return fmt.Errorf("run %s not found", args[0])
			}
			run := runs.GetRuns()[0]
			if len(run.GetJobIds()) == 0 {
				return fmt.Errorf("run %s has no recorded jobs", args[0])
			}

			jobs, err := a.dialJobs()
			if err != nil {
				return err
			}
			defer jobs.Close()

			return streamEvents(cmd.Context(), jobs.Jobs(), run.GetJobIds()[0].GetValue(), true, a.out, true)
		},
	}
}
