package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aadk-dev/aadk/internal/cli/tui"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// newJobsCmd creates the 'jobs' command group.
func newJobsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Start, inspect, and follow jobs",
	}

	cmd.AddCommand(newJobsStartCmd(a))
	cmd.AddCommand(newJobsGetCmd(a))
	cmd.AddCommand(newJobsCancelCmd(a))
	cmd.AddCommand(newJobsListCmd(a))
	cmd.AddCommand(newJobsStreamCmd(a))
	cmd.AddCommand(newJobsWatchCmd(a))

	return cmd
}

// newJobsStartCmd creates 'jobs start <job-type>'.
// Flags: --param k=v (repeatable), --correlation, --run
func newJobsStartCmd(a *App) *cobra.Command {
	var (
		params      []string
		correlation string
		runID       string
	)

	cmd := &cobra.Command{
		Use:   "start <job-type>",
		Short: "Register a new job",
		Long: `Register a job of the given type with the job service.

The job service tracks state and events; execution belongs to the
service that owns the job type. Parameters are passed as repeated
--param key=value flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kvs, err := parseParams(params)
			if err != nil {
				return err
			}

			conn, err := a.dialJobs()
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &apiv1.StartJobRequest{
				JobType:       args[0],
				Params:        kvs,
				CorrelationId: correlation,
			}
			if runID != "" {
				req.RunId = &apiv1.RunId{Value: runID}
			}

			resp, err := conn.Jobs().StartJob(cmd.Context(), req)
			if err != nil {
				return err
			}
			printJob(a.out, stdoutIsTTY(), resp.GetJob())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&params, "param", nil, "Job parameter key=value (repeatable)")
	cmd.Flags().StringVar(&correlation, "correlation", "", "Correlation id")
	cmd.Flags().StringVar(&runID, "run", "", "Run id")

	return cmd
}

func newJobsGetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <job-id>",
		Short: "Show a job's current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.dialJobs()
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := conn.Jobs().GetJob(cmd.Context(), &apiv1.GetJobRequest{
				JobId: &apiv1.Id{Value: args[0]},
			})
			if err != nil {
				return err
			}
			printJob(a.out, stdoutIsTTY(), resp.GetJob())
			return nil
		},
	}
}

func newJobsCancelCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <job-id>",
		Short: "Request cancellation of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.dialJobs()
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := conn.Jobs().CancelJob(cmd.Context(), &apiv1.CancelJobRequest{
				JobId: &apiv1.Id{Value: args[0]},
			})
			if err != nil {
				return err
			}
			if resp.GetAccepted() {
				fmt.Fprintln(a.out, "cancellation requested")
			} else {
				fmt.Fprintln(a.out, "not cancellable")
			}
			return nil
		},
	}
}

// newJobsListCmd creates 'jobs list'.
// Flags: --type, --state (comma-separated), --correlation, --run,
// --page-size, --page-token
func newJobsListCmd(a *App) *cobra.Command {
	var (
		jobTypes    []string
		states      string
		correlation string
		runID       string
		pageSize    uint32
		pageToken   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := &apiv1.JobFilter{JobTypes: jobTypes}
			if states != "" {
				for _, word := range strings.Split(states, ",") {
					state, err := parseStateWord(word)
					if err != nil {
						return err
					}
					filter.States = append(filter.States, state)
				}
			}
			filter.CorrelationId = correlation
			if runID != "" {
				filter.RunId = &apiv1.RunId{Value: runID}
			}

			conn, err := a.dialJobs()
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := conn.Jobs().ListJobs(cmd.Context(), &apiv1.ListJobsRequest{
				Filter: filter,
				Page:   &apiv1.Pagination{PageSize: pageSize, PageToken: pageToken},
			})
			if err != nil {
				return err
			}

			styled := stdoutIsTTY()
			for i, job := range resp.GetJobs() {
				if i > 0 && styled {
					fmt.Fprintln(a.out)
				}
				printJob(a.out, styled, job)
			}
			if next := resp.GetPageInfo().GetNextPageToken(); next != "" {
				printKV(a.out, styled, [2]string{"next_page_token", next})
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&jobTypes, "type", nil, "Filter by job type (repeatable)")
	cmd.Flags().StringVar(&states, "state", "", "Filter by state (comma-separated)")
	cmd.Flags().StringVar(&correlation, "correlation", "", "Filter by correlation id")
	cmd.Flags().StringVar(&runID, "run", "", "Filter by run id")
	cmd.Flags().Uint32Var(&pageSize, "page-size", 0, "Page size (default 50, max 200)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token from a previous call")

	return cmd
}

// newJobsStreamCmd creates 'jobs stream <job-id>'.
// Flags: --no-history to skip the replayed event history.
func newJobsStreamCmd(a *App) *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "stream <job-id>",
		Short: "Stream a job's events to stdout",
		Long: `Stream events for a job. By default the recorded history is
replayed first, then live events follow. The stream stays open past
terminal states; interrupt to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.dialJobs()
			if err != nil {
				return err
			}
			defer conn.Close()

			return streamEvents(cmd.Context(), conn.Jobs(), args[0], !noHistory, a.out, false)
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip replayed history")

	return cmd
}

// newJobsWatchCmd creates 'jobs watch <job-id>', the live terminal view.
func newJobsWatchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <job-id>",
		Short: "Watch a job in a live terminal view",
		Long: `Follow a job with a live view showing its state, progress, and a
scrolling log tail. Falls back to plain streaming when stdout is not
a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.dialJobs()
			if err != nil {
				return err
			}
			defer conn.Close()

			if !stdoutIsTTY() {
				return streamEvents(cmd.Context(), conn.Jobs(), args[0], true, a.out, true)
			}
			return watchJob(cmd.Context(), conn.Jobs(), args[0])
		},
	}
}

// streamEvents prints job events until the stream ends or, when
// stopAtTerminal is set, until a terminal event arrives.
func streamEvents(ctx context.Context, jobs apiv1.JobServiceClient, jobID string, includeHistory bool, w io.Writer, stopAtTerminal bool) error {
	stream, err := jobs.StreamJobEvents(ctx, &apiv1.StreamJobEventsRequest{
		JobId:          &apiv1.Id{Value: jobID},
		IncludeHistory: includeHistory,
	})
	if err != nil {
		return err
	}

	styled := stdoutIsTTY()
	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		printEvent(w, styled, ev)
		if stopAtTerminal && isTerminalEvent(ev) {
			return nil
		}
	}
}

func isTerminalEvent(ev *apiv1.JobEvent) bool {
	if ev.GetCompleted() != nil || ev.GetFailed() != nil {
		return true
	}
	if sc := ev.GetStateChanged(); sc != nil {
		switch sc.GetNewState() {
		case apiv1.JobState_JOB_STATE_SUCCESS,
			apiv1.JobState_JOB_STATE_FAILED,
			apiv1.JobState_JOB_STATE_CANCELLED:
			return true
		}
	}
	return false
}

// watchJob runs the bubbletea view fed from the event stream.
func watchJob(ctx context.Context, jobs apiv1.JobServiceClient, jobID string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	job, err := jobs.GetJob(ctx, &apiv1.GetJobRequest{JobId: &apiv1.Id{Value: jobID}})
	if err != nil {
		return err
	}

	model := tui.NewModel(jobID, job.GetJob().GetJobType())
	program := tea.NewProgram(model)

	go tui.Feed(ctx, program, jobs, jobID)

	_, err = program.Run()
	return err
}

// parseParams converts repeated key=value flags into wire pairs.
func parseParams(raw []string) ([]*apiv1.KeyValue, error) {
	kvs := make([]*apiv1.KeyValue, 0, len(raw))
	for _, p := range raw {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q (expected key=value)", p)
		}
		kvs = append(kvs, &apiv1.KeyValue{Key: key, Value: value})
	}
	return kvs, nil
}
