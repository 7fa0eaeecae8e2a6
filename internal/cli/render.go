package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// styles for TTY output. Plain key=value output when piped keeps the
// CLI scriptable.
var (
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleValue = lipgloss.NewStyle().Bold(true)

	styleRunning   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleSuccess   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleFailed    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleCancelled = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// stdoutIsTTY reports whether stdout is an interactive terminal.
func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// stateWord renders a JobState as the lowercase word used throughout
// run records and filters.
func stateWord(state apiv1.JobState) string {
	switch state {
	case apiv1.JobState_JOB_STATE_QUEUED:
		return "queued"
	case apiv1.JobState_JOB_STATE_RUNNING:
		return "running"
	case apiv1.JobState_JOB_STATE_SUCCESS:
		return "success"
	case apiv1.JobState_JOB_STATE_FAILED:
		return "failed"
	case apiv1.JobState_JOB_STATE_CANCELLED:
		return "cancelled"
	default:
		return "unspecified"
	}
}

// parseStateWord is the inverse of stateWord for --state filters.
func parseStateWord(word string) (apiv1.JobState, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "queued":
		return apiv1.JobState_JOB_STATE_QUEUED, nil
	case "running":
		return apiv1.JobState_JOB_STATE_RUNNING, nil
	case "success":
		return apiv1.JobState_JOB_STATE_SUCCESS, nil
	case "failed":
		return apiv1.JobState_JOB_STATE_FAILED, nil
	case "cancelled":
		return apiv1.JobState_JOB_STATE_CANCELLED, nil
	default:
		return apiv1.JobState_JOB_STATE_UNSPECIFIED,
			fmt.Errorf("unknown state %q (expected queued, running, success, failed, or cancelled)", word)
	}
}

func styleForState(state apiv1.JobState) lipgloss.Style {
	switch state {
	case apiv1.JobState_JOB_STATE_SUCCESS:
		return styleSuccess
	case apiv1.JobState_JOB_STATE_FAILED:
		return styleFailed
	case apiv1.JobState_JOB_STATE_CANCELLED:
		return styleCancelled
	default:
		return styleRunning
	}
}

// printKV writes one record. Styled form is "label  value" lines,
// plain form is "key=value" on a single line per pair.
func printKV(w io.Writer, styled bool, pairs ...[2]string) {
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		if styled {
			fmt.Fprintf(w, "%s %s\n", styleLabel.Render(p[0]+":"), styleValue.Render(p[1]))
		} else {
			fmt.Fprintf(w, "%s=%s\n", p[0], p[1])
		}
	}
}

func printJob(w io.Writer, styled bool, job *apiv1.Job) {
	state := stateWord(job.GetState())
	if styled {
		state = styleForState(job.GetState()).Render(state)
	}
	printKV(w, styled,
		[2]string{"job_id", job.GetJobId().GetValue()},
		[2]string{"job_type", job.GetJobType()},
		[2]string{"display_name", job.GetDisplayName()},
		[2]string{"state", state},
		[2]string{"correlation_id", job.GetCorrelationId()},
		[2]string{"run_id", job.GetRunId().GetValue()},
		[2]string{"created_at", formatTimestamp(job.GetCreatedAt())},
		[2]string{"finished_at", formatTimestamp(job.GetFinishedAt())},
	)
}

func printRun(w io.Writer, styled bool, run *apiv1.RunRecord) {
	printKV(w, styled,
		[2]string{"run_id", run.GetRunId().GetValue()},
		[2]string{"correlation_id", run.GetCorrelationId()},
		[2]string{"result", run.GetResult()},
		[2]string{"jobs", fmt.Sprintf("%d", len(run.GetJobIds()))},
		[2]string{"started_at", formatTimestamp(run.GetStartedAt())},
		[2]string{"finished_at", formatTimestamp(run.GetFinishedAt())},
	)
}

// parseKindWord is the inverse of kindWord for --kind filters.
func parseKindWord(word string) (apiv1.RunOutputKind, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "bundle":
		return apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE, nil
	case "artifact":
		return apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT, nil
	default:
		return apiv1.RunOutputKind_RUN_OUTPUT_KIND_UNSPECIFIED,
			fmt.Errorf("unknown kind %q (expected bundle or artifact)", word)
	}
}

// kindWord renders a RunOutputKind as a short lowercase word.
func kindWord(kind apiv1.RunOutputKind) string {
	switch kind {
	case apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE:
		return "bundle"
	case apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT:
		return "artifact"
	default:
		return "unspecified"
	}
}

func printOutput(w io.Writer, styled bool, out *apiv1.RunOutput) {
	printKV(w, styled,
		[2]string{"output_id", out.GetOutputId()},
		[2]string{"kind", kindWord(out.GetKind())},
		[2]string{"output_type", out.GetOutputType()},
		[2]string{"path", out.GetPath()},
		[2]string{"label", out.GetLabel()},
	)
}

// printEvent writes one job event line. Log payloads are written raw
// so streamed output can be piped into files or grep.
func printEvent(w io.Writer, styled bool, ev *apiv1.JobEvent) {
	switch {
	case ev.GetLog() != nil:
		chunk := ev.GetLog().GetChunk()
		fmt.Fprintf(w, "%s", chunk.GetData())
		if len(chunk.GetData()) > 0 && chunk.GetData()[len(chunk.GetData())-1] != '\n' {
			fmt.Fprintln(w)
		}
	case ev.GetStateChanged() != nil:
		state := stateWord(ev.GetStateChanged().GetNewState())
		if styled {
			state = styleForState(ev.GetStateChanged().GetNewState()).Render(state)
		}
		fmt.Fprintf(w, "-- state: %s\n", state)
	case ev.GetProgress() != nil:
		p := ev.GetProgress().GetProgress()
		fmt.Fprintf(w, "-- progress: %d%% %s\n", p.GetPercent(), p.GetPhase())
	case ev.GetCompleted() != nil:
		fmt.Fprintf(w, "-- completed: %s\n", ev.GetCompleted().GetSummary())
	case ev.GetFailed() != nil:
		detail := ev.GetFailed().GetError()
		fmt.Fprintf(w, "-- failed: %s (%s)\n", detail.GetMessage(), detail.GetCode())
	}
}

func formatTimestamp(ts *apiv1.Timestamp) string {
	if ts.GetUnixMillis() == 0 {
		return ""
	}
	return time.UnixMilli(ts.GetUnixMillis()).UTC().Format(time.RFC3339)
}
