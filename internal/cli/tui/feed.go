package tui

import (
	"bytes"
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Feed streams job events into the program until the stream ends or
// ctx is cancelled. History is replayed so a watch attached late still
// shows the full picture.
func Feed(ctx context.Context, program *tea.Program, jobs apiv1.JobServiceClient, jobID string) {
	stream, err := jobs.StreamJobEvents(ctx, &apiv1.StreamJobEventsRequest{
		JobId:          &apiv1.Id{Value: jobID},
		IncludeHistory: true,
	})
	if err != nil {
		program.Send(StreamEndedMsg{Err: err})
		return
	}

	for {
		ev, err := stream.Recv()
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				err = nil
			}
			program.Send(StreamEndedMsg{Err: err})
			return
		}
		for _, msg := range eventToMsgs(ev) {
			program.Send(msg)
		}
	}
}

// eventToMsgs converts one wire event into view messages. A log chunk
// may carry several lines.
func eventToMsgs(ev *apiv1.JobEvent) []tea.Msg {
	switch {
	case ev.GetStateChanged() != nil:
		return []tea.Msg{StateMsg{State: ev.GetStateChanged().GetNewState()}}

	case ev.GetProgress() != nil:
		p := ev.GetProgress().GetProgress()
		return []tea.Msg{ProgressMsg{Percent: p.GetPercent(), Phase: p.GetPhase()}}

	case ev.GetLog() != nil:
		data := ev.GetLog().GetChunk().GetData()
		var msgs []tea.Msg
		for _, line := range bytes.Split(data, []byte{'\n'}) {
			if len(line) == 0 {
				continue
			}
			msgs = append(msgs, LogMsg{Line: string(line)})
		}
		return msgs

	case ev.GetCompleted() != nil:
		return []tea.Msg{CompletedMsg{Summary: ev.GetCompleted().GetSummary()}}

	case ev.GetFailed() != nil:
		detail := ev.GetFailed().GetError()
		return []tea.Msg{FailedMsg{Message: detail.GetMessage()}}

	default:
		return nil
	}
}
