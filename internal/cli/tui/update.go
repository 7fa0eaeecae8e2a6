package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case TickMsg:
		if m.Terminal {
			return m, nil
		}
		return m, tickCmd()

	case StateMsg:
		m.State = msg.State
		if isTerminal(msg.State) {
			m.Terminal = true
		}

	case ProgressMsg:
		m.Percent = msg.Percent
		m.Phase = msg.Phase

	case LogMsg:
		m.appendLog(msg.Line)

	case CompletedMsg:
		m.State = apiv1.JobState_JOB_STATE_SUCCESS
		m.Summary = msg.Summary
		m.Terminal = true

	case FailedMsg:
		m.State = apiv1.JobState_JOB_STATE_FAILED
		m.ErrMsg = msg.Message
		m.Terminal = true

	case StreamEndedMsg:
		// The view stays up so the final state remains readable; the
		// user quits with q.
		m.Terminal = true
	}

	return m, nil
}

func (m *Model) appendLog(line string) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}
	m.LogLines = append(m.LogLines, line)
	if len(m.LogLines) > logLimit {
		m.LogLines = m.LogLines[len(m.LogLines)-logLimit:]
	}
}

func isTerminal(state apiv1.JobState) bool {
	switch state {
	case apiv1.JobState_JOB_STATE_SUCCESS,
		apiv1.JobState_JOB_STATE_FAILED,
		apiv1.JobState_JOB_STATE_CANCELLED:
		return true
	}
	return false
}
