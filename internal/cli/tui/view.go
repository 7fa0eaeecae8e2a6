package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// logTail is how many log lines the view shows.
const logTail = 12

// View implements tea.Model.
func (m *Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderStateLine())
	b.WriteString("\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n\n")
	b.WriteString(m.renderLogTail())
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderHeader() string {
	elapsed := time.Since(m.StartTime).Round(time.Second)
	timer := fmt.Sprintf("[%s]", formatDuration(elapsed))

	return fmt.Sprintf("%s  %s  %s",
		m.Styles.Title.Render(m.JobID),
		m.Styles.JobType.Render(m.JobType),
		m.Styles.Timer.Render(timer),
	)
}

func (m *Model) renderStateLine() string {
	icon, style := m.stateLook()
	line := fmt.Sprintf("%s %s", icon, stateWord(m.State))
	if m.Summary != "" {
		line += "  " + m.Summary
	}
	if m.ErrMsg != "" {
		line += "  " + m.ErrMsg
	}
	return "  " + style.Render(line)
}

func (m *Model) renderProgress() string {
	const width = 30
	percent := m.Percent
	if percent > 100 {
		percent = 100
	}
	filled := int(percent) * width / 100

	bar := "[" +
		m.Styles.ProgressFilled.Render(strings.Repeat("█", filled)) +
		m.Styles.ProgressEmpty.Render(strings.Repeat("░", width-filled)) +
		"]"

	line := fmt.Sprintf("  %s %3d%%", bar, percent)
	if m.Phase != "" {
		line += "  " + m.Styles.Phase.Render(m.Phase)
	}
	return line
}

func (m *Model) renderLogTail() string {
	if len(m.LogLines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.Styles.LogTitle.Render("  recent log"))
	b.WriteString("\n")

	lines := m.LogLines
	if len(lines) > logTail {
		lines = lines[len(lines)-logTail:]
	}
	for _, line := range lines {
		b.WriteString("  " + m.Styles.LogLine.Render(line) + "\n")
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	key := m.Styles.FooterKey.Render("q")
	return m.Styles.Footer.Render(fmt.Sprintf("  Press %s to quit", key))
}

func (m *Model) stateLook() (string, lipgloss.Style) {
	switch m.State {
	case apiv1.JobState_JOB_STATE_SUCCESS:
		return IconSuccess, m.Styles.StateSuccess
	case apiv1.JobState_JOB_STATE_FAILED:
		return IconFailed, m.Styles.StateFailed
	case apiv1.JobState_JOB_STATE_CANCELLED:
		return IconCancelled, m.Styles.StateCancelled
	default:
		return IconRunning, m.Styles.StateRunning
	}
}

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

// formatDuration formats a duration as HH:MM:SS.
func formatDuration(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
