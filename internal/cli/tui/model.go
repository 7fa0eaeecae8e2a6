// Package tui renders the live job watch view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// logLimit bounds the retained log tail.
const logLimit = 500

// Model is the bubbletea model for watching a single job.
type Model struct {
	JobID   string
	JobType string
	Styles  Styles

	State   apiv1.JobState
	Percent uint32
	Phase   string
	Summary string
	ErrMsg  string

	LogLines  []string
	StartTime time.Time
	Width     int
	Height    int

	Terminal bool
	Quitting bool
}

// NewModel creates a watch model for the given job.
func NewModel(jobID, jobType string) *Model {
	return &Model{
		JobID:     jobID,
		JobType:   jobType,
		Styles:    DefaultStyles(),
		State:     apiv1.JobState_JOB_STATE_QUEUED,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// TickMsg updates the elapsed timer once a second.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// StateMsg carries a job state change.
type StateMsg struct {
	State apiv1.JobState
}

// ProgressMsg carries a progress update.
type ProgressMsg struct {
	Percent uint32
	Phase   string
}

// LogMsg carries one log line.
type LogMsg struct {
	Line string
}

// CompletedMsg carries the terminal success summary.
type CompletedMsg struct {
	Summary string
}

// FailedMsg carries the terminal failure message.
type FailedMsg struct {
	Message string
}

// StreamEndedMsg signals the event stream closed.
type StreamEndedMsg struct {
	Err error
}
