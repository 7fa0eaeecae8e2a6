package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles for the watch view.
type Styles struct {
	// Header styling
	Title   lipgloss.Style
	Timer   lipgloss.Style
	JobType lipgloss.Style

	// State line
	StateRunning   lipgloss.Style
	StateSuccess   lipgloss.Style
	StateFailed    lipgloss.Style
	StateCancelled lipgloss.Style

	// Progress bar
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	Phase          lipgloss.Style

	// Log tail
	LogTitle lipgloss.Style
	LogLine  lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
}

// DefaultStyles returns the default watch view styles.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Timer:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		JobType: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		StateRunning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StateSuccess:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StateFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		StateCancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		ProgressFilled: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		ProgressEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Phase:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),

		LogTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		LogLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// Icons used in the watch view.
const (
	IconRunning   = "●"
	IconSuccess   = "✓"
	IconFailed    = "✗"
	IconCancelled = "○"
)
