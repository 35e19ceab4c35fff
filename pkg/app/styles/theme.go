package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#3498DB")
	Secondary  = lipgloss.Color("#2C3E50")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")
)

var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Error lines
	StatusError = lipgloss.NewStyle().
			Foreground(Error)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Align(lipgloss.Center)

	CellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// StatusStyle returns the style for a download status word.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "complete", "success":
		return lipgloss.NewStyle().Foreground(Success)
	case "error", "failed":
		return StatusError
	case "skipped":
		return MutedStyle
	default:
		return lipgloss.NewStyle().Foreground(Warning)
	}
}
