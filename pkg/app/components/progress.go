package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/wpstatic/pkg/app/styles"
	"github.com/kerbaras/wpstatic/pkg/services"
)

// ProgressTracker renders the state of an in-flight media download run.
type ProgressTracker struct {
	current services.DownloadProgress
	errors  []string
	width   int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{width: width}
}

func (p *ProgressTracker) SetWidth(width int) {
	p.width = width
}

func (p *ProgressTracker) Update(progress services.DownloadProgress) {
	p.current = progress
	if progress.Status == "error" && progress.Error != nil {
		p.errors = append(p.errors, fmt.Sprintf("%s: %v", progress.Filename, progress.Error))
	}
}

// Errors returns the failure lines collected so far.
func (p *ProgressTracker) Errors() []string {
	return p.errors
}

func (p *ProgressTracker) View() string {
	var b strings.Builder

	cur := p.current
	if cur.Total > 0 {
		percentage := float64(cur.Index) / float64(cur.Total) * 100
		line := fmt.Sprintf("[%d/%d] %s (%.0f%%)", cur.Index, cur.Total, cur.Filename, percentage)
		b.WriteString(styles.TextStyle.Render(line))
		b.WriteString("\n")

		bar := renderProgressBar(cur.Index, cur.Total, p.width-4)
		b.WriteString(bar)
		b.WriteString("\n")

		b.WriteString(styles.StatusStyle(cur.Status).Render(cur.Status))
		b.WriteString("\n")
	}

	if len(p.errors) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("%d failed", len(p.errors))))
		b.WriteString("\n")
		start := 0
		if len(p.errors) > 5 {
			start = len(p.errors) - 5
		}
		for _, msg := range p.errors[start:] {
			b.WriteString(styles.MutedStyle.Render("  " + msg))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}
