package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/wpstatic/pkg/app/components"
	"github.com/kerbaras/wpstatic/pkg/app/styles"
	"github.com/kerbaras/wpstatic/pkg/data"
	"github.com/kerbaras/wpstatic/pkg/services"
)

type progressMsg services.DownloadProgress

type resultMsg struct {
	summary *services.DownloadSummary
	err     error
}

// DownloadModel is the live progress view for a media download run.
type DownloadModel struct {
	spinner  spinner.Model
	tracker  *components.ProgressTracker
	progress <-chan services.DownloadProgress
	result   <-chan resultMsg

	summary *services.DownloadSummary
	err     error
	done    bool
	width   int
}

func newDownloadModel(progress <-chan services.DownloadProgress, result <-chan resultMsg) *DownloadModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.TitleStyle

	return &DownloadModel{
		spinner:  s,
		tracker:  components.NewProgressTracker(60),
		progress: progress,
		result:   result,
		width:    64,
	}
}

func (m *DownloadModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForProgress(m.progress), waitForResult(m.result))
}

func (m *DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.tracker.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case progressMsg:
		m.tracker.Update(services.DownloadProgress(msg))
		return m, waitForProgress(m.progress)

	case resultMsg:
		m.summary = msg.summary
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *DownloadModel) View() string {
	if m.done {
		if m.err != nil {
			return styles.StatusError.Render(fmt.Sprintf("Download failed: %v", m.err)) + "\n"
		}
		return styles.TitleStyle.Render("Download complete") + "\n"
	}

	header := m.spinner.View() + " " + styles.TitleStyle.Render("Downloading media")
	return header + "\n\n" + m.tracker.View()
}

func waitForProgress(ch <-chan services.DownloadProgress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func waitForResult(ch <-chan resultMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// RunDownloadUI runs the download with a live terminal view and returns
// its summary once finished.
func RunDownloadUI(downloader *services.Downloader, attachments []*data.MediaAttachment) (*services.DownloadSummary, error) {
	result := make(chan resultMsg, 1)
	go func() {
		summary, err := downloader.DownloadAll(attachments)
		result <- resultMsg{summary: summary, err: err}
	}()

	model := newDownloadModel(downloader.GetProgressChannel(), result)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(*DownloadModel)
	if !m.done {
		// User quit early; wait for the run to finish in the background.
		res := <-result
		return res.summary, res.err
	}
	return m.summary, m.err
}
