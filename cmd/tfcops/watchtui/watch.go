// Package watchtui renders a live status view for a run while it is polled.
// The view follows The Elm Architecture: state in Model, transitions in
// Update, rendering in View. Unlike the plain watch loop there is no poll
// cap; the user leaves with q or the view exits when the run finishes.
package watchtui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tfcops/tfcops/domain/model"
)

// FetchFunc returns the current state of the watched run.
type FetchFunc func(ctx context.Context) (*model.Run, error)

type statusMsg struct{ run *model.Run }
type errMsg struct{ err error }
type refreshTickMsg time.Time

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	finishedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func statusStyle(status model.RunStatus) lipgloss.Style {
	switch status {
	case model.RunStatusApplied, model.RunStatusPlannedAndFinished:
		return finishedStyle
	case model.RunStatusErrored, model.RunStatusDiscarded, model.RunStatusCanceled:
		return failedStyle
	default:
		return pendingStyle
	}
}

// Model is the bubbletea model for the run watch view.
type Model struct {
	RunID    string
	Interval time.Duration
	Fetch    FetchFunc

	ctx     context.Context
	spinner spinner.Model
	run     *model.Run
	err     error
	polls   int
	done    bool
}

// New creates a watch model that polls the run at the given interval.
func New(ctx context.Context, runID string, interval time.Duration, fetch FetchFunc) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return Model{RunID: runID, Interval: interval, Fetch: fetch, ctx: ctx, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// fetchCmd fetches the run state off the update loop.
func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		r, err := m.Fetch(m.ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return statusMsg{run: r}
	}
}

// refreshTick schedules the next poll.
func (m Model) refreshTick() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	case statusMsg:
		m.run = msg.run
		m.polls++
		if msg.run.Status.Finished() {
			m.done = true
			return m, tea.Quit
		}
		return m, m.refreshTick()
	case errMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case refreshTickMsg:
		return m, m.fetchCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		// The command prints the final line after the program exits.
		return ""
	}
	status := "waiting for first poll"
	style := pendingStyle
	if m.run != nil {
		status = string(m.run.Status)
		style = statusStyle(m.run.Status)
	}
	title := titleStyle.Render(fmt.Sprintf("%s run %s", m.spinner.View(), m.RunID))
	body := fmt.Sprintf("status: %s\npolls:  %d", style.Render(status), m.polls)
	help := helpStyle.Render("q to quit")
	return panelStyle.Render(title+"\n"+body+"\n"+help) + "\n"
}

// Watch drives the status view to completion and returns the last seen run.
// Quitting before the first poll arrives is reported as an error.
func Watch(ctx context.Context, runID string, interval time.Duration, fetch FetchFunc) (*model.Run, error) {
	p := tea.NewProgram(New(ctx, runID, interval, fetch))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.run == nil {
		return nil, fmt.Errorf("watch aborted before the first status arrived")
	}
	return m.run, nil
}
