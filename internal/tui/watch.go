// Package tui implements the live status view behind `took status --watch`.
// It rereads the store every second, so edits made by other took processes
// show up while the view is open.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joaohenriqueluz/took/internal/app/tracker"
	"github.com/joaohenriqueluz/took/internal/domain"
	"github.com/joaohenriqueluz/took/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model for the watch view.
type Model struct {
	svc     *tracker.Service
	now     time.Time
	current *domain.Snapshot
	tasks   []domain.Snapshot
	err     error
}

// NewModel builds the watch model with a first snapshot already loaded.
func NewModel(svc *tracker.Service) Model {
	m := Model{svc: svc}
	m.refresh(time.Now())
	return m
}

func (m *Model) refresh(now time.Time) {
	ctx := context.Background()
	m.now = now
	m.current, m.err = m.svc.Current(ctx, now)
	if m.err != nil {
		return
	}
	m.tasks, m.err = m.svc.ActiveStatus(ctx, now)
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh(time.Time(msg))
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := titleStyle.Render("took watch") + helpStyle.Render("  "+render.Timestamp(m.now)) + "\n\n"
	if m.err != nil {
		s += errStyle.Render("error: "+m.err.Error()) + "\n"
	} else {
		s += render.Status(m.current) + "\n"
		s += render.TaskTable(m.tasks)
	}
	s += "\n" + helpStyle.Render("q: quit")
	return s
}

// Run opens the watch view and blocks until the user quits it.
func Run(svc *tracker.Service) error {
	p := tea.NewProgram(NewModel(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
