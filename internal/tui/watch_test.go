package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joaohenriqueluz/took/internal/app/tracker"
	"github.com/joaohenriqueluz/took/internal/infra/store"
)

func seededService(t *testing.T) *tracker.Service {
	t.Helper()
	svc := tracker.NewService(store.New(t.TempDir(), "took.json", 2*time.Second))
	if _, err := svc.Start(context.Background(), "deep-work", time.Now().Add(-30*time.Minute)); err != nil {
		t.Fatalf("seed Start() error = %v", err)
	}
	return svc
}

func TestModel_ViewShowsCurrentTask(t *testing.T) {
	m := NewModel(seededService(t))

	view := m.View()
	if !strings.Contains(view, "deep-work") {
		t.Errorf("View() = %q, want current task name", view)
	}
	if !strings.Contains(view, "(in progress)") {
		t.Errorf("View() = %q, want running marker", view)
	}
}

func TestModel_TickRefreshesAndReschedules(t *testing.T) {
	svc := seededService(t)
	m := NewModel(svc)

	if _, err := svc.Pause(context.Background(), "deep-work", time.Now()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}

	updated, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	view := updated.View()
	if !strings.Contains(view, "(paused)") {
		t.Errorf("View() after external pause = %q, want paused marker", view)
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := NewModel(seededService(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q command returned %T, want tea.QuitMsg", cmd())
	}
}
