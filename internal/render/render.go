package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/joaohenriqueluz/took/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	pausedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("196")).
				Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	currentTaskStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	markerCol = lipgloss.NewStyle().Width(2)
	nameCol   = lipgloss.NewStyle().Width(22)
	timeCol   = lipgloss.NewStyle().Width(18)
)

// Status renders the single current task, the active one when tracking is
// running or the most recently paused one otherwise. A nil snapshot means
// nothing is tracked yet.
func Status(snap *domain.Snapshot) string {
	if snap == nil {
		return "No task in progress.\n"
	}

	var sb strings.Builder
	sb.WriteString("Current Task: ")
	sb.WriteString(currentTaskStyle.Render(snap.Name))
	if snap.Status == domain.StatusActive {
		sb.WriteString(runningStyle.Render(" (in progress)"))
	} else {
		sb.WriteString(pausedStyle.Render(" (paused)"))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Time Spent: %s\n", FormatSeconds(snap.TotalSeconds))
	fmt.Fprintf(&sb, "Last Updated: %s\n", snap.LastUpdatedAt.Format(timestampLayout))
	return sb.String()
}

// TaskTable renders the registry overview for show-all. The task the user
// is on, active or most recently paused, carries a marker in the first
// column; done tasks are dimmed and prefixed so they read as history.
func TaskTable(snaps []domain.Snapshot) string {
	if len(snaps) == 0 {
		return "No tasks logged.\n"
	}

	current := currentRow(snaps)
	paused := true
	for _, snap := range snaps {
		if snap.Status == domain.StatusActive {
			paused = false
		}
	}

	var sb strings.Builder
	if paused {
		sb.WriteString(pausedPanelStyle.Render("Took Tasks (paused)"))
	} else {
		sb.WriteString(panelStyle.Render("Took Tasks"))
	}
	sb.WriteString("\n")

	sb.WriteString(markerCol.Render(""))
	sb.WriteString(headerStyle.Render(nameCol.Render("Task Name")))
	sb.WriteString(headerStyle.Render(timeCol.Render("Time Spent")))
	sb.WriteString(headerStyle.Render("Last Updated"))
	sb.WriteString("\n")

	for i, snap := range snaps {
		marker := ""
		name := snap.Name
		style := lipgloss.NewStyle()
		if i == current {
			marker = "*"
			style = currentTaskStyle
		}
		if snap.Status == domain.StatusDone {
			name = "(done) " + name
			style = doneStyle
		}
		sb.WriteString(markerCol.Render(marker))
		sb.WriteString(style.Render(nameCol.Render(name)))
		sb.WriteString(style.Render(timeCol.Render(FormatSeconds(snap.TotalSeconds))))
		sb.WriteString(style.Render(snap.LastUpdatedAt.Format(timestampLayout)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// currentRow picks the row to mark as the task the user is on: the active
// task when one is running, otherwise the most recently updated paused
// task. Done rows never qualify. Returns -1 when nothing does.
func currentRow(snaps []domain.Snapshot) int {
	cur := -1
	for i, snap := range snaps {
		switch snap.Status {
		case domain.StatusActive:
			return i
		case domain.StatusPaused:
			if cur == -1 || snap.LastUpdatedAt.After(snaps[cur].LastUpdatedAt) {
				cur = i
			}
		}
	}
	return cur
}

// TaskLog renders the per-day breakdown for one task.
func TaskLog(name string, days []domain.DayTotal) string {
	var sb strings.Builder
	sb.WriteString(panelStyle.Render("Task Log for: " + name))
	sb.WriteString("\n")
	if len(days) == 0 {
		sb.WriteString("No time recorded yet.\n")
		return sb.String()
	}

	sb.WriteString(headerStyle.Render(nameCol.Render("Date")))
	sb.WriteString(headerStyle.Render("Time Spent"))
	sb.WriteString("\n")
	for _, day := range days {
		sb.WriteString(nameCol.Render(day.Date))
		sb.WriteString(FormatSeconds(day.Seconds))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Report renders day sections with one proportional bar per task. Bars are
// scaled against the day's total, so the longest bar each day is the task
// that dominated it.
func Report(buckets []domain.DayBucket, days, barWidth int) string {
	var sb strings.Builder
	sb.WriteString(panelStyle.Render(fmt.Sprintf("Reports (Last %d Days)", days)))
	sb.WriteString("\n")
	if len(buckets) == 0 {
		sb.WriteString("No time recorded in this window.\n")
		return sb.String()
	}

	for _, bucket := range buckets {
		sb.WriteString(dateStyle.Render(bucket.Date))
		sb.WriteString("\n")
		total := bucket.Total()
		for _, entry := range bucket.Entries {
			bar := barStyle.Render(Bar(entry.Seconds, total, barWidth))
			fmt.Fprintf(&sb, "%s: %s %s\n", entry.Name, bar, FormatSeconds(entry.Seconds))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Timestamp formats an instant the way all took output does.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
