package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnjuguna/momentum/internal/stats"
)

type dashboardModel struct {
	width  int
	height int

	summary  stats.Summary
	source   dataSource
	syncedAt time.Time
}

func newDashboardModel() dashboardModel {
	return dashboardModel{}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d *dashboardModel) setData(msg tasksLoadedMsg) {
	d.summary = msg.result.Summary
	d.source = msg.source
	d.syncedAt = msg.syncedAt
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	return d, nil
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	statsPanel := d.renderStatCards(contentWidth)
	statusPanel := d.renderStatusOverview(contentWidth)
	sourceLine := d.renderSourceLine()

	return lipgloss.JoinVertical(lipgloss.Left, statsPanel, statusPanel, sourceLine)
}

type statCard struct {
	label string
	value string
	color lipgloss.Color
}

func (d dashboardModel) renderStatCards(w int) string {
	s := d.summary
	cards := []statCard{
		{"Total Tasks", fmt.Sprintf("%d", s.Total), colorPrimary},
		{"Completed", fmt.Sprintf("%d", s.Completed), colorSuccess},
		{"Completion Rate", fmt.Sprintf("%d%%", s.CompletionRate), colorSecondary},
		{"Current Streak", plural(s.CurrentStreak, "day"), colorWarning},
		{"Longest Streak", plural(s.LongestStreak, "day"), colorError},
		{"Days Active", fmt.Sprintf("%d/%d", s.DaysActive, s.TotalDays), colorPrimary},
	}

	perRow := 3
	if w < 66 {
		perRow = 2
	}
	cardWidth := w/perRow - 2
	if cardWidth < 14 {
		cardWidth = 14
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		var row []string
		for _, c := range cards[i:min(i+perRow, len(cards))] {
			value := statValueStyle.Foreground(c.color).Render(c.value)
			label := statLabelStyle.Render(c.label)
			row = append(row, panelStyle.Width(cardWidth).Render(
				lipgloss.JoinVertical(lipgloss.Left, value, label),
			))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (d dashboardModel) renderStatusOverview(w int) string {
	s := d.summary
	title := titleStyle.Render("Task Status Overview")

	if s.Total == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				title,
				mutedStyle.Render("No tasks yet. Press r to refresh."),
			),
		)
	}

	rows := []string{
		title,
		fmt.Sprintf("  %s %-14s %d", successStyle.Render("●"), "Completed", s.Completed),
		fmt.Sprintf("  %s %-14s %d", warningStyle.Render("●"), "In Progress", s.InProgress),
		fmt.Sprintf("  %s %-14s %d", errorStyle.Render("●"), "Not Started", s.NotStarted),
	}

	// Completion bar
	barWidth := min(w-8, 50)
	filled := 0
	if s.Total > 0 {
		filled = barWidth * s.CompletionRate / 100
	}
	bar := successStyle.Render(strings.Repeat("█", max(filled, 0))) + mutedStyle.Render(strings.Repeat("░", max(barWidth-filled, 0)))
	rows = append(rows, "", "  "+bar)

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderSourceLine() string {
	switch d.source {
	case sourceLive:
		return mutedStyle.Render("  synced " + d.syncedAt.Local().Format("Jan 02 15:04"))
	case sourceCache:
		return warningStyle.Render("  offline — snapshot from " + d.syncedAt.Local().Format("Jan 02 15:04"))
	default:
		return mutedStyle.Render("  no data")
	}
}

