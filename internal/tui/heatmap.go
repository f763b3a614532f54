package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnjuguna/momentum/internal/stats"
)

const heatmapCell = "■"

type heatmapModel struct {
	width  int
	height int

	weeks      [][]stats.HeatmapDay
	daysActive int
}

func newHeatmapModel() heatmapModel {
	return heatmapModel{}
}

func (h *heatmapModel) setSize(w, hh int) {
	h.width = w
	h.height = hh
}

func (h *heatmapModel) setData(res stats.Result) {
	h.weeks = stats.Weeks(res.Activity.DailyCounts)
	h.daysActive = res.Summary.DaysActive
}

func (h heatmapModel) update(msg tea.Msg) (heatmapModel, tea.Cmd) {
	return h, nil
}

func (h heatmapModel) view() string {
	w := h.width - 4

	title := titleStyle.Render("Activity Heatmap")

	if len(h.weeks) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				title,
				mutedStyle.Render("No completed tasks with due dates yet"),
			),
		)
	}

	// Only the most recent columns fit; two screen cells per week column.
	maxCols := max((w-8)/2, 4)
	weeks := h.weeks
	if len(weeks) > maxCols {
		weeks = weeks[len(weeks)-maxCols:]
	}

	grid := h.renderGrid(weeks)
	months := h.renderMonthLabels(weeks)
	legend := h.renderLegend()
	summary := mutedStyle.Render("  " + plural(h.daysActive, "active day"))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", months, grid, "", legend, summary),
	)
}

// renderGrid draws one row per weekday and one column per week. A week
// column may start mid-week, so cells are positioned by their weekday.
func (h heatmapModel) renderGrid(weeks [][]stats.HeatmapDay) string {
	rows := make([][]string, 7)
	for i := range rows {
		rows[i] = make([]string, len(weeks))
		for j := range rows[i] {
			rows[i][j] = " "
		}
	}

	for col, week := range weeks {
		for _, day := range week {
			d, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				continue
			}
			style := heatmapStyles[stats.LevelFor(day.Count)]
			rows[int(d.Weekday())][col] = style.Render(heatmapCell)
		}
	}

	dayLabels := []string{"   ", "Mon", "   ", "Wed", "   ", "Fri", "   "}
	var lines []string
	for i, row := range rows {
		lines = append(lines, mutedStyle.Render(dayLabels[i])+" "+strings.Join(row, " "))
	}
	return strings.Join(lines, "\n")
}

// renderMonthLabels marks each column whose first day starts a new month.
func (h heatmapModel) renderMonthLabels(weeks [][]stats.HeatmapDay) string {
	var b strings.Builder
	b.WriteString("    ")
	prevMonth := time.Month(0)
	skip := 0
	for i, week := range weeks {
		if skip > 0 {
			skip--
			continue
		}
		if len(week) > 0 && i < len(weeks)-1 {
			if d, err := time.Parse("2006-01-02", week[0].Date); err == nil && d.Month() != prevMonth {
				prevMonth = d.Month()
				b.WriteString(d.Format("Jan") + " ") // spans two column slots
				skip = 1
				continue
			}
		}
		b.WriteString("  ")
	}
	return mutedStyle.Render(b.String())
}

func (h heatmapModel) renderLegend() string {
	levels := []stats.Level{stats.LevelNone, stats.LevelLow, stats.LevelMedium, stats.LevelHigh, stats.LevelMax}
	var cells []string
	for _, lv := range levels {
		cells = append(cells, heatmapStyles[lv].Render(heatmapCell))
	}
	return mutedStyle.Render("  less ") + strings.Join(cells, " ") + mutedStyle.Render(" more")
}
