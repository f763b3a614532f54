package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnjuguna/momentum/internal/stats"
)

type reportsModel struct {
	width  int
	height int

	monthly    []stats.MonthCount
	categories []stats.CategoryCount

	chart barchart.Model
}

func newReportsModel() reportsModel {
	return reportsModel{
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
	r.buildChart()
}

func (r *reportsModel) setData(res stats.Result) {
	r.monthly = res.Monthly
	r.categories = res.Categories
	r.buildChart()
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	return r, nil
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if r.height > 30 {
		chartHeight = 14
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, m := range r.monthly {
		bars = append(bars, barchart.BarData{
			Label: m.Month,
			Values: []barchart.BarValue{{
				Name:  m.Month,
				Value: float64(m.Tasks),
				Style: lipgloss.NewStyle().Foreground(colorPrimary),
			}},
		})
	}
	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "—",
			Values: []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		}}
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	monthlyPanel := panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Tasks by Month"),
			"",
			r.chart.View(),
		),
	)

	categoryPanel := panelStyle.Width(w).Render(r.renderCategories(w))

	return lipgloss.JoinVertical(lipgloss.Left, monthlyPanel, categoryPanel)
}

func (r reportsModel) renderCategories(w int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Category Distribution"))
	rows = append(rows, "")

	if len(r.categories) == 0 {
		rows = append(rows, mutedStyle.Render("  No data"))
		return strings.Join(rows, "\n")
	}

	header := mutedStyle.Render(fmt.Sprintf("  %-14s %10s %12s", "Category", "Completed", "Incomplete"))
	rows = append(rows, header)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 38))))

	for _, c := range r.categories {
		dot := lipgloss.NewStyle().Foreground(categoryColors[c.Name]).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %-12s %10d %12d", dot, c.Name, c.Completed, c.Incomplete))
	}

	return strings.Join(rows, "\n")
}
