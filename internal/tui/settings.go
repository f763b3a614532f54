package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnjuguna/momentum/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	sourceURL   *string
	defaultView *string
}

func newSettingsModel(s *store.Store) settingsModel {
	su, dv := "", ""
	return settingsModel{
		store:       s,
		sourceURL:   &su,
		defaultView: &dv,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	// Load current values
	*s.sourceURL = s.getVal("source_url", "")
	*s.defaultView = s.getVal("default_view", "dashboard")

	viewOptions := make([]huh.Option[string], len(viewNames))
	for i, n := range viewNames {
		viewOptions[i] = huh.NewOption(n, strings.ToLower(n))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data source URL").
				Description("Leave empty for the built-in proxy").
				Value(s.sourceURL),
			huh.NewSelect[string]().
				Title("Default view").
				Options(viewOptions...).
				Value(s.defaultView),
		).Title("Momentum"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, keys.Back) {
		s.formActive = false
		s.form = nil
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.save()
	}
	return s, cmd
}

func (s settingsModel) save() tea.Cmd {
	url := strings.TrimSpace(*s.sourceURL)
	view := *s.defaultView
	return func() tea.Msg {
		if err := s.store.SetSetting("source_url", url); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		if err := s.store.SetSetting("default_view", view); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return settingsSavedMsg{}
	}
}

func (s settingsModel) getVal(k, fallback string) string {
	for _, setting := range s.settings {
		if setting.Key == k {
			if setting.Value == "" {
				return fallback
			}
			return setting.Value
		}
	}
	return fallback
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return activePanelStyle.Width(w).Render(s.form.View())
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")

	for _, setting := range s.settings {
		if setting.Key == "last_synced" {
			continue
		}
		value := setting.Value
		if value == "" {
			value = mutedStyle.Render("(default)")
		}
		rows = append(rows, fmt.Sprintf("  %-14s %s", setting.Key, value))
	}

	if synced := s.getVal("last_synced", ""); synced != "" {
		rows = append(rows, "", mutedStyle.Render("  last synced "+synced))
	}

	rows = append(rows, "", mutedStyle.Render("  enter: edit"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
