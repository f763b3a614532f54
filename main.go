package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnjuguna/momentum/internal/notion"
	"github.com/bnjuguna/momentum/internal/store"
	"github.com/bnjuguna/momentum/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	// Env override wins, then the stored setting, then the built-in proxy.
	sourceURL := os.Getenv("MOMENTUM_SOURCE_URL")
	if sourceURL == "" {
		sourceURL, _ = s.GetSetting("source_url")
	}

	app := tui.NewApp(s, notion.NewClient(sourceURL))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
