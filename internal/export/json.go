package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bnjuguna/momentum/internal/stats"
	"github.com/bnjuguna/momentum/internal/task"
)

type jsonExport struct {
	ExportedAt string         `json:"exported_at"`
	Count      int            `json:"count"`
	Stats      jsonStats      `json:"stats"`
	Categories []jsonCategory `json:"categories"`
	Monthly    []jsonMonth    `json:"monthly"`
	Daily      map[string]int `json:"daily_activity"`
	Tasks      []jsonTask     `json:"tasks"`
}

type jsonStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	NotStarted     int `json:"not_started"`
	CompletionRate int `json:"completion_rate"`
	CurrentStreak  int `json:"current_streak"`
	LongestStreak  int `json:"longest_streak"`
	DaysActive     int `json:"days_active"`
	TotalDays      int `json:"total_days"`
}

type jsonCategory struct {
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	Incomplete int    `json:"incomplete"`
}

type jsonMonth struct {
	Month string `json:"month"`
	Tasks int    `json:"tasks"`
}

type jsonTask struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category,omitempty"`
	DueDate       string `json:"due_date,omitempty"`
	CompletedDate string `json:"completed_date,omitempty"`
	Priority      string `json:"priority,omitempty"`
	Status        string `json:"status,omitempty"`
	FocusMode     bool   `json:"focus_mode,omitempty"`
}

// ToJSON writes the task list together with the computed statistics.
func ToJSON(tasks []task.Task, res stats.Result, path string) error {
	s := res.Summary
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(tasks),
		Stats: jsonStats{
			Total:          s.Total,
			Completed:      s.Completed,
			InProgress:     s.InProgress,
			NotStarted:     s.NotStarted,
			CompletionRate: s.CompletionRate,
			CurrentStreak:  s.CurrentStreak,
			LongestStreak:  s.LongestStreak,
			DaysActive:     s.DaysActive,
			TotalDays:      s.TotalDays,
		},
		Daily: res.Activity.DailyCounts,
	}

	for _, c := range res.Categories {
		out.Categories = append(out.Categories, jsonCategory{Name: c.Name, Completed: c.Completed, Incomplete: c.Incomplete})
	}
	for _, m := range res.Monthly {
		out.Monthly = append(out.Monthly, jsonMonth{Month: m.Month, Tasks: m.Tasks})
	}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, jsonTask{
			ID:            t.ID,
			Name:          t.Name,
			Category:      t.Category,
			DueDate:       t.DueDate,
			CompletedDate: t.CompletedDate,
			Priority:      t.Priority,
			Status:        t.Status,
			FocusMode:     t.FocusMode,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
