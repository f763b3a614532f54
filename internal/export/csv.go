package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/bnjuguna/momentum/internal/task"
)

// ToCSV writes one row per task.
func ToCSV(tasks []task.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Task", "Category", "Due Date", "Completed Date", "Priority", "Status", "Focus Mode"}); err != nil {
		return err
	}

	for _, t := range tasks {
		focus := "false"
		if t.FocusMode {
			focus = "true"
		}
		row := []string{
			t.ID,
			t.Name,
			t.Category,
			t.DueDate,
			t.CompletedDate,
			t.Priority,
			t.Status,
			focus,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
