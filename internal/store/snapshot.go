package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bnjuguna/momentum/internal/task"
)

// SaveSnapshot replaces the cached task list with the given fetch result and
// records the sync time. The swap is transactional so a failed save never
// leaves a half-written snapshot behind.
func (s *Store) SaveSnapshot(tasks []task.Task, syncedAt time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO tasks (id, name, category, completed_date, due_date, priority, status, focus_mode)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range tasks {
		focus := 0
		if t.FocusMode {
			focus = 1
		}
		if _, err := stmt.Exec(t.ID, t.Name, t.Category, t.CompletedDate, t.DueDate, t.Priority, t.Status, focus); err != nil {
			return fmt.Errorf("insert task %q: %w", t.ID, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO settings (key, value) VALUES ('last_synced', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		syncedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("record sync time: %w", err)
	}

	return tx.Commit()
}

// LoadSnapshot returns the cached task list, empty when nothing has been
// synced yet.
func (s *Store) LoadSnapshot() ([]task.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, name, category, completed_date, due_date, priority, status, focus_mode
		 FROM tasks ORDER BY due_date, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var focus int
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.CompletedDate, &t.DueDate, &t.Priority, &t.Status, &focus); err != nil {
			return nil, err
		}
		t.FocusMode = focus == 1
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// LastSynced reports when the snapshot was last written; ok is false when no
// sync has happened.
func (s *Store) LastSynced() (time.Time, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = 'last_synced'`).Scan(&value)
	if err == sql.ErrNoRows || value == "" {
		return time.Time{}, false
	}
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
