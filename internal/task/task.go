package task

// Status values as stored in the Notion database. Matching is exact; a task
// with any other status stays out of every status bucket but still counts
// toward the total.
const (
	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
	StatusNotStarted = "Not Started"
)

// Categories is the fixed category order used by the category rollup and the
// reports view. Tasks with a category outside this list are ignored by the
// rollup but still count toward global totals.
var Categories = []string{"Work", "Learning", "Programming", "Personal", "Admin"}

// Task is one tracked item from the Notion database.
type Task struct {
	ID            string
	Name          string
	Category      string
	CompletedDate string // YYYY-MM-DD, informational only
	DueDate       string // YYYY-MM-DD, drives all date-based statistics
	Priority      string
	Status        string
	FocusMode     bool
}

func (t Task) Completed() bool { return t.Status == StatusCompleted }

// Partition splits tasks into the three recognized status buckets.
func Partition(tasks []Task) (completed, inProgress, notStarted []Task) {
	for _, t := range tasks {
		switch t.Status {
		case StatusCompleted:
			completed = append(completed, t)
		case StatusInProgress:
			inProgress = append(inProgress, t)
		case StatusNotStarted:
			notStarted = append(notStarted, t)
		}
	}
	return completed, inProgress, notStarted
}
