package domain

import "time"

// TaskStatus tracks a journey task through its lifecycle. Under normal
// operation it is derived from subtask completion, not set directly.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Subtask is the leaf unit of work inside a category.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Category groups subtasks within a task. Collapsed is presentation state
// only and never feeds into status derivation.
type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtasks  []Subtask `json:"subtasks"`
	Collapsed bool      `json:"collapsed"`
}

// Task is one actionable item within a journey step. Deadline serializes as
// an RFC 3339 string, which is the round-trip format stored snapshots rely on.
type Task struct {
	ID          string     `json:"id"`
	StepID      string     `json:"step_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Categories  []Category `json:"categories"`
	Resources   []string   `json:"resources,omitempty"`
}

// Journey is the persisted snapshot of a user's task tree.
type Journey struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Tasks     []Task    `json:"tasks"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubtaskCounts returns the completed and total subtask counts across all
// categories of the task.
func (t *Task) SubtaskCounts() (completed, total int) {
	if t == nil {
		return 0, 0
	}
	for _, cat := range t.Categories {
		for _, st := range cat.Subtasks {
			total++
			if st.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// DerivedStatus computes the roll-up status from subtask completion. The
// second return value is false when the task has no subtasks at all, in which
// case the explicitly set status stands.
func (t *Task) DerivedStatus() (TaskStatus, bool) {
	completed, total := t.SubtaskCounts()
	if total == 0 {
		return "", false
	}
	switch {
	case completed == total:
		return StatusCompleted, true
	case completed > 0:
		return StatusInProgress, true
	default:
		return StatusPending, true
	}
}

// Clone returns a deep copy of the task so mutations never leak into a
// caller-held snapshot.
func (t Task) Clone() Task {
	out := t
	if t.Deadline != nil {
		d := *t.Deadline
		out.Deadline = &d
	}
	if t.Categories != nil {
		out.Categories = make([]Category, len(t.Categories))
		for i, cat := range t.Categories {
			c := cat
			if cat.Subtasks != nil {
				c.Subtasks = append([]Subtask(nil), cat.Subtasks...)
			}
			out.Categories[i] = c
		}
	}
	if t.Resources != nil {
		out.Resources = append([]string(nil), t.Resources...)
	}
	return out
}
