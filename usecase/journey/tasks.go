package journey

import (
	"time"

	"github.com/google/uuid"

	"github.com/venturewayfinder/backend/domain"
)

// The functions in this file are pure transforms over a task snapshot. Each
// returns a new slice in which only the targeted task is replaced; untouched
// tasks keep their original backing arrays. On any error the input snapshot
// is returned unchanged, so a failed mutation never leaks partial state.

// ToggleSubtask sets the completion flag of one subtask and recomputes the
// owning task's status from the roll-up rule.
func ToggleSubtask(tasks []domain.Task, taskID, categoryID, subtaskID string, completed bool) ([]domain.Task, error) {
	return mutateTask(tasks, taskID, func(task *domain.Task) error {
		cat, err := findCategory(task, categoryID)
		if err != nil {
			return err
		}
		st, err := findSubtask(cat, subtaskID)
		if err != nil {
			return err
		}
		st.Completed = completed
		rollUp(task)
		return nil
	})
}

// AddSubtask appends a fresh, incomplete subtask to the named category. A
// pending task with no prior subtasks moves to in-progress: adding the first
// subtask is how work on a task starts.
func AddSubtask(tasks []domain.Task, taskID, categoryID, title string) ([]domain.Task, error) {
	return mutateTask(tasks, taskID, func(task *domain.Task) error {
		cat, err := findCategory(task, categoryID)
		if err != nil {
			return err
		}
		_, hadSubtasks := task.SubtaskCounts()
		cat.Subtasks = append(cat.Subtasks, domain.Subtask{
			ID:    uuid.NewString(),
			Title: title,
		})
		if hadSubtasks == 0 && task.Status == domain.StatusPending {
			task.Status = domain.StatusInProgress
			return nil
		}
		rollUp(task)
		return nil
	})
}

// RemoveSubtask deletes one subtask and recomputes status across all
// remaining subtasks of the task. Removing the last subtask resets the task
// to pending. Removing an absent subtask is an error, not a no-op.
func RemoveSubtask(tasks []domain.Task, taskID, categoryID, subtaskID string) ([]domain.Task, error) {
	return mutateTask(tasks, taskID, func(task *domain.Task) error {
		cat, err := findCategory(task, categoryID)
		if err != nil {
			return err
		}
		idx := -1
		for i := range cat.Subtasks {
			if cat.Subtasks[i].ID == subtaskID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.NewErrorf(domain.ErrCodeNotFound, "subtask %q not found in category %q", subtaskID, categoryID)
		}
		cat.Subtasks = append(cat.Subtasks[:idx], cat.Subtasks[idx+1:]...)

		if _, total := task.SubtaskCounts(); total == 0 {
			task.Status = domain.StatusPending
			return nil
		}
		rollUp(task)
		return nil
	})
}

// ToggleCategoryCollapsed flips the presentation-only collapsed flag. Status
// is never affected.
func ToggleCategoryCollapsed(tasks []domain.Task, taskID, categoryID string) ([]domain.Task, error) {
	return mutateTask(tasks, taskID, func(task *domain.Task) error {
		cat, err := findCategory(task, categoryID)
		if err != nil {
			return err
		}
		cat.Collapsed = !cat.Collapsed
		return nil
	})
}

// SetDeadline replaces the task deadline; a nil deadline clears it.
func SetDeadline(tasks []domain.Task, taskID string, deadline *time.Time) ([]domain.Task, error) {
	return mutateTask(tasks, taskID, func(task *domain.Task) error {
		if deadline == nil {
			task.Deadline = nil
			return nil
		}
		d := *deadline
		task.Deadline = &d
		return nil
	})
}

// SetStatusExplicit assigns a status directly, bypassing the roll-up rule.
// It exists for tasks without subtasks and for forced state changes; the next
// subtask toggle re-derives the status regardless.
func SetStatusExplicit(tasks []domain.Task, taskID string, status domain.TaskStatus) ([]domain.Task, error) {
	if !status.IsValid() {
		return tasks, domain.NewErrorf(domain.ErrCodeInvalid, "unrecognized task status %q", string(status))
	}
	return mutateTask(tasks, taskID, func(task *domain.Task) error {
		task.Status = status
		return nil
	})
}

// mutateTask locates the task, applies fn to a deep copy, and splices the
// copy into a new slice. fn returning an error discards the copy.
func mutateTask(tasks []domain.Task, taskID string, fn func(*domain.Task) error) ([]domain.Task, error) {
	idx := -1
	for i := range tasks {
		if tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return tasks, domain.NewErrorf(domain.ErrCodeNotFound, "task %q not found", taskID)
	}

	task := tasks[idx].Clone()
	if err := fn(&task); err != nil {
		return tasks, err
	}

	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	out[idx] = task
	return out, nil
}

func findCategory(task *domain.Task, categoryID string) (*domain.Category, error) {
	for i := range task.Categories {
		if task.Categories[i].ID == categoryID {
			return &task.Categories[i], nil
		}
	}
	return nil, domain.NewErrorf(domain.ErrCodeNotFound, "category %q not found in task %q", categoryID, task.ID)
}

func findSubtask(cat *domain.Category, subtaskID string) (*domain.Subtask, error) {
	for i := range cat.Subtasks {
		if cat.Subtasks[i].ID == subtaskID {
			return &cat.Subtasks[i], nil
		}
	}
	return nil, domain.NewErrorf(domain.ErrCodeNotFound, "subtask %q not found in category %q", subtaskID, cat.ID)
}

// rollUp applies the derived-status invariant. Tasks without subtasks keep
// their explicitly set status.
func rollUp(task *domain.Task) {
	if derived, ok := task.DerivedStatus(); ok {
		task.Status = derived
	}
}
