package journey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturewayfinder/backend/domain"
)

func seedTasks() []domain.Task {
	return []domain.Task{
		{
			ID:     "task-1",
			Title:  "Validate Your Idea",
			Status: domain.StatusPending,
			Categories: []domain.Category{
				{
					ID:    "cat-research",
					Title: "Research",
					Subtasks: []domain.Subtask{
						{ID: "st-1", Title: "Interview customers"},
						{ID: "st-2", Title: "Map competitors"},
					},
				},
				{
					ID:    "cat-experiment",
					Title: "Experiment",
					Subtasks: []domain.Subtask{
						{ID: "st-3", Title: "Publish landing page"},
					},
				},
			},
		},
		{
			ID:     "task-2",
			Title:  "Draft a Business Plan",
			Status: domain.StatusPending,
			Categories: []domain.Category{
				{ID: "cat-empty", Title: "Financials"},
			},
		},
	}
}

func taskByID(t *testing.T, tasks []domain.Task, id string) domain.Task {
	t.Helper()
	for _, task := range tasks {
		if task.ID == id {
			return task
		}
	}
	t.Fatalf("task %s not in snapshot", id)
	return domain.Task{}
}

func TestToggleSubtaskRollUp(t *testing.T) {
	tasks := seedTasks()

	tasks, err := ToggleSubtask(tasks, "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, taskByID(t, tasks, "task-1").Status)

	tasks, err = ToggleSubtask(tasks, "task-1", "cat-research", "st-2", true)
	require.NoError(t, err)
	tasks, err = ToggleSubtask(tasks, "task-1", "cat-experiment", "st-3", true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, taskByID(t, tasks, "task-1").Status)

	// Completion is not terminal: un-toggling one subtask drops back to
	// in-progress.
	tasks, err = ToggleSubtask(tasks, "task-1", "cat-experiment", "st-3", false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, taskByID(t, tasks, "task-1").Status)
}

func TestToggleSubtaskAllIncompleteIsPending(t *testing.T) {
	tasks := seedTasks()

	tasks, err := ToggleSubtask(tasks, "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)
	tasks, err = ToggleSubtask(tasks, "task-1", "cat-research", "st-1", false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, taskByID(t, tasks, "task-1").Status)
}

func TestToggleSubtaskNotFoundLeavesSnapshotUntouched(t *testing.T) {
	original := seedTasks()

	result, err := ToggleSubtask(original, "task-1", "cat-research", "st-missing", true)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "st-missing")
	assert.Equal(t, seedTasks(), result)
	assert.Equal(t, seedTasks(), original)
}

func TestToggleSubtaskUnknownTaskAndCategory(t *testing.T) {
	tasks := seedTasks()

	_, err := ToggleSubtask(tasks, "task-missing", "cat-research", "st-1", true)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "task-missing")

	_, err = ToggleSubtask(tasks, "task-1", "cat-missing", "st-1", true)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Contains(t, err.Error(), "cat-missing")
}

func TestToggleSubtaskDoesNotMutateOtherTasks(t *testing.T) {
	tasks := seedTasks()

	mutated, err := ToggleSubtask(tasks, "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)

	// The untouched task keeps its original backing data.
	assert.Equal(t, taskByID(t, tasks, "task-2"), taskByID(t, mutated, "task-2"))
	// The input snapshot still shows the subtask incomplete.
	assert.False(t, tasks[0].Categories[0].Subtasks[0].Completed)
}

func TestAddSubtaskStartsWork(t *testing.T) {
	tasks := seedTasks()

	// task-2 has no subtasks at all; adding the first one starts work.
	tasks, err := AddSubtask(tasks, "task-2", "cat-empty", "Estimate startup costs")
	require.NoError(t, err)

	task := taskByID(t, tasks, "task-2")
	assert.Equal(t, domain.StatusInProgress, task.Status)
	require.Len(t, task.Categories[0].Subtasks, 1)
	st := task.Categories[0].Subtasks[0]
	assert.Equal(t, "Estimate startup costs", st.Title)
	assert.False(t, st.Completed)
	assert.NotEmpty(t, st.ID)
}

func TestAddSubtaskRecomputesExistingTask(t *testing.T) {
	tasks := seedTasks()

	tasks, err := ToggleSubtask(tasks, "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)
	tasks, err = ToggleSubtask(tasks, "task-1", "cat-research", "st-2", true)
	require.NoError(t, err)
	tasks, err = ToggleSubtask(tasks, "task-1", "cat-experiment", "st-3", true)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, taskByID(t, tasks, "task-1").Status)

	// A completed task gains an incomplete subtask and rolls back to
	// in-progress.
	tasks, err = AddSubtask(tasks, "task-1", "cat-experiment", "Collect signups")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, taskByID(t, tasks, "task-1").Status)
}

func TestAddSubtaskUnknownCategory(t *testing.T) {
	_, err := AddSubtask(seedTasks(), "task-1", "cat-missing", "anything")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestRemoveSubtaskRecomputesAcrossCategories(t *testing.T) {
	tasks := seedTasks()

	tasks, err := ToggleSubtask(tasks, "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)
	tasks, err = ToggleSubtask(tasks, "task-1", "cat-research", "st-2", true)
	require.NoError(t, err)

	// Removing the only incomplete subtask leaves two completed ones: the
	// roll-up spans all categories and lands on completed.
	tasks, err = RemoveSubtask(tasks, "task-1", "cat-experiment", "st-3")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, taskByID(t, tasks, "task-1").Status)
}

func TestRemoveLastSubtaskResetsToPending(t *testing.T) {
	tasks := seedTasks()

	tasks, err := ToggleSubtask(tasks, "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)

	for _, ref := range []struct{ cat, st string }{
		{"cat-research", "st-1"},
		{"cat-research", "st-2"},
		{"cat-experiment", "st-3"},
	} {
		tasks, err = RemoveSubtask(tasks, "task-1", ref.cat, ref.st)
		require.NoError(t, err)
	}
	assert.Equal(t, domain.StatusPending, taskByID(t, tasks, "task-1").Status)
}

func TestRemoveAbsentSubtaskIsAnError(t *testing.T) {
	original := seedTasks()

	result, err := RemoveSubtask(original, "task-1", "cat-research", "st-gone")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Equal(t, seedTasks(), result)
}

func TestToggleCategoryCollapsedNeverTouchesStatus(t *testing.T) {
	tasks := seedTasks()

	tasks, err := ToggleCategoryCollapsed(tasks, "task-1", "cat-research")
	require.NoError(t, err)
	task := taskByID(t, tasks, "task-1")
	assert.True(t, task.Categories[0].Collapsed)
	assert.Equal(t, domain.StatusPending, task.Status)

	tasks, err = ToggleCategoryCollapsed(tasks, "task-1", "cat-research")
	require.NoError(t, err)
	assert.False(t, taskByID(t, tasks, "task-1").Categories[0].Collapsed)
}

func TestSetDeadline(t *testing.T) {
	tasks := seedTasks()
	deadline := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tasks, err := SetDeadline(tasks, "task-2", &deadline)
	require.NoError(t, err)
	task := taskByID(t, tasks, "task-2")
	require.NotNil(t, task.Deadline)
	assert.True(t, task.Deadline.Equal(deadline))
	// A deadline change never touches status.
	assert.Equal(t, domain.StatusPending, task.Status)

	tasks, err = SetDeadline(tasks, "task-2", nil)
	require.NoError(t, err)
	assert.Nil(t, taskByID(t, tasks, "task-2").Deadline)
}

func TestSetStatusExplicit(t *testing.T) {
	tasks := seedTasks()

	tasks, err := SetStatusExplicit(tasks, "task-2", domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, taskByID(t, tasks, "task-2").Status)

	// A subtask-less task keeps the explicit status through non-subtask
	// mutations.
	deadline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks, err = SetDeadline(tasks, "task-2", &deadline)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, taskByID(t, tasks, "task-2").Status)

	_, err = SetStatusExplicit(tasks, "task-2", "archived")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestExplicitStatusYieldsToNextRollUp(t *testing.T) {
	tasks := seedTasks()

	tasks, err := SetStatusExplicit(tasks, "task-1", domain.StatusCompleted)
	require.NoError(t, err)

	// The next subtask toggle re-derives status from actual completion.
	tasks, err = ToggleSubtask(tasks, "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, taskByID(t, tasks, "task-1").Status)
}
