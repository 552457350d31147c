package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneySnapshotRoundTrip(t *testing.T) {
	deadline := time.Date(2026, 2, 28, 18, 30, 0, 0, time.UTC)
	original := Journey{
		ID:     "journey-1",
		UserID: "user-1",
		Tasks: []Task{
			{
				ID:       "task-1",
				StepID:   "idea-validation",
				Title:    "Validate Your Idea",
				Status:   StatusInProgress,
				Deadline: &deadline,
				Categories: []Category{
					{
						ID:        "cat-1",
						Title:     "Research",
						Collapsed: true,
						Subtasks: []Subtask{
							{ID: "st-1", Title: "Interview customers", Completed: true},
							{ID: "st-2", Title: "Map competitors"},
						},
					},
				},
				Resources: []string{"The Mom Test"},
			},
			{
				ID:     "task-2",
				Title:  "Draft a Business Plan",
				Status: StatusPending,
			},
		},
		UpdatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(original)
	require.NoError(t, err)

	// Deadlines cross the storage boundary as RFC 3339 strings.
	assert.Contains(t, string(payload), `"deadline":"2026-02-28T18:30:00Z"`)

	var decoded Journey
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, original, decoded)
}

func TestTaskDerivedStatus(t *testing.T) {
	tests := []struct {
		name      string
		completed []bool
		want      TaskStatus
		derivable bool
	}{
		{"no subtasks", nil, "", false},
		{"none complete", []bool{false, false}, StatusPending, true},
		{"some complete", []bool{true, false}, StatusInProgress, true},
		{"all complete", []bool{true, true, true}, StatusCompleted, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{ID: "t", Categories: []Category{{ID: "c"}}}
			for i, done := range tt.completed {
				task.Categories[0].Subtasks = append(task.Categories[0].Subtasks, Subtask{
					ID:        string(rune('a' + i)),
					Completed: done,
				})
			}
			got, ok := task.DerivedStatus()
			assert.Equal(t, tt.derivable, ok)
			if tt.derivable {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTaskCloneIsDeep(t *testing.T) {
	deadline := time.Now()
	task := Task{
		ID:       "task-1",
		Deadline: &deadline,
		Categories: []Category{
			{ID: "cat-1", Subtasks: []Subtask{{ID: "st-1"}}},
		},
		Resources: []string{"a"},
	}

	clone := task.Clone()
	clone.Categories[0].Subtasks[0].Completed = true
	*clone.Deadline = deadline.Add(time.Hour)
	clone.Resources[0] = "b"

	assert.False(t, task.Categories[0].Subtasks[0].Completed)
	assert.True(t, task.Deadline.Equal(deadline))
	assert.Equal(t, "a", task.Resources[0])
}
