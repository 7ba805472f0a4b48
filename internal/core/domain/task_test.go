package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AndrewAitken/simp/internal/core/domain"
)

func TestReminderOffsets(t *testing.T) {
	cases := []struct {
		reminder domain.Reminder
		offset   time.Duration
		defined  bool
	}{
		{domain.Reminder30Min, 30 * time.Minute, true},
		{domain.Reminder1Hour, time.Hour, true},
		{domain.Reminder2Hours, 2 * time.Hour, true},
		{domain.Reminder1Day, 24 * time.Hour, true},
		{domain.ReminderNone, 0, false},
		{domain.ReminderCustom, 0, false},
		{domain.Reminder(""), 0, false},
	}

	for _, tc := range cases {
		offset, ok := tc.reminder.Offset()
		require.Equal(t, tc.defined, ok, "reminder %q", tc.reminder)
		require.Equal(t, tc.offset, offset, "reminder %q", tc.reminder)
	}
}

func TestStatusToggled(t *testing.T) {
	require.Equal(t, domain.TaskStatusCompleted, domain.TaskStatusPending.Toggled())
	require.Equal(t, domain.TaskStatusPending, domain.TaskStatusCompleted.Toggled())
}

func TestEnumValidity(t *testing.T) {
	require.True(t, domain.TaskCategoryToday.IsValid())
	require.False(t, domain.TaskCategory("yesterday").IsValid())
	require.True(t, domain.TaskPriorityFocus.IsValid())
	require.False(t, domain.TaskPriority("urgent").IsValid())
	require.True(t, domain.ReminderCustom.IsValid())
	require.False(t, domain.Reminder("5min").IsValid())
}

func TestSeedTasks(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	n := 0
	tasks := domain.SeedTasks(now, func() string {
		n++
		return fmt.Sprintf("seed-%d", n)
	})

	require.Len(t, tasks, 6)

	seen := make(map[string]struct{})
	for _, task := range tasks {
		_, dup := seen[task.ID]
		require.False(t, dup, "duplicate seed id %s", task.ID)
		seen[task.ID] = struct{}{}

		require.NotEmpty(t, task.Title)
		require.True(t, task.Category.IsValid())
		require.True(t, task.Priority.IsValid())
		require.True(t, task.Status.IsValid())
		require.Empty(t, task.Subtasks)
	}
}
