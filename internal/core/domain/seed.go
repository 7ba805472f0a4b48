package domain

import "time"

func strPtr(s string) *string { return &s }

// SeedTasks returns the example tasks loaded on the very first run to
// onboard the user. Fresh ids come from newID so seeded content never
// collides with tasks created later.
func SeedTasks(now time.Time, newID func() string) []Task {
	return []Task{
		{
			ID:          newID(),
			Title:       "Record podcast video",
			Description: strPtr("Don't forget to ask confirmation with the guest from Stanford."),
			Time:        strPtr("15:30"),
			Category:    TaskCategoryToday,
			Priority:    TaskPriorityNormal,
			Status:      TaskStatusCompleted,
			Reminder:    ReminderNone,
			CreatedAt:   now,
		},
		{
			ID:        newID(),
			Title:     "Dinner with Anna",
			Time:      strPtr("19:00"),
			Category:  TaskCategoryToday,
			Priority:  TaskPriorityNormal,
			Status:    TaskStatusPending,
			Reminder:  ReminderNone,
			CreatedAt: now,
		},
		{
			ID:        newID(),
			Title:     "Write blog post",
			Category:  TaskCategoryToday,
			Priority:  TaskPriorityNormal,
			Status:    TaskStatusCompleted,
			Reminder:  ReminderNone,
			CreatedAt: now,
		},
		{
			ID:        newID(),
			Title:     "Send podcast script",
			Category:  TaskCategoryToday,
			Priority:  TaskPriorityNormal,
			Status:    TaskStatusCompleted,
			Reminder:  ReminderNone,
			CreatedAt: now,
		},
		{
			ID:        newID(),
			Title:     "Update Notion template",
			Category:  TaskCategoryTomorrow,
			Priority:  TaskPriorityNormal,
			Status:    TaskStatusPending,
			Reminder:  ReminderNone,
			CreatedAt: now,
		},
		{
			ID:        newID(),
			Title:     "Plan content calendar",
			Time:      strPtr("19:00"),
			Category:  TaskCategoryLater,
			Priority:  TaskPriorityNormal,
			Status:    TaskStatusPending,
			Reminder:  ReminderNone,
			CreatedAt: now.Add(7 * 24 * time.Hour),
		},
	}
}
