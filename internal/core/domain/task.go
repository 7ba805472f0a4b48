package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Toggled returns the opposite status.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusCompleted {
		return TaskStatusPending
	}
	return TaskStatusCompleted
}

type TaskCategory string

const (
	TaskCategoryToday    TaskCategory = "today"
	TaskCategoryTomorrow TaskCategory = "tomorrow"
	TaskCategoryLater    TaskCategory = "later"
)

func (c TaskCategory) IsValid() bool {
	switch c {
	case TaskCategoryToday, TaskCategoryTomorrow, TaskCategoryLater:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityFocus  TaskPriority = "focus"
)

func (p TaskPriority) IsValid() bool {
	return p == TaskPriorityNormal || p == TaskPriorityFocus
}

// FocusViewLimit caps how many focus tasks the focus view surfaces,
// regardless of how many exist.
const FocusViewLimit = 3

type Reminder string

const (
	ReminderNone   Reminder = "none"
	Reminder30Min  Reminder = "30min"
	Reminder1Hour  Reminder = "1hour"
	Reminder2Hours Reminder = "2hours"
	Reminder1Day   Reminder = "1day"
	ReminderCustom Reminder = "custom"
)

func (r Reminder) IsValid() bool {
	switch r {
	case ReminderNone, Reminder30Min, Reminder1Hour, Reminder2Hours, Reminder1Day, ReminderCustom:
		return true
	default:
		return false
	}
}

// Offset returns the duration before a task's scheduled time at which a
// notification should fire. The second return value is false for reminders
// that never fire: "none" and "custom", which has no defined offset.
func (r Reminder) Offset() (time.Duration, bool) {
	switch r {
	case Reminder30Min:
		return 30 * time.Minute, true
	case Reminder1Hour:
		return time.Hour, true
	case Reminder2Hours:
		return 2 * time.Hour, true
	case Reminder1Day:
		return 24 * time.Hour, true
	default:
		return 0, false
	}
}

type SubTask struct {
	ID        string
	Title     string
	Completed bool
}

type Task struct {
	ID          string
	Title       string
	Description *string
	Time        *string // "HH:MM", 24-hour clock; nil means unscheduled
	Category    TaskCategory
	Priority    TaskPriority
	Status      TaskStatus
	Reminder    Reminder
	CreatedAt   time.Time
	Subtasks    []SubTask
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Time        *string
	Category    TaskCategory
	Priority    TaskPriority
	Reminder    Reminder
	Subtasks    []SubTask
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish
// "clear this field" from "leave it untouched" for optional fields.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Time           *string
	TimeSet        bool
	Category       *TaskCategory
	Priority       *TaskPriority
	Status         *TaskStatus
	Reminder       *Reminder
	ReminderSet    bool
}
