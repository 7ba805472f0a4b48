package dto

type SubtaskItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type TaskItem struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Time        *string       `json:"time,omitempty"`
	Category    string        `json:"category"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	Reminder    string        `json:"reminder,omitempty"`
	CreatedAt   string        `json:"created_at"`
	Subtasks    []SubtaskItem `json:"subtasks"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Time        *string `json:"time" binding:"omitempty,datetime=15:04"`
	Category    *string `json:"category" binding:"omitempty,oneof=today tomorrow later"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=normal focus"`
	Reminder    *string `json:"reminder" binding:"omitempty,oneof=none 30min 1hour 2hours 1day custom"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Time        *string `json:"time" binding:"omitempty,datetime=15:04"`
	Category    *string `json:"category" binding:"omitempty,oneof=today tomorrow later"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=normal focus"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending completed"`
	Reminder    *string `json:"reminder" binding:"omitempty,oneof=none 30min 1hour 2hours 1day custom"`
}

type AddSubtaskRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type GenerateSubtasksRequest struct {
	Text string `json:"text" binding:"required,max=65535"`
}

type NotificationItem struct {
	TaskID  string `json:"task_id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	FiredAt string `json:"fired_at"`
}
