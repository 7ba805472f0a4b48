package ports

import (
	"context"

	"github.com/AndrewAitken/simp/internal/core/domain"
)

// StateRepository persists the whole task collection as one durable blob,
// plus the first-visit marker that drives example-content seeding.
type StateRepository interface {
	LoadTasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error
	HasVisited(ctx context.Context) (bool, error)
	MarkVisited(ctx context.Context) error
}

type TaskService interface {
	ListTasks(ctx context.Context, category domain.TaskCategory) ([]domain.Task, error)
	ListFocusTasks(ctx context.Context) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) error
	DeleteTask(ctx context.Context, id string) error
	ToggleTaskStatus(ctx context.Context, id string) (domain.Task, error)

	AddSubtask(ctx context.Context, taskID, title string) (domain.Task, error)
	RemoveSubtask(ctx context.Context, taskID, subtaskID string) error
	ToggleSubtaskStatus(ctx context.Context, taskID, subtaskID string) (domain.Task, error)

	GenerateSubtasksList(text string) []domain.SubTask
	GenerateSubtasksForTask(ctx context.Context, taskID, text string) (domain.Task, error)
}
