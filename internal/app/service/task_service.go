package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AndrewAitken/simp/internal/core/domain"
	"github.com/AndrewAitken/simp/internal/core/ports"
)

// TaskService is the single source of truth for the task collection. All
// mutation goes through it; every mutating operation re-serializes the whole
// collection to the state repository as a best-effort side effect.
type TaskService struct {
	mu    sync.Mutex
	tasks []domain.Task

	repo  ports.StateRepository
	newID func() string
	now   func() time.Time

	// generationDelay models the round-trip of a future remote subtask
	// generator. Zero in tests.
	generationDelay time.Duration
}

type Option func(*TaskService)

func WithIDGenerator(newID func() string) Option {
	return func(s *TaskService) { s.newID = newID }
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) { s.now = now }
}

func WithGenerationDelay(d time.Duration) Option {
	return func(s *TaskService) { s.generationDelay = d }
}

// NewTaskService loads the persisted collection, or seeds the example tasks
// when the first-visit marker has never been set. An unreadable blob degrades
// to an empty collection rather than failing startup.
func NewTaskService(ctx context.Context, repo ports.StateRepository, opts ...Option) (*TaskService, error) {
	s := &TaskService{
		repo:  repo,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	visited, err := repo.HasVisited(ctx)
	if err != nil {
		return nil, err
	}

	if !visited {
		s.tasks = domain.SeedTasks(s.now(), s.newID)
		if err := repo.MarkVisited(ctx); err != nil {
			return nil, err
		}
		s.persist(ctx)
		return s, nil
	}

	tasks, err := repo.LoadTasks(ctx)
	if err != nil {
		zap.L().Warn("failed to load persisted tasks, starting empty", zap.Error(err))
		tasks = nil
	}
	s.tasks = tasks
	return s, nil
}

var _ ports.TaskService = (*TaskService)(nil)

// ListTasks returns tasks in insertion order, optionally filtered by
// category. An empty category returns everything.
func (s *TaskService) ListTasks(_ context.Context, category domain.TaskCategory) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if category != "" && task.Category != category {
			continue
		}
		out = append(out, cloneTask(task))
	}
	return out, nil
}

// ListFocusTasks returns pending focus tasks, capped at the focus view limit.
func (s *TaskService) ListFocusTasks(_ context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, 0, domain.FocusViewLimit)
	for _, task := range s.tasks {
		if task.Priority != domain.TaskPriorityFocus || task.Status != domain.TaskStatusPending {
			continue
		}
		out = append(out, cloneTask(task))
		if len(out) == domain.FocusViewLimit {
			break
		}
	}
	return out, nil
}

func (s *TaskService) GetTaskByID(_ context.Context, id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.ID == id {
			return cloneTask(task), nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}

	task := domain.Task{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Time:        input.Time,
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      domain.TaskStatusPending,
		Reminder:    input.Reminder,
		CreatedAt:   s.now(),
		Subtasks:    append([]domain.SubTask(nil), input.Subtasks...),
	}
	if task.Category == "" {
		task.Category = domain.TaskCategoryToday
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityNormal
	}
	if task.Reminder == "" {
		task.Reminder = domain.ReminderNone
	}

	s.mu.Lock()
	s.tasks = append(cloneTasks(s.tasks), task)
	s.mu.Unlock()

	s.persist(ctx)
	return cloneTask(task), nil
}

// UpdateTask merges the given fields into the matching task. An unknown id is
// a silent no-op: the edit screen resolves the id through GetTaskByID first.
func (s *TaskService) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) error {
	s.mu.Lock()
	updated := false
	next := cloneTasks(s.tasks)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		applyUpdate(&next[i], input)
		updated = true
		break
	}
	if updated {
		s.tasks = next
	}
	s.mu.Unlock()

	if updated {
		s.persist(ctx)
	}
	return nil
}

// DeleteTask removes the task and its subtasks as one unit. Unknown ids are
// a silent no-op, which makes deletion idempotent.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	removed := false
	next := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.ID == id {
			removed = true
			continue
		}
		next = append(next, cloneTask(task))
	}
	if removed {
		s.tasks = next
	}
	s.mu.Unlock()

	if removed {
		s.persist(ctx)
	}
	return nil
}

func (s *TaskService) ToggleTaskStatus(ctx context.Context, id string) (domain.Task, error) {
	s.mu.Lock()
	var toggled domain.Task
	found := false
	next := cloneTasks(s.tasks)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		next[i].Status = next[i].Status.Toggled()
		toggled = cloneTask(next[i])
		found = true
		break
	}
	if found {
		s.tasks = next
	}
	s.mu.Unlock()

	if !found {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	s.persist(ctx)
	return toggled, nil
}

// AddSubtask appends a new subtask to the named task. A blank title leaves
// the collection unchanged.
func (s *TaskService) AddSubtask(ctx context.Context, taskID, title string) (domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}

	subtask := domain.SubTask{ID: s.newID(), Title: title}

	s.mu.Lock()
	var updated domain.Task
	found := false
	next := cloneTasks(s.tasks)
	for i := range next {
		if next[i].ID != taskID {
			continue
		}
		next[i].Subtasks = append(next[i].Subtasks, subtask)
		updated = cloneTask(next[i])
		found = true
		break
	}
	if found {
		s.tasks = next
	}
	s.mu.Unlock()

	if !found {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	s.persist(ctx)
	return updated, nil
}

// RemoveSubtask is a silent no-op when either id is unknown.
func (s *TaskService) RemoveSubtask(ctx context.Context, taskID, subtaskID string) error {
	s.mu.Lock()
	removed := false
	next := cloneTasks(s.tasks)
	for i := range next {
		if next[i].ID != taskID {
			continue
		}
		subtasks := make([]domain.SubTask, 0, len(next[i].Subtasks))
		for _, sub := range next[i].Subtasks {
			if sub.ID == subtaskID {
				removed = true
				continue
			}
			subtasks = append(subtasks, sub)
		}
		next[i].Subtasks = subtasks
		break
	}
	if removed {
		s.tasks = next
	}
	s.mu.Unlock()

	if removed {
		s.persist(ctx)
	}
	return nil
}

func (s *TaskService) ToggleSubtaskStatus(ctx context.Context, taskID, subtaskID string) (domain.Task, error) {
	s.mu.Lock()
	var updated domain.Task
	foundTask := false
	foundSubtask := false
	next := cloneTasks(s.tasks)
	for i := range next {
		if next[i].ID != taskID {
			continue
		}
		foundTask = true
		for j := range next[i].Subtasks {
			if next[i].Subtasks[j].ID != subtaskID {
				continue
			}
			next[i].Subtasks[j].Completed = !next[i].Subtasks[j].Completed
			foundSubtask = true
			break
		}
		updated = cloneTask(next[i])
		break
	}
	if foundSubtask {
		s.tasks = next
	}
	s.mu.Unlock()

	if !foundTask {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if !foundSubtask {
		return domain.Task{}, domain.ErrSubtaskNotFound
	}
	s.persist(ctx)
	return updated, nil
}

// GenerateSubtasksForTask runs the subtask classifier after the artificial
// generation delay and appends the result to the named task. If the task is
// deleted while generation is pending the append degrades to a no-op.
func (s *TaskService) GenerateSubtasksForTask(ctx context.Context, taskID, text string) (domain.Task, error) {
	if _, err := s.GetTaskByID(ctx, taskID); err != nil {
		return domain.Task{}, err
	}

	generated := s.GenerateSubtasksList(text)

	if s.generationDelay > 0 {
		select {
		case <-time.After(s.generationDelay):
		case <-ctx.Done():
			return domain.Task{}, ctx.Err()
		}
	}

	s.mu.Lock()
	var updated domain.Task
	found := false
	next := cloneTasks(s.tasks)
	for i := range next {
		if next[i].ID != taskID {
			continue
		}
		next[i].Subtasks = append(next[i].Subtasks, generated...)
		updated = cloneTask(next[i])
		found = true
		break
	}
	if found {
		s.tasks = next
	}
	s.mu.Unlock()

	if !found {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	s.persist(ctx)
	return updated, nil
}

// Snapshot returns a copy of the whole collection for read-only consumers
// such as the reminder scheduler.
func (s *TaskService) Snapshot() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

func (s *TaskService) persist(ctx context.Context) {
	s.mu.Lock()
	snapshot := cloneTasks(s.tasks)
	s.mu.Unlock()

	if err := s.repo.SaveTasks(ctx, snapshot); err != nil {
		zap.L().Warn("failed to persist tasks", zap.Error(err))
	}
}

func applyUpdate(task *domain.Task, input domain.UpdateTaskInput) {
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.TimeSet {
		task.Time = input.Time
	}
	if input.Category != nil {
		task.Category = *input.Category
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.ReminderSet {
		if input.Reminder != nil {
			task.Reminder = *input.Reminder
		} else {
			task.Reminder = domain.ReminderNone
		}
	}
}

func cloneTask(task domain.Task) domain.Task {
	out := task
	if task.Description != nil {
		value := *task.Description
		out.Description = &value
	}
	if task.Time != nil {
		value := *task.Time
		out.Time = &value
	}
	out.Subtasks = append([]domain.SubTask(nil), task.Subtasks...)
	return out
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, cloneTask(task))
	}
	return out
}
