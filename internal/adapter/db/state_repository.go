package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AndrewAitken/simp/internal/core/domain"
	"github.com/AndrewAitken/simp/internal/core/ports"
)

// The durable layout mirrors the original application's storage: one key
// holds the JSON-serialized task collection, one key holds the first-visit
// marker.
const (
	keyTasks      = "tasks"
	keyHasVisited = "hasVisited"
)

const createStateTableQuery = `
CREATE TABLE IF NOT EXISTS app_state (
  k TEXT PRIMARY KEY,
  v TEXT NOT NULL
);
`

const upsertStateQuery = `
INSERT INTO app_state (k, v) VALUES (?, ?)
ON CONFLICT (k) DO UPDATE SET v = excluded.v;
`

const selectStateQuery = `SELECT v FROM app_state WHERE k = ?;`

type StateRepository struct {
	db *sqlx.DB
}

var _ ports.StateRepository = (*StateRepository)(nil)

func NewStateRepository(db *sqlx.DB) (*StateRepository, error) {
	if _, err := db.Exec(createStateTableQuery); err != nil {
		return nil, fmt.Errorf("create app_state table: %w", err)
	}
	return &StateRepository{db: db}, nil
}

type subtaskRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type taskRecord struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Time        *string         `json:"time,omitempty"`
	Category    string          `json:"category"`
	Priority    string          `json:"priority"`
	Status      string          `json:"status"`
	Reminder    string          `json:"reminder,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	Subtasks    []subtaskRecord `json:"subtasks"`
}

func (r *StateRepository) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	var blob string
	err := r.db.GetContext(ctx, &blob, selectStateQuery, keyTasks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []taskRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return nil, fmt.Errorf("parse task collection: %w", err)
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		task, err := mapRecordToDomainTask(record)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *StateRepository) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, mapDomainTaskToRecord(task))
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serialize task collection: %w", err)
	}

	_, err = r.db.ExecContext(ctx, upsertStateQuery, keyTasks, string(blob))
	return err
}

func (r *StateRepository) HasVisited(ctx context.Context) (bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, selectStateQuery, keyHasVisited)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func (r *StateRepository) MarkVisited(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, upsertStateQuery, keyHasVisited, "true")
	return err
}

func mapDomainTaskToRecord(task domain.Task) taskRecord {
	record := taskRecord{
		ID:        task.ID,
		Title:     task.Title,
		Category:  string(task.Category),
		Priority:  string(task.Priority),
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.Format(time.RFC3339Nano),
		Subtasks:  make([]subtaskRecord, 0, len(task.Subtasks)),
	}

	if task.Description != nil {
		value := *task.Description
		record.Description = &value
	}
	if task.Time != nil {
		value := *task.Time
		record.Time = &value
	}
	if task.Reminder != "" && task.Reminder != domain.ReminderNone {
		record.Reminder = string(task.Reminder)
	}

	for _, sub := range task.Subtasks {
		record.Subtasks = append(record.Subtasks, subtaskRecord{
			ID:        sub.ID,
			Title:     sub.Title,
			Completed: sub.Completed,
		})
	}
	return record
}

func mapRecordToDomainTask(record taskRecord) (domain.Task, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parse createdAt of task %s: %w", record.ID, err)
	}

	task := domain.Task{
		ID:        record.ID,
		Title:     record.Title,
		Category:  domain.TaskCategory(record.Category),
		Priority:  domain.TaskPriority(record.Priority),
		Status:    domain.TaskStatus(record.Status),
		Reminder:  domain.Reminder(record.Reminder),
		CreatedAt: createdAt,
		Subtasks:  make([]domain.SubTask, 0, len(record.Subtasks)),
	}
	if task.Reminder == "" {
		task.Reminder = domain.ReminderNone
	}

	if record.Description != nil {
		value := *record.Description
		task.Description = &value
	}
	if record.Time != nil {
		value := *record.Time
		task.Time = &value
	}

	for _, sub := range record.Subtasks {
		task.Subtasks = append(task.Subtasks, domain.SubTask{
			ID:        sub.ID,
			Title:     sub.Title,
			Completed: sub.Completed,
		})
	}
	return task, nil
}
