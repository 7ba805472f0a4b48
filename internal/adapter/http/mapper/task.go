package mapper

import (
	"time"

	"github.com/AndrewAitken/simp/internal/adapter/http/dto"
	"github.com/AndrewAitken/simp/internal/core/domain"
	"github.com/AndrewAitken/simp/internal/core/ports"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Category:  string(task.Category),
		Priority:  string(task.Priority),
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		Subtasks:  ToSubtaskItems(task.Subtasks),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.Time != nil {
		value := *task.Time
		item.Time = &value
	}

	if task.Reminder != "" && task.Reminder != domain.ReminderNone {
		item.Reminder = string(task.Reminder)
	}

	return item
}

func ToSubtaskItems(subtasks []domain.SubTask) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, sub := range subtasks {
		items = append(items, dto.SubtaskItem{
			ID:        sub.ID,
			Title:     sub.Title,
			Completed: sub.Completed,
		})
	}
	return items
}

func ToNotificationItems(notifications []ports.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, dto.NotificationItem{
			TaskID:  n.TaskID,
			Title:   n.Title,
			Body:    n.Body,
			FiredAt: n.FiredAt.Format(time.RFC3339),
		})
	}
	return items
}
