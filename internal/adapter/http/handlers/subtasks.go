package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AndrewAitken/simp/internal/adapter/http/dto"
	"github.com/AndrewAitken/simp/internal/adapter/http/mapper"
	"github.com/AndrewAitken/simp/internal/adapter/http/middleware"
	"github.com/AndrewAitken/simp/internal/core/domain"
	"github.com/AndrewAitken/simp/pkg/apierrors"
)

func (h *TaskHandler) AddSubtask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.AddSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.AddSubtask(c.Request.Context(), taskID, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrEmptyTitle):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload, lang),
			)
		default:
			zap.L().Error("failed to add subtask", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

// RemoveSubtask is idempotent like task deletion: unknown ids return 204.
func (h *TaskHandler) RemoveSubtask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}
	subtaskID := strings.TrimSpace(c.Param("subtaskId"))
	if subtaskID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	if err := h.taskService.RemoveSubtask(c.Request.Context(), taskID, subtaskID); err != nil {
		zap.L().Error("failed to remove subtask",
			zap.String("task_id", taskID), zap.String("subtask_id", subtaskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ToggleSubtaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}
	subtaskID := strings.TrimSpace(c.Param("subtaskId"))
	if subtaskID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	task, err := h.taskService.ToggleSubtaskStatus(c.Request.Context(), taskID, subtaskID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrSubtaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubtaskNotFound, lang),
			)
		default:
			zap.L().Error("failed to toggle subtask",
				zap.String("task_id", taskID), zap.String("subtask_id", subtaskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// SuggestSubtasks runs the classifier without touching any task; attaching
// the result is left to the caller.
func (h *TaskHandler) SuggestSubtasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.GenerateSubtasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload, lang),
		)
		return
	}

	subtasks := h.taskService.GenerateSubtasksList(req.Text)
	c.JSON(http.StatusOK, mapper.ToSubtaskItems(subtasks))
}

func (h *TaskHandler) GenerateSubtasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.GenerateSubtasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.GenerateSubtasksForTask(c.Request.Context(), taskID, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to generate subtasks", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGenerateSubtasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}
