package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AndrewAitken/simp/internal/adapter/http/handlers"
	"github.com/AndrewAitken/simp/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/focus", taskHandler.ListFocusTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.POST("/tasks/:id/toggle", taskHandler.ToggleTaskStatus)

		api.POST("/tasks/:id/subtasks", taskHandler.AddSubtask)
		api.POST("/tasks/:id/subtasks/generate", taskHandler.GenerateSubtasks)
		api.DELETE("/tasks/:id/subtasks/:subtaskId", taskHandler.RemoveSubtask)
		api.POST("/tasks/:id/subtasks/:subtaskId/toggle", taskHandler.ToggleSubtaskStatus)

		api.POST("/subtasks/suggestions", taskHandler.SuggestSubtasks)

		api.GET("/notifications", notificationHandler.ListNotifications)
	}
}
