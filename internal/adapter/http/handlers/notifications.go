package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndrewAitken/simp/internal/adapter/http/mapper"
	"github.com/AndrewAitken/simp/internal/adapter/notify"
)

type NotificationHandler struct {
	feed *notify.ToastFeed
}

func NewNotificationHandler(feed *notify.ToastFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// ListNotifications returns the recent in-app toasts, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToNotificationItems(h.feed.Recent()))
}
