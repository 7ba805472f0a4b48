package notify

import (
	"go.uber.org/zap"

	"github.com/AndrewAitken/simp/internal/core/ports"
)

// LogNotifier is the system-level notification channel: reminders are
// written to the structured log where the host environment can pick them up.
type LogNotifier struct {
	logger *zap.Logger
}

var _ ports.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(notification ports.Notification) {
	n.logger.Info("reminder",
		zap.String("task_id", notification.TaskID),
		zap.String("title", notification.Title),
		zap.String("body", notification.Body),
		zap.Time("fired_at", notification.FiredAt),
	)
}
