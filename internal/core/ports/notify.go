package ports

import "time"

// Notification is one user-visible reminder message.
type Notification struct {
	TaskID  string
	Title   string
	Body    string
	FiredAt time.Time
}

// Notifier delivers a notification over one channel. Delivery is
// best-effort: implementations must not block the scheduler tick.
type Notifier interface {
	Notify(n Notification)
}
