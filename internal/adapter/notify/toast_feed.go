package notify

import (
	"sync"

	"github.com/AndrewAitken/simp/internal/core/ports"
)

const DefaultFeedCapacity = 50

// ToastFeed is the in-app notification channel. It keeps the most recent
// notifications in memory for clients to poll, newest first. The feed always
// receives a copy of every reminder regardless of what the system channel
// does with it.
type ToastFeed struct {
	mu       sync.Mutex
	capacity int
	items    []ports.Notification
}

var _ ports.Notifier = (*ToastFeed)(nil)

func NewToastFeed(capacity int) *ToastFeed {
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	return &ToastFeed{capacity: capacity}
}

func (f *ToastFeed) Notify(notification ports.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]ports.Notification{notification}, f.items...)
	if len(f.items) > f.capacity {
		f.items = f.items[:f.capacity]
	}
}

// Recent returns the stored notifications, newest first.
func (f *ToastFeed) Recent() []ports.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ports.Notification(nil), f.items...)
}
