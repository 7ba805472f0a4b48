package scheduler

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AndrewAitken/simp/internal/core/domain"
	"github.com/AndrewAitken/simp/internal/core/ports"
)

const (
	DefaultTickPeriod  = time.Minute
	DefaultMatchWindow = time.Minute
)

// Config makes the tick period and matching window explicit values instead
// of a coincidental equality. With window == period every qualifying task is
// notified on exactly one tick; the fired marker turns that into a stated
// guarantee for the life of the process.
type Config struct {
	TickPeriod  time.Duration
	MatchWindow time.Duration
}

func (c Config) withDefaults() Config {
	if c.TickPeriod <= 0 {
		c.TickPeriod = DefaultTickPeriod
	}
	if c.MatchWindow <= 0 {
		c.MatchWindow = DefaultMatchWindow
	}
	return c
}

// TaskSource supplies the current task collection on every tick. The
// scheduler never caches between ticks so it always evaluates fresh state.
type TaskSource interface {
	Snapshot() []domain.Task
}

type Scheduler struct {
	cfg       Config
	source    TaskSource
	notifiers []ports.Notifier
	now       func() time.Time

	fired  map[string]struct{}
	stopCh chan struct{}
	doneCh chan struct{}
}

type Option func(*Scheduler)

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func New(cfg Config, source TaskSource, notifiers []ports.Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		cfg:       cfg.withDefaults(),
		source:    source,
		notifiers: notifiers,
		now:       time.Now,
		fired:     make(map[string]struct{}),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start evaluates once immediately, then on every tick period until Stop.
func (s *Scheduler) Start() {
	go func() {
		defer close(s.doneCh)

		s.tick()
		ticker := time.NewTicker(s.cfg.TickPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-s.stopCh:
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

func (s *Scheduler) tick() {
	now := s.now()
	for _, task := range s.source.Snapshot() {
		if !s.eligible(task, now) {
			continue
		}
		s.fire(task, now)
	}
}

func (s *Scheduler) eligible(task domain.Task, now time.Time) bool {
	if task.Status != domain.TaskStatusPending || task.Time == nil {
		return false
	}
	offset, ok := task.Reminder.Offset()
	if !ok {
		return false
	}
	instant, err := reminderInstant(*task.Time, now, offset)
	if err != nil {
		zap.L().Debug("skipping task with unparseable time",
			zap.String("task_id", task.ID), zap.String("time", *task.Time))
		return false
	}

	diff := now.Sub(instant)
	if diff < 0 {
		diff = -diff
	}
	if diff >= s.cfg.MatchWindow {
		return false
	}

	if _, already := s.fired[firedKey(task)]; already {
		return false
	}
	return true
}

func (s *Scheduler) fire(task domain.Task, now time.Time) {
	s.fired[firedKey(task)] = struct{}{}

	n := ports.Notification{
		TaskID:  task.ID,
		Title:   task.Title,
		Body:    fmt.Sprintf("Scheduled for %s", *task.Time),
		FiredAt: now,
	}
	for _, notifier := range s.notifiers {
		notifier.Notify(n)
	}
}

// reminderInstant places the task's HH:MM on today's date in now's location
// and subtracts the reminder offset.
func reminderInstant(clock string, now time.Time, offset time.Duration) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	scheduled := time.Date(
		now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location(),
	)
	return scheduled.Add(-offset), nil
}

func firedKey(task domain.Task) string {
	return task.ID + "|" + string(task.Reminder)
}
