// Package scheduler drives the recurring reminders: one ticker firing
// every minute, gated by the workday calendar, evaluating every eligible
// subscriber's channel schedules against the current wall-clock minute.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/weeklyping/reminder-bot/internal/calendar"
	"github.com/weeklyping/reminder-bot/internal/domain"
	"github.com/weeklyping/reminder-bot/internal/domain/contract"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
	"github.com/weeklyping/reminder-bot/internal/message"
)

const (
	tickInterval           = time.Minute
	defaultDispatchTimeout = 10 * time.Second
)

// Options wires the scheduler's collaborators.
type Options struct {
	Source          contract.SubscriberSource
	Activity        contract.ActivityStore
	Calendar        *calendar.Calendar
	Dispatchers     map[string]contract.Dispatcher
	EntryURL        string
	DispatchTimeout time.Duration
}

// Status is the externally visible scheduler state.
type Status struct {
	Running bool `json:"running"`
}

// Scheduler owns its own timer and lifecycle state. One instance runs at
// most one live ticker; Stop disarms future firings but lets a tick that
// is already in flight finish.
type Scheduler struct {
	log             *logrus.Logger
	source          contract.SubscriberSource
	activity        contract.ActivityStore
	calendar        *calendar.Calendar
	dispatchers     map[string]contract.Dispatcher
	entryURL        string
	dispatchTimeout time.Duration

	mu          sync.Mutex
	running     bool
	stopChan    chan struct{}
	lastSkipDay string
}

func New(log *logrus.Logger, opts Options) *Scheduler {
	timeout := opts.DispatchTimeout
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}

	return &Scheduler{
		log:             log,
		source:          opts.Source,
		activity:        opts.Activity,
		calendar:        opts.Calendar,
		dispatchers:     opts.Dispatchers,
		entryURL:        opts.EntryURL,
		dispatchTimeout: timeout,
	}
}

// Start arms the ticker. Calling Start while running is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.log.Info("reminder scheduler started")

	go s.run(s.stopChan)
}

// Stop disarms the ticker. Calling Stop while stopped is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.stopChan)
	s.running = false
	s.log.Info("reminder scheduler stopped")
}

// Reload re-reads the subscriber source's backing config and restarts the
// ticker.
func (s *Scheduler) Reload() error {
	if err := s.source.Reload(); err != nil {
		return fmt.Errorf("failed to reload subscriber source: %w", err)
	}
	s.Stop()
	s.Start()
	return nil
}

// Status reports whether the ticker is armed.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Running: s.running}
}

func (s *Scheduler) run(stop chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.tick(now)
		case <-stop:
			return
		}
	}
}

// tick evaluates one wall-clock minute. Nothing in here may panic or
// bail out on a single subscriber/channel failure; the worst case is a
// skipped notification, always logged.
func (s *Scheduler) tick(now time.Time) {
	day := s.calendar.IsWorkday(now)
	if !day.IsWorkday {
		s.logSkippedDay(now, day.Reason)
		return
	}

	ctx := context.Background()
	subs, err := s.source.Eligible(ctx)
	if err != nil {
		s.log.Errorf("failed to enumerate eligible subscribers: %v", err)
		return
	}

	for _, sub := range subs {
		s.evaluateSubscriber(ctx, sub, now)
	}
}

// logSkippedDay logs a non-workday at most once per day, not once per
// minute.
func (s *Scheduler) logSkippedDay(now time.Time, reason string) {
	day := now.Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSkipDay == day {
		return
	}
	s.lastSkipDay = day
	s.log.WithFields(logrus.Fields{"date": day, "reason": reason}).Info("non-workday, reminders suppressed")
}

func (s *Scheduler) evaluateSubscriber(ctx context.Context, sub *entity.Subscriber, now time.Time) {
	if sub.Reminder == nil || !sub.Reminder.Enabled {
		return
	}

	for kind, ch := range sub.Reminder.Channels {
		if !ch.Active(kind) {
			continue
		}
		dispatcher, ok := s.dispatchers[kind]
		if !ok {
			s.log.WithFields(logrus.Fields{"subscriber": sub.ID, "channel": kind}).Warn("no dispatcher for channel kind")
			continue
		}

		for _, st := range ch.Schedules.Times {
			if !st.Matches(now) {
				continue
			}
			s.dispatch(ctx, dispatcher, sub, ch, st, now)
		}
	}
}

func (s *Scheduler) dispatch(ctx context.Context, d contract.Dispatcher, sub *entity.Subscriber, ch *entity.ChannelConfig, st entity.ScheduleTime, now time.Time) {
	msg := s.buildMessage(ctx, sub, now)

	callCtx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
	defer cancel()

	result := d.Send(callCtx, ch, msg)

	fields := logrus.Fields{
		"subscriber": sub.ID,
		"channel":    d.Kind(),
		"time":       fmt.Sprintf("%02d:%02d", st.Hour, st.Minute),
		"label":      st.Label,
	}
	if result.Success {
		s.log.WithFields(fields).Info("reminder sent")
		return
	}
	s.log.WithFields(fields).Errorf("reminder failed: %v", result.Err)
}

// buildMessage assembles the builder context. Activity store failures
// degrade to zero statistics instead of suppressing the reminder.
func (s *Scheduler) buildMessage(ctx context.Context, sub *entity.Subscriber, now time.Time) *entity.Message {
	daysFilled, err := s.activity.CountFilledThisWeek(ctx, sub.ID, now)
	if err != nil {
		s.log.WithField("subscriber", sub.ID).Warnf("failed to count filled days: %v", err)
	}
	todayFilled, err := s.activity.IsFilled(ctx, sub.ID, now)
	if err != nil {
		s.log.WithField("subscriber", sub.ID).Warnf("failed to check today's entry: %v", err)
	}

	return message.Build(message.Context{
		Name:          sub.Name,
		Now:           now,
		DaysFilled:    daysFilled,
		TotalWorkdays: domain.WorkdaysPerWeek,
		TodayFilled:   todayFilled,
		EntryURL:      s.entryURL,
	})
}
