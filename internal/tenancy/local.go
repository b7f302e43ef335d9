// Package tenancy provides the two subscriber sources the scheduler can
// run against: a single statically-configured local subscriber, or the
// full subscriber store in hosted mode. Both expose the same enumeration
// surface, so the evaluation path is written once.
package tenancy

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
	"github.com/weeklyping/reminder-bot/internal/schedule"
)

// localSubscriberID identifies the single local-mode subscriber.
const localSubscriberID = 1

// Local serves one subscriber from a JSON config file on disk. Reload
// re-reads the file; a missing file yields the default (disabled) config
// so a fresh install runs without setup.
type Local struct {
	log  *logrus.Logger
	path string
	name string

	mu  sync.RWMutex
	sub *entity.Subscriber
}

func NewLocal(log *logrus.Logger, path, name string) (*Local, error) {
	l := &Local{
		log:  log,
		path: path,
		name: name,
	}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the backing config file. Malformed content degrades
// through normalization instead of failing.
func (l *Local) Reload() error {
	var cfg *entity.ReminderConfig

	raw, err := os.ReadFile(l.path)
	switch {
	case os.IsNotExist(err):
		l.log.WithField("path", l.path).Warn("reminder config file not found, using defaults")
		cfg = schedule.Default()
	case err != nil:
		return fmt.Errorf("failed to read reminder config: %w", err)
	default:
		cfg = schedule.Normalize(raw)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.sub = &entity.Subscriber{
		ID:       localSubscriberID,
		Name:     l.name,
		Reminder: cfg,
	}
	return nil
}

// Eligible yields the local subscriber when reminders are enabled.
func (l *Local) Eligible(ctx context.Context) ([]*entity.Subscriber, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.sub == nil || l.sub.Reminder == nil || !l.sub.Reminder.Enabled {
		return nil, nil
	}
	return []*entity.Subscriber{l.sub}, nil
}
