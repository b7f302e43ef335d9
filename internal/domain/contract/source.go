package contract

import (
	"context"

	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

// SubscriberSource enumerates the subscribers eligible for reminders on
// the current tick. The local variant yields at most one subscriber from
// a static config file; the hosted variant queries the subscriber store
// every tick so configuration changes are picked up without caching.
type SubscriberSource interface {
	Eligible(ctx context.Context) ([]*entity.Subscriber, error)
	Reload() error
}
