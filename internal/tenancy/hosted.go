package tenancy

import (
	"context"

	"github.com/weeklyping/reminder-bot/internal/domain/contract"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

// Hosted enumerates reminder-enabled subscribers from the subscriber
// store. The store is queried on every tick, never cached, so config
// changes take effect on the next minute.
type Hosted struct {
	store contract.SubscriberStore
}

func NewHosted(store contract.SubscriberStore) *Hosted {
	return &Hosted{store: store}
}

func (h *Hosted) Eligible(ctx context.Context) ([]*entity.Subscriber, error) {
	return h.store.ListReminderEnabled(ctx)
}

// Reload is a no-op: hosted mode has no cached state to refresh.
func (h *Hosted) Reload() error {
	return nil
}
