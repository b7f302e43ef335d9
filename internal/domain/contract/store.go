package contract

import (
	"context"
	"time"

	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

// SubscriberStore is the persistence contract for subscribers and their
// reminder configuration. Reads apply normalization, so callers always
// see the current config shape.
type SubscriberStore interface {
	Create(ctx context.Context, sub *entity.Subscriber) error
	GetByID(ctx context.Context, id int64) (*entity.Subscriber, error)
	UpdateReminder(ctx context.Context, id int64, cfg *entity.ReminderConfig) error
	ListReminderEnabled(ctx context.Context) ([]*entity.Subscriber, error)
}

// ActivityStore answers whether a subscriber has logged activity, used
// only to personalize reminder messages.
type ActivityStore interface {
	MarkFilled(ctx context.Context, subscriberID int64, date time.Time) error
	IsFilled(ctx context.Context, subscriberID int64, date time.Time) (bool, error)
	CountFilledThisWeek(ctx context.Context, subscriberID int64, day time.Time) (int, error)
}
