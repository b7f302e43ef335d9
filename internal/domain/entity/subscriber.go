package entity

import "time"

// Subscriber owns one ReminderConfig. The scheduler only reads
// subscribers; they are created and updated by the subscriber store.
type Subscriber struct {
	ID        int64           `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	Reminder  *ReminderConfig `json:"reminder"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
