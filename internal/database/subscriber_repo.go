package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/weeklyping/reminder-bot/internal/domain/contract"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
	"github.com/weeklyping/reminder-bot/internal/schedule"
)

type subscriberRepo struct {
	db dbConn
}

// NewSubscriberStore returns the sqlite-backed subscriber store. The
// reminder config is stored as JSON and normalized on every read, which
// is also where legacy-shape configs get migrated.
func NewSubscriberStore(db *DB) contract.SubscriberStore {
	return &subscriberRepo{db: db.conn}
}

func (r *subscriberRepo) Create(ctx context.Context, sub *entity.Subscriber) error {
	if sub.Reminder == nil {
		sub.Reminder = schedule.Default()
	}

	cfgJSON, err := json.Marshal(sub.Reminder)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder config: %w", err)
	}

	query := `
		INSERT INTO subscribers (name, reminder_enabled, reminder_config)
		VALUES (?, ?, ?)
	`
	result, err := r.db.Exec(query, sub.Name, sub.Reminder.Enabled, string(cfgJSON))
	if err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	sub.ID = id
	return nil
}

func (r *subscriberRepo) GetByID(ctx context.Context, id int64) (*entity.Subscriber, error) {
	query := `
		SELECT id, name, reminder_config, created_at, updated_at
		FROM subscribers
		WHERE id = ?
	`

	sub, err := scanSubscriber(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return sub, nil
}

func (r *subscriberRepo) UpdateReminder(ctx context.Context, id int64, cfg *entity.ReminderConfig) error {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder config: %w", err)
	}

	query := `
		UPDATE subscribers SET
			reminder_enabled = ?,
			reminder_config = ?,
			updated_at = ?
		WHERE id = ?
	`
	_, err = r.db.Exec(query, cfg.Enabled, string(cfgJSON), time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update reminder config: %w", err)
	}
	return nil
}

func (r *subscriberRepo) ListReminderEnabled(ctx context.Context) ([]*entity.Subscriber, error) {
	query := `
		SELECT id, name, reminder_config, created_at, updated_at
		FROM subscribers
		WHERE reminder_enabled = 1
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder-enabled subscribers: %w", err)
	}
	defer rows.Close()

	var subs []*entity.Subscriber
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubscriber(row rowScanner) (*entity.Subscriber, error) {
	sub := &entity.Subscriber{}
	var cfgJSON string

	err := row.Scan(
		&sub.ID,
		&sub.Name,
		&cfgJSON,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Reminder = schedule.Normalize([]byte(cfgJSON))
	return sub, nil
}
