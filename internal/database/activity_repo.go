package database

import (
	"context"
	"fmt"
	"time"

	"github.com/weeklyping/reminder-bot/internal/domain"
	"github.com/weeklyping/reminder-bot/internal/domain/contract"
)

const dateLayout = "2006-01-02"

type activityRepo struct {
	db dbConn
}

// NewActivityStore returns the sqlite-backed daily-activity store.
func NewActivityStore(db *DB) contract.ActivityStore {
	return &activityRepo{db: db.conn}
}

func (r *activityRepo) MarkFilled(ctx context.Context, subscriberID int64, date time.Time) error {
	query := `
		INSERT INTO daily_logs (subscriber_id, log_date)
		VALUES (?, ?)
		ON CONFLICT(subscriber_id, log_date) DO NOTHING
	`
	_, err := r.db.Exec(query, subscriberID, date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("failed to mark day filled: %w", err)
	}
	return nil
}

func (r *activityRepo) IsFilled(ctx context.Context, subscriberID int64, date time.Time) (bool, error) {
	query := `
		SELECT COUNT(1)
		FROM daily_logs
		WHERE subscriber_id = ? AND log_date = ?
	`

	var count int
	err := r.db.QueryRow(query, subscriberID, date.Format(dateLayout)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check daily log: %w", err)
	}
	return count > 0, nil
}

func (r *activityRepo) CountFilledThisWeek(ctx context.Context, subscriberID int64, day time.Time) (int, error) {
	start := domain.WeekStart(day)
	end := start.AddDate(0, 0, 6)

	query := `
		SELECT COUNT(1)
		FROM daily_logs
		WHERE subscriber_id = ? AND log_date BETWEEN ? AND ?
	`

	var count int
	err := r.db.QueryRow(query, subscriberID, start.Format(dateLayout), end.Format(dateLayout)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count filled days: %w", err)
	}
	return count, nil
}
