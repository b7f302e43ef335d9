package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weeklyping/reminder-bot/internal/domain"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
	"github.com/weeklyping/reminder-bot/internal/schedule"
)

func TestSubscriberStore_CreateSeedsDefaults(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := NewSubscriberStore(db)

	sub := &entity.Subscriber{Name: "Ana"}
	err := store.Create(context.Background(), sub)
	require.NoError(t, err)
	assert.NotZero(t, sub.ID, "Expected subscriber ID to be set after creation")

	got, err := store.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)
	assert.False(t, got.Reminder.Enabled, "new subscribers start with reminders off")
	assert.Len(t, got.Reminder.Channels, len(domain.AllChannels))
	for _, kind := range domain.AllChannels {
		require.Len(t, got.Reminder.Channels[kind].Schedules.Times, 2)
	}
}

func TestSubscriberStore_GetByID_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := NewSubscriberStore(db)

	got, err := store.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSubscriberStore_UpdateReminder(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := NewSubscriberStore(db)

	sub := &entity.Subscriber{Name: "Ana"}
	require.NoError(t, store.Create(context.Background(), sub))

	cfg := schedule.Default()
	cfg.Enabled = true
	cfg.Channels[domain.ChannelServerChan].Enabled = true
	cfg.Channels[domain.ChannelServerChan].Token = "SCT123"

	require.NoError(t, store.UpdateReminder(context.Background(), sub.ID, cfg))

	got, err := store.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.True(t, got.Reminder.Enabled)
	assert.Equal(t, "SCT123", got.Reminder.Channels[domain.ChannelServerChan].Token)
}

func TestSubscriberStore_ListReminderEnabled(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	store := NewSubscriberStore(db)

	off := &entity.Subscriber{Name: "off"}
	require.NoError(t, store.Create(context.Background(), off))

	on := &entity.Subscriber{Name: "on", Reminder: schedule.Default()}
	on.Reminder.Enabled = true
	require.NoError(t, store.Create(context.Background(), on))

	subs, err := store.ListReminderEnabled(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "on", subs[0].Name)
}

func TestSubscriberStore_LegacyConfigMigratesOnRead(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	// A row written by an old release, with the flat legacy shape.
	legacyJSON := `{"sendKey": "SCT123", "schedules": {"morning": {"hour": 9, "minute": 0, "enabled": true}}}`
	result, err := db.conn.Exec(
		`INSERT INTO subscribers (name, reminder_enabled, reminder_config) VALUES (?, 1, ?)`,
		"legacy", legacyJSON,
	)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	store := NewSubscriberStore(db)
	got, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)

	ch := got.Reminder.Channels[domain.ChannelServerChan]
	require.NotNil(t, ch, "legacy sendKey migrates to a serverChan channel")
	assert.True(t, ch.Enabled)
	assert.Equal(t, "SCT123", ch.Token)
	require.Len(t, ch.Schedules.Times, 1)
	assert.Equal(t, 9, ch.Schedules.Times[0].Hour)
	assert.Equal(t, 0, ch.Schedules.Times[0].Minute)
}
