package entity

import (
	"time"

	"github.com/weeklyping/reminder-bot/internal/domain"
)

// ScheduleTime is one configured hour:minute trigger point on a channel.
type ScheduleTime struct {
	ID      string `json:"id"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Enabled bool   `json:"enabled"`
	Label   string `json:"label,omitempty"`
}

// Matches reports whether the trigger point fires at the given wall-clock
// minute.
func (st ScheduleTime) Matches(now time.Time) bool {
	return st.Enabled && st.Hour == now.Hour() && st.Minute == now.Minute()
}

// ChannelSchedule holds a channel's trigger points in insertion order.
// Duplicate hour:minute pairs are legal and fire independently.
type ChannelSchedule struct {
	Times []ScheduleTime `json:"times"`
}

// ChannelConfig configures one push channel. Which credential field is
// meaningful depends on the channel kind: dingtalk uses Webhook (plus an
// optional signing Secret), serverChan uses Token, slack uses Token plus
// Channel.
type ChannelConfig struct {
	Enabled   bool            `json:"enabled"`
	Webhook   string          `json:"webhook,omitempty"`
	Secret    string          `json:"secret,omitempty"`
	Token     string          `json:"token,omitempty"`
	Channel   string          `json:"channel,omitempty"`
	Schedules ChannelSchedule `json:"schedules"`
}

// Credential returns the channel's primary credential for the given kind.
func (c *ChannelConfig) Credential(kind string) string {
	if kind == domain.ChannelDingTalk {
		return c.Webhook
	}
	return c.Token
}

// Active reports whether the channel may fire at all: it must be enabled
// and carry a non-empty credential for its kind.
func (c *ChannelConfig) Active(kind string) bool {
	return c != nil && c.Enabled && c.Credential(kind) != ""
}

// ReminderConfig is a subscriber's full reminder configuration. If
// Enabled is false no channel fires regardless of per-channel settings.
type ReminderConfig struct {
	Enabled   bool                      `json:"enabled"`
	Channels  map[string]*ChannelConfig `json:"channels"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// Channel returns the config for the given kind, or nil.
func (c *ReminderConfig) Channel(kind string) *ChannelConfig {
	if c == nil || c.Channels == nil {
		return nil
	}
	return c.Channels[kind]
}

// LegacyScheduleSlot is one named slot of the retired flat config shape.
type LegacyScheduleSlot struct {
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	Enabled bool `json:"enabled"`
}

// LegacyReminderConfig is the retired flat shape: one ServerChan send key
// and up to two named slots. It exists only as a migration source and is
// never used at runtime.
type LegacyReminderConfig struct {
	SendKey   string                        `json:"sendKey,omitempty"`
	Webhook   string                        `json:"webhook,omitempty"`
	Secret    string                        `json:"secret,omitempty"`
	Schedules map[string]LegacyScheduleSlot `json:"schedules,omitempty"`
}
