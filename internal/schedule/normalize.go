// Package schedule owns the reminder configuration shape: defaults for
// new subscribers and normalization of stored JSON, including migration
// of the retired flat shape (single sendKey plus named morning/evening
// slots) into per-channel schedules.
package schedule

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/weeklyping/reminder-bot/internal/domain"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

// Fallback trigger point for malformed numeric fields.
const (
	fallbackHour   = 10
	fallbackMinute = 0
)

// legacySlotOrder fixes the order named slots are migrated in.
var legacySlotOrder = []string{"morning", "evening"}

// NewTimeID returns a fresh ScheduleTime id.
func NewTimeID() string {
	return uuid.NewString()
}

// Default returns the config created on first subscriber registration:
// every channel present but disabled, seeded with a morning and an
// evening trigger point.
func Default() *entity.ReminderConfig {
	cfg := &entity.ReminderConfig{
		Channels: make(map[string]*entity.ChannelConfig, len(domain.AllChannels)),
	}
	for _, kind := range domain.AllChannels {
		cfg.Channels[kind] = &entity.ChannelConfig{
			Schedules: defaultSchedule(),
		}
	}
	return cfg
}

func defaultSchedule() entity.ChannelSchedule {
	return entity.ChannelSchedule{
		Times: []entity.ScheduleTime{
			{ID: NewTimeID(), Hour: domain.DefaultMorningHour, Minute: domain.DefaultMorningMinute, Enabled: true, Label: "morning"},
			{ID: NewTimeID(), Hour: domain.DefaultEveningHour, Minute: domain.DefaultEveningMinute, Enabled: true, Label: "evening"},
		},
	}
}

// Normalize parses raw JSON in either the current or the legacy shape and
// returns a well-formed ReminderConfig. It is fail-open: unparseable
// input yields the default config, malformed numeric fields fall back to
// 10:00 enabled, malformed booleans fall back to false. Normalizing the
// JSON encoding of its own output is a no-op, so it is safe to apply on
// every read.
func Normalize(raw []byte) *entity.ReminderConfig {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return Default()
	}
	return normalizeMap(m)
}

func normalizeMap(m map[string]any) *entity.ReminderConfig {
	cfg := &entity.ReminderConfig{
		Channels:  make(map[string]*entity.ChannelConfig),
		UpdatedAt: asTime(m["updatedAt"]),
	}

	if channels, ok := m["channels"].(map[string]any); ok {
		for kind, rawCh := range channels {
			ch, ok := rawCh.(map[string]any)
			if !ok {
				continue
			}
			cfg.Channels[kind] = normalizeChannel(ch)
		}
	}

	legacy := migrateLegacy(m)
	for kind, ch := range legacy {
		// A channel that already carries a well-formed times array wins
		// over the legacy top-level fields.
		if _, exists := cfg.Channels[kind]; !exists {
			cfg.Channels[kind] = ch
		}
	}

	if enabled, ok := m["enabled"].(bool); ok {
		cfg.Enabled = enabled
	} else if len(legacy) > 0 {
		// Legacy configs had no master switch; a configured credential
		// meant reminders were on.
		cfg.Enabled = true
	}

	return cfg
}

func normalizeChannel(ch map[string]any) *entity.ChannelConfig {
	out := &entity.ChannelConfig{
		Enabled: asBool(ch["enabled"]),
		Webhook: asString(ch["webhook"]),
		Secret:  asString(ch["secret"]),
		Token:   asString(ch["token"]),
		Channel: asString(ch["channel"]),
	}

	schedules, _ := ch["schedules"].(map[string]any)
	times, _ := schedules["times"].([]any)
	for _, rawT := range times {
		t, ok := rawT.(map[string]any)
		if !ok {
			continue
		}
		out.Schedules.Times = append(out.Schedules.Times, normalizeTime(t))
	}
	return out
}

func normalizeTime(t map[string]any) entity.ScheduleTime {
	st := entity.ScheduleTime{
		ID:    asString(t["id"]),
		Label: asString(t["label"]),
	}
	if st.ID == "" {
		st.ID = NewTimeID()
	}

	hour, hourOK := asClock(t["hour"], 23)
	minute, minuteOK := asClock(t["minute"], 59)
	if !hourOK || !minuteOK {
		st.Hour = fallbackHour
		st.Minute = fallbackMinute
		st.Enabled = true
		return st
	}

	st.Hour = hour
	st.Minute = minute
	st.Enabled = asBool(t["enabled"])
	return st
}

// migrateLegacy maps the retired flat fields into per-channel configs.
// It returns an empty map for current-shape input.
func migrateLegacy(m map[string]any) map[string]*entity.ChannelConfig {
	sendKey := asString(m["sendKey"])
	webhook := asString(m["webhook"])
	if sendKey == "" && webhook == "" {
		return nil
	}

	times := migrateLegacySlots(m)
	out := make(map[string]*entity.ChannelConfig)
	if sendKey != "" {
		out[domain.ChannelServerChan] = &entity.ChannelConfig{
			Enabled:   true,
			Token:     sendKey,
			Schedules: cloneSchedule(times),
		}
	}
	if webhook != "" {
		out[domain.ChannelDingTalk] = &entity.ChannelConfig{
			Enabled:   true,
			Webhook:   webhook,
			Secret:    asString(m["secret"]),
			Schedules: cloneSchedule(times),
		}
	}
	return out
}

func migrateLegacySlots(m map[string]any) []entity.ScheduleTime {
	slots, _ := m["schedules"].(map[string]any)

	var times []entity.ScheduleTime
	for _, name := range legacySlotOrder {
		slot, ok := slots[name].(map[string]any)
		if !ok {
			continue
		}
		st := normalizeTime(slot)
		st.Label = name
		times = append(times, st)
	}
	if len(times) == 0 {
		return defaultSchedule().Times
	}
	return times
}

// cloneSchedule gives each migrated channel its own ScheduleTime ids, so
// later edits to one channel cannot alias another.
func cloneSchedule(times []entity.ScheduleTime) entity.ChannelSchedule {
	out := make([]entity.ScheduleTime, len(times))
	for i, st := range times {
		st.ID = NewTimeID()
		out[i] = st
	}
	return entity.ChannelSchedule{Times: out}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// asClock parses a clock component from decoded JSON, accepting only
// whole numbers within [0, max].
func asClock(v any, max int) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	n := int(f)
	if n < 0 || n > max {
		return 0, false
	}
	return n, true
}

func asTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
