package domain

import "time"

// Channel kinds supported by the reminder pipeline.
const (
	ChannelDingTalk   = "dingtalk"
	ChannelServerChan = "serverChan"
	ChannelSlack      = "slack"
)

// AllChannels lists every known channel kind, in the order default
// configs are populated.
var AllChannels = []string{ChannelDingTalk, ChannelServerChan, ChannelSlack}

// WorkdaysPerWeek is the number of weekly-report entries expected per week.
const WorkdaysPerWeek = 5

// Credential prefixes enforced by the configuration API on write. The
// scheduler re-exposes them so both sides share one definition.
const (
	DingTalkWebhookPrefix = "https://oapi.dingtalk.com/robot/send"
	ServerChanKeyPrefix   = "SCT"
	SlackTokenPrefix      = "xoxb-"
)

// Default trigger points seeded into a fresh ReminderConfig.
const (
	DefaultMorningHour   = 10
	DefaultMorningMinute = 0
	DefaultEveningHour   = 20
	DefaultEveningMinute = 30
)

// WeekStart returns the Monday 00:00 of the week containing t, in t's
// location.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday = 0 in Go, ISO weeks start on Monday
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
