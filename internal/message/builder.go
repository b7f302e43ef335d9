// Package message builds the personalized reminder text. Build is pure:
// everything it needs comes in through the Context.
package message

import (
	"fmt"
	"time"

	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

// Context carries the subscriber state a reminder is rendered from.
type Context struct {
	Name          string
	Now           time.Time
	DaysFilled    int
	TotalWorkdays int
	TodayFilled   bool
	EntryURL      string
}

// Build renders the reminder title and body for the given context. The
// body always ends with a link to the daily-entry page.
func Build(ctx Context) *entity.Message {
	title := fmt.Sprintf("%s, %s!", greeting(ctx.Now.Hour()), displayName(ctx.Name))

	body := fmt.Sprintf("It's %s, %s.\n\n%s",
		ctx.Now.Weekday(),
		ctx.Now.Format("Jan 2"),
		encouragement(ctx),
	)
	body += fmt.Sprintf("\n\nWrite today's entry: %s", ctx.EntryURL)

	return &entity.Message{
		Title: title,
		Body:  body,
		Actions: []entity.MessageAction{
			{Title: "Open daily entry", URL: ctx.EntryURL},
		},
	}
}

func displayName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func encouragement(ctx Context) string {
	switch {
	case ctx.DaysFilled >= ctx.TotalWorkdays:
		return fmt.Sprintf("All %d workdays logged this week — your weekly report writes itself. Nice work!", ctx.TotalWorkdays)
	case ctx.TodayFilled:
		return fmt.Sprintf("Today's entry is already in. %d of %d workdays logged this week — keep the streak going.", ctx.DaysFilled, ctx.TotalWorkdays)
	case ctx.DaysFilled == 0:
		return "A fresh week, nothing logged yet. Two minutes now saves an hour on Friday."
	case ctx.DaysFilled == ctx.TotalWorkdays-1:
		return fmt.Sprintf("Just one workday left to log (%d of %d done). Finish the week strong!", ctx.DaysFilled, ctx.TotalWorkdays)
	default:
		return fmt.Sprintf("%d of %d workdays logged this week. Don't let today slip away.", ctx.DaysFilled, ctx.TotalWorkdays)
	}
}
