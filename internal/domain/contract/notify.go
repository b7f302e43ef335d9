package contract

import (
	"context"

	"github.com/slack-go/slack"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

// Dispatcher pushes one message through one channel kind. Send never
// panics and never returns a nil result; failures are carried inside the
// DispatchResult so callers can continue with other channels.
type Dispatcher interface {
	Kind() string
	Send(ctx context.Context, cfg *entity.ChannelConfig, msg *entity.Message) *entity.DispatchResult
}

// SlackClient is the subset of the Slack API the slack dispatcher needs.
// This allows mocking in tests while keeping the real implementation simple.
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
