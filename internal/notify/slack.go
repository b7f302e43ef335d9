package notify

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/weeklyping/reminder-bot/internal/domain"
	"github.com/weeklyping/reminder-bot/internal/domain/contract"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

// Slack posts the reminder to a channel or DM via a bot token. A client
// is built per send because every subscriber carries its own token.
type Slack struct {
	log       *logrus.Logger
	newClient func(token string) contract.SlackClient
}

func NewSlack(log *logrus.Logger) *Slack {
	return &Slack{
		log: log,
		newClient: func(token string) contract.SlackClient {
			return slack.New(token)
		},
	}
}

func (s *Slack) Kind() string {
	return domain.ChannelSlack
}

func (s *Slack) Send(ctx context.Context, cfg *entity.ChannelConfig, msg *entity.Message) *entity.DispatchResult {
	if cfg.Token == "" {
		return entity.Failf("slack bot token is not configured")
	}
	if cfg.Channel == "" {
		return entity.Failf("slack channel is not configured")
	}

	text := fmt.Sprintf("*%s*\n\n%s", msg.Title, msg.Body)

	client := s.newClient(cfg.Token)
	_, _, err := client.PostMessageContext(ctx,
		cfg.Channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return entity.Fail(fmt.Errorf("failed to send slack message: %w", err))
	}

	s.log.WithField("channel", cfg.Channel).Debug("slack message delivered")
	return entity.Succeed()
}
