// Package notify implements the push channel dispatchers. Each
// dispatcher is independently configured and failure-isolated: Send
// always returns a DispatchResult and never panics, so one broken
// channel cannot take the others down.
package notify

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/weeklyping/reminder-bot/internal/domain"
	"github.com/weeklyping/reminder-bot/internal/domain/contract"
)

// NewRegistry builds one dispatcher per known channel kind, sharing a
// single HTTP client with a hard per-call timeout.
func NewRegistry(log *logrus.Logger, timeout time.Duration) map[string]contract.Dispatcher {
	client := &http.Client{Timeout: timeout}

	return map[string]contract.Dispatcher{
		domain.ChannelDingTalk:   NewDingTalk(log, client),
		domain.ChannelServerChan: NewServerChan(log, client),
		domain.ChannelSlack:      NewSlack(log),
	}
}
