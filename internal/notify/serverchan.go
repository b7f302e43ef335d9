package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/weeklyping/reminder-bot/internal/domain"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

const serverChanBaseURL = "https://sctapi.ftqq.com"

// ServerChan posts to the ServerChan turbo push endpoint, parameterized
// by the subscriber's opaque send key.
type ServerChan struct {
	log     *logrus.Logger
	client  *http.Client
	baseURL string
}

func NewServerChan(log *logrus.Logger, client *http.Client) *ServerChan {
	return &ServerChan{
		log:     log,
		client:  client,
		baseURL: serverChanBaseURL,
	}
}

func (s *ServerChan) Kind() string {
	return domain.ChannelServerChan
}

type serverChanPayload struct {
	Title string `json:"title"`
	Desp  string `json:"desp"`
}

func (s *ServerChan) Send(ctx context.Context, cfg *entity.ChannelConfig, msg *entity.Message) *entity.DispatchResult {
	if cfg.Token == "" {
		return entity.Failf("serverchan send key is not configured")
	}

	body, err := json.Marshal(serverChanPayload{Title: msg.Title, Desp: msg.Body})
	if err != nil {
		return entity.Fail(fmt.Errorf("failed to marshal serverchan payload: %w", err))
	}

	url := fmt.Sprintf("%s/%s.send", s.baseURL, cfg.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return entity.Fail(fmt.Errorf("failed to build serverchan request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return entity.Fail(fmt.Errorf("serverchan request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entity.Failf("serverchan returned status %d", resp.StatusCode)
	}

	s.log.Debug("serverchan message delivered")
	return entity.Succeed()
}
